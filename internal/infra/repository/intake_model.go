package repository

import (
	"time"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
)

// IntakeModel stores the instant as UTC epoch milliseconds so ordering and range
// filters behave identically on every dialect.
type IntakeModel struct {
	ID          string    `gorm:"column:id;type:varchar(36);primaryKey;index:idx_intakes_timestamp_id,priority:2"`
	TimestampMs int64     `gorm:"column:timestamp_ms;not null;index:idx_intakes_timestamp_id,priority:1"`
	AmountMl    int       `gorm:"column:amount_ml;not null;check:chk_intakes_amount_positive,amount_ml > 0"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

func (IntakeModel) TableName() string {
	return "intakes"
}

func (m *IntakeModel) ToEntity() (*domain.IntakeRecord, error) {
	id, err := domain.IntakeIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	return domain.ReconstituteIntakeRecord(
		id,
		time.UnixMilli(m.TimestampMs),
		m.AmountMl,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func FromIntakeEntity(e *domain.IntakeRecord) *IntakeModel {
	return &IntakeModel{
		ID:          e.ID().String(),
		TimestampMs: e.Timestamp().UnixMilli(),
		AmountMl:    e.AmountMl(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}
