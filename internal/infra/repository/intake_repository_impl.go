package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
)

type intakeRepositoryImpl struct {
	db *gorm.DB
}

func NewIntakeRepository(db *gorm.DB) domain.IntakeRepository {
	return &intakeRepositoryImpl{
		db: db,
	}
}

func (r *intakeRepositoryImpl) Save(ctx context.Context, record *domain.IntakeRecord) error {
	slog.Debug("saving intake to database",
		"intake_id", record.ID().String(),
	)

	m := FromIntakeEntity(record)

	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		slog.Error("failed to save intake to database",
			"intake_id", record.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	slog.Debug("intake saved to database",
		"intake_id", record.ID().String(),
	)

	return nil
}

func (r *intakeRepositoryImpl) FindByID(ctx context.Context, id domain.IntakeID) (*domain.IntakeRecord, error) {
	slog.Debug("finding intake by ID",
		"intake_id", id.String(),
	)

	var m IntakeModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("intake not found",
				"intake_id", id.String(),
			)

			return nil, domain.ErrIntakeNotFound
		}

		slog.Error("failed to find intake by ID",
			"intake_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *intakeRepositoryImpl) FindByTimeRange(
	ctx context.Context,
	timeRange domain.TimeRange,
	order domain.SortOrder,
) ([]*domain.IntakeRecord, error) {
	slog.Debug("finding intakes by time range",
		"start", timeRange.Start,
		"end", timeRange.End,
		"order", string(order),
	)

	orderClause := "timestamp_ms ASC, id ASC"
	if order == domain.SortDescending {
		orderClause = "timestamp_ms DESC, id DESC"
	}

	var models []IntakeModel

	result := r.db.WithContext(ctx).
		Where("timestamp_ms >= ? AND timestamp_ms < ?", timeRange.Start.UnixMilli(), timeRange.End.UnixMilli()).
		Order(orderClause).
		Find(&models)

	if result.Error != nil {
		slog.Error("failed to find intakes by time range",
			"start", timeRange.Start,
			"end", timeRange.End,
			"error", result.Error,
		)

		return nil, result.Error
	}

	records := make([]*domain.IntakeRecord, 0, len(models))
	for _, m := range models {
		record, err := m.ToEntity()
		if err != nil {
			slog.Error("failed to convert model to entity",
				"intake_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		records = append(records, record)
	}

	slog.Debug("intakes found by time range",
		"count", len(records),
		"start", timeRange.Start,
		"end", timeRange.End,
	)

	return records, nil
}

func (r *intakeRepositoryImpl) SumByTimeRange(ctx context.Context, timeRange domain.TimeRange) (int, error) {
	var total int64

	result := r.db.WithContext(ctx).
		Model(&IntakeModel{}).
		Select("COALESCE(SUM(amount_ml), 0)").
		Where("timestamp_ms >= ? AND timestamp_ms < ?", timeRange.Start.UnixMilli(), timeRange.End.UnixMilli()).
		Scan(&total)

	if result.Error != nil {
		slog.Error("failed to sum intakes by time range",
			"start", timeRange.Start,
			"end", timeRange.End,
			"error", result.Error,
		)

		return 0, result.Error
	}

	return int(total), nil
}

func (r *intakeRepositoryImpl) UpdateAmount(ctx context.Context, record *domain.IntakeRecord) error {
	slog.Debug("updating intake amount in database",
		"intake_id", record.ID().String(),
		"amount_ml", record.AmountMl(),
	)

	result := r.db.WithContext(ctx).
		Model(&IntakeModel{}).
		Where("id = ?", record.ID().String()).
		Updates(map[string]any{
			"amount_ml":  record.AmountMl(),
			"updated_at": record.UpdatedAt(),
		})
	if result.Error != nil {
		slog.Error("failed to update intake amount",
			"intake_id", record.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		slog.Debug("intake not found for update",
			"intake_id", record.ID().String(),
		)

		return domain.ErrIntakeNotFound
	}

	return nil
}

func (r *intakeRepositoryImpl) Delete(ctx context.Context, id domain.IntakeID) error {
	slog.Debug("deleting intake from database",
		"intake_id", id.String(),
	)

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&IntakeModel{})
	if result.Error != nil {
		slog.Error("failed to delete intake from database",
			"intake_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		slog.Debug("intake not found for deletion",
			"intake_id", id.String(),
		)

		return domain.ErrIntakeNotFound
	}

	slog.Debug("intake deleted from database",
		"intake_id", id.String(),
	)

	return nil
}

func (r *intakeRepositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("timestamp_ms < ?", cutoff.UnixMilli()).
		Delete(&IntakeModel{})
	if result.Error != nil {
		slog.Error("failed to delete intakes older than cutoff",
			"cutoff", cutoff,
			"error", result.Error,
		)

		return 0, result.Error
	}

	slog.Debug("intakes older than cutoff deleted",
		"cutoff", cutoff,
		"count", result.RowsAffected,
	)

	return result.RowsAffected, nil
}

func (r *intakeRepositoryImpl) WithTx(ctx context.Context, fn func(repo domain.IntakeRepository) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		slog.Error("failed to begin transaction",
			"error", tx.Error,
		)

		return tx.Error
	}

	txRepo := &intakeRepositoryImpl{db: tx}

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			slog.Error("failed to rollback transaction",
				"error", rbErr,
				"original_error", err,
			)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		slog.Error("failed to commit transaction",
			"error", err,
		)

		return err
	}

	return nil
}
