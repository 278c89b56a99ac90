package domain

import (
	"context"
	"time"
)

type IntakeRepository interface {
	Save(ctx context.Context, record *IntakeRecord) error
	FindByID(ctx context.Context, id IntakeID) (*IntakeRecord, error)
	FindByTimeRange(ctx context.Context, timeRange TimeRange, order SortOrder) ([]*IntakeRecord, error)
	SumByTimeRange(ctx context.Context, timeRange TimeRange) (int, error)
	UpdateAmount(ctx context.Context, record *IntakeRecord) error
	Delete(ctx context.Context, id IntakeID) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	WithTx(ctx context.Context, fn func(repo IntakeRepository) error) error
}
