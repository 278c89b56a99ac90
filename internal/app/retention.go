package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
)

const DefaultSweepInterval = 24 * time.Hour

// RetentionSweeper deletes intakes older than the retention horizon, measured in
// local days from today.
type RetentionSweeper struct {
	repo          domain.IntakeRepository
	horizon       *HorizonLock
	clock         domain.Clock
	retentionDays int
	interval      time.Duration
}

func NewRetentionSweeper(
	repo domain.IntakeRepository,
	horizon *HorizonLock,
	clock domain.Clock,
	retentionDays int,
	interval time.Duration,
) *RetentionSweeper {
	if retentionDays <= 0 {
		retentionDays = domain.DefaultRetentionDays
	}

	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	if horizon == nil {
		horizon = NewHorizonLock()
	}

	return &RetentionSweeper{
		repo:          repo,
		horizon:       horizon,
		clock:         clock,
		retentionDays: retentionDays,
		interval:      interval,
	}
}

// Start sweeps once immediately and then on every interval until ctx is done.
func (s *RetentionSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)

	go func() {
		defer ticker.Stop()

		s.run(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.run(ctx)
			}
		}
	}()
}

func (s *RetentionSweeper) run(ctx context.Context) {
	if _, err := s.SweepOnce(ctx); err != nil {
		slog.ErrorContext(ctx, "retention sweep failed",
			"error", err,
		)
	}
}

// Cutoff is local midnight retentionDays before today.
func (s *RetentionSweeper) Cutoff() time.Time {
	today := domain.Today(s.clock)

	return today.AddDays(-s.retentionDays).StartIn(s.clock.Location())
}

func (s *RetentionSweeper) SweepOnce(ctx context.Context) (int64, error) {
	cutoff := s.Cutoff()

	var deleted int64

	err := s.horizon.Purge(func() error {
		n, err := s.repo.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			return err
		}

		deleted = n

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "retention purge finished",
		"event", "retention.purge",
		"cutoff", cutoff,
		"deleted", deleted,
		"retention_days", s.retentionDays,
	)

	return deleted, nil
}
