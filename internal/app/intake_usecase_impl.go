package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
	sipv1 "github.com/KasumiMercury/primind-sip-scheduler/internal/gen/sip/v1"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/infra/pubsub"
)

type intakeUseCaseImpl struct {
	repo      domain.IntakeRepository
	settings  domain.SettingsRepository
	publisher pubsub.Publisher
	scheduler ReminderScheduler
	clock     domain.Clock
}

// NewIntakeUseCase accepts a nil publisher or scheduler; the corresponding side
// effects are skipped.
func NewIntakeUseCase(
	repo domain.IntakeRepository,
	settings domain.SettingsRepository,
	publisher pubsub.Publisher,
	scheduler ReminderScheduler,
	clock domain.Clock,
) IntakeUseCase {
	return &intakeUseCaseImpl{
		repo:      repo,
		settings:  settings,
		publisher: publisher,
		scheduler: scheduler,
		clock:     clock,
	}
}

func (uc *intakeUseCaseImpl) RecordIntake(ctx context.Context, input RecordIntakeInput) (IntakeOutput, error) {
	slog.Debug("recording intake",
		"amount_ml", input.AmountMl,
		"timestamp", input.Timestamp,
	)

	ts := input.Timestamp
	if ts.IsZero() {
		ts = uc.clock.Now()
	}

	record, err := domain.NewIntakeRecord(ts, input.AmountMl)
	if err != nil {
		return IntakeOutput{}, NewValidationError("amount_ml", err.Error())
	}

	if err := uc.repo.Save(ctx, record); err != nil {
		slog.Error("failed to save intake",
			"error", err,
			"intake_id", record.ID().String(),
		)

		return IntakeOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "intake recorded",
		"event", "intake.recorded",
		"intake_id", record.ID().String(),
		"amount_ml", record.AmountMl(),
	)

	if uc.publisher != nil {
		event := &sipv1.IntakeRecorded{
			IntakeId:   record.ID().String(),
			AmountMl:   int32(record.AmountMl()),
			Timestamp:  timestamppb.New(record.Timestamp()),
			RecordedAt: timestamppb.New(record.CreatedAt()),
		}
		if pubErr := uc.publisher.PublishIntakeRecorded(ctx, event); pubErr != nil {
			slog.Error("failed to publish intake recorded event",
				"intake_id", record.ID().String(),
				"error", pubErr.Error(),
			)
		}
	}

	if uc.scheduler != nil {
		if err := uc.scheduler.OnRecordInserted(ctx); err != nil {
			slog.Warn("failed to reschedule reminder after intake",
				"intake_id", record.ID().String(),
				"error", err,
			)
		}
	}

	return FromIntakeEntity(record), nil
}

func (uc *intakeUseCaseImpl) ListIntakes(ctx context.Context, input ListIntakesInput) (IntakesOutput, error) {
	slog.Debug("listing intakes by time range",
		"start", input.Start,
		"end", input.End,
		"order", input.Order,
	)

	timeRange, err := domain.NewTimeRange(input.Start, input.End)
	if err != nil {
		return IntakesOutput{}, NewValidationError("time_range", err.Error())
	}

	order, err := domain.NewSortOrder(input.Order)
	if err != nil {
		return IntakesOutput{}, NewValidationError("order", err.Error())
	}

	records, err := uc.repo.FindByTimeRange(ctx, timeRange, order)
	if err != nil {
		slog.Error("failed to list intakes",
			"error", err,
			"start", input.Start,
			"end", input.End,
		)

		return IntakesOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Debug("intakes listed",
		"count", len(records),
	)

	return FromIntakeEntities(records), nil
}

func (uc *intakeUseCaseImpl) TodayIntakes(ctx context.Context) (TodayIntakesOutput, error) {
	today := domain.Today(uc.clock)

	window, err := domain.DayWindow(today, today, uc.clock.Location())
	if err != nil {
		return TodayIntakesOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	records, err := uc.repo.FindByTimeRange(ctx, window, domain.SortDescending)
	if err != nil {
		slog.Error("failed to load today's intakes",
			"error", err,
			"date", today.String(),
		)

		return TodayIntakesOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	settings, err := uc.settings.Load(ctx)
	if err != nil {
		slog.Error("failed to load settings",
			"error", err,
		)

		return TodayIntakesOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	list := FromIntakeEntities(records)

	return TodayIntakesOutput{
		Date:          today.String(),
		Intakes:       list.Intakes,
		TotalMl:       list.TotalMl,
		DailyTargetMl: settings.DailyTargetMl(),
	}, nil
}

func (uc *intakeUseCaseImpl) CorrectIntake(ctx context.Context, input CorrectIntakeInput) (IntakeOutput, error) {
	slog.Debug("correcting intake amount",
		"intake_id", input.ID,
		"amount_ml", input.AmountMl,
	)

	id, err := domain.IntakeIDFromString(input.ID)
	if err != nil {
		return IntakeOutput{}, NewValidationError("id", err.Error())
	}

	record, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrIntakeNotFound) {
			return IntakeOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to load intake for correction",
			"error", err,
			"intake_id", input.ID,
		)

		return IntakeOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if err := record.CorrectAmount(input.AmountMl); err != nil {
		return IntakeOutput{}, NewValidationError("amount_ml", err.Error())
	}

	if err := uc.repo.UpdateAmount(ctx, record); err != nil {
		if errors.Is(err, domain.ErrIntakeNotFound) {
			return IntakeOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to update intake amount",
			"error", err,
			"intake_id", input.ID,
		)

		return IntakeOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Debug("intake amount corrected",
		"intake_id", input.ID,
		"amount_ml", record.AmountMl(),
	)

	return FromIntakeEntity(record), nil
}

func (uc *intakeUseCaseImpl) DeleteIntake(ctx context.Context, input DeleteIntakeInput) error {
	slog.Debug("deleting intake",
		"intake_id", input.ID,
	)

	id, err := domain.IntakeIDFromString(input.ID)
	if err != nil {
		return NewValidationError("id", err.Error())
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrIntakeNotFound) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to delete intake",
			"error", err,
			"intake_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Debug("intake deleted",
		"intake_id", input.ID,
	)

	return nil
}

// TodayProgress sums the current local day. It satisfies scheduler.ProgressReader.
type TodayProgress struct {
	repo  domain.IntakeRepository
	clock domain.Clock
}

func NewTodayProgress(repo domain.IntakeRepository, clock domain.Clock) *TodayProgress {
	return &TodayProgress{repo: repo, clock: clock}
}

func (p *TodayProgress) TodayTotal(ctx context.Context) (int, error) {
	today := domain.Today(p.clock)

	window, err := domain.DayWindow(today, today, p.clock.Location())
	if err != nil {
		return 0, err
	}

	return p.repo.SumByTimeRange(ctx, window)
}
