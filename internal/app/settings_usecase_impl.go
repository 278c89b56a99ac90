package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
)

type settingsUseCaseImpl struct {
	repo      domain.SettingsRepository
	scheduler ReminderScheduler
}

func NewSettingsUseCase(repo domain.SettingsRepository, scheduler ReminderScheduler) SettingsUseCase {
	return &settingsUseCaseImpl{
		repo:      repo,
		scheduler: scheduler,
	}
}

func (uc *settingsUseCaseImpl) GetSettings(ctx context.Context) (SettingsOutput, error) {
	settings, err := uc.repo.Load(ctx)
	if err != nil {
		slog.Error("failed to load settings",
			"error", err,
		)

		return SettingsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromReminderSettings(settings), nil
}

func (uc *settingsUseCaseImpl) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (SettingsOutput, error) {
	slog.Debug("updating settings",
		"enabled", input.Enabled,
		"interval_minutes", input.IntervalMinutes,
		"quiet_start_hour", input.QuietStartHour,
		"quiet_end_hour", input.QuietEndHour,
		"mode", input.Mode,
		"daily_target_ml", input.DailyTargetMl,
	)

	next, err := buildSettings(input)
	if err != nil {
		return SettingsOutput{}, err
	}

	previous, err := uc.repo.Load(ctx)
	if err != nil {
		slog.Error("failed to load current settings",
			"error", err,
		)

		return SettingsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if err := uc.repo.Save(ctx, next); err != nil {
		slog.Error("failed to save settings",
			"error", err,
		)

		return SettingsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "settings updated",
		"event", "settings.updated",
		"enabled", next.Enabled(),
		"timing_changed", next.TimingChanged(previous),
	)

	if uc.needsReschedule(previous, next) {
		if err := uc.scheduler.SettingsChanged(ctx, next); err != nil {
			slog.Error("failed to reschedule reminder",
				"error", err,
			)

			return SettingsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
		}
	}

	return FromReminderSettings(next), nil
}

func (uc *settingsUseCaseImpl) ReminderStatus(_ context.Context) (ReminderStatusOutput, error) {
	if uc.scheduler == nil {
		return ReminderStatusOutput{State: "disabled"}, nil
	}

	return FromSchedulerStatus(uc.scheduler.Status()), nil
}

// needsReschedule also covers an enabled scheduler that lost its timer, so saving
// the same settings again re-arms it.
func (uc *settingsUseCaseImpl) needsReschedule(previous, next domain.ReminderSettings) bool {
	if uc.scheduler == nil {
		return false
	}

	if next.TimingChanged(previous) {
		return true
	}

	return next.Enabled() && !uc.scheduler.Status().Armed
}

func buildSettings(input UpdateSettingsInput) (domain.ReminderSettings, error) {
	interval, err := domain.NewReminderInterval(input.IntervalMinutes)
	if err != nil {
		return domain.ReminderSettings{}, NewValidationError("interval_minutes", err.Error())
	}

	quiet, err := domain.NewQuietHours(input.QuietStartHour, input.QuietEndHour)
	if err != nil {
		return domain.ReminderSettings{}, NewValidationError("quiet_hours", err.Error())
	}

	mode, err := domain.NewReminderMode(input.Mode)
	if err != nil {
		return domain.ReminderSettings{}, NewValidationError("mode", err.Error())
	}

	settings, err := domain.NewReminderSettings(
		input.Enabled,
		interval,
		quiet,
		mode,
		input.DailyTargetMl,
		input.QuickActionAmounts,
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDailyTarget):
			return domain.ReminderSettings{}, NewValidationError("daily_target_ml", err.Error())
		case errors.Is(err, domain.ErrIntervalStuckInQuiet):
			return domain.ReminderSettings{}, NewValidationError("interval_minutes", err.Error())
		case errors.Is(err, domain.ErrInvalidQuickAction):
			return domain.ReminderSettings{}, NewValidationError("quick_action_amounts", err.Error())
		default:
			return domain.ReminderSettings{}, NewValidationError("settings", err.Error())
		}
	}

	return settings, nil
}
