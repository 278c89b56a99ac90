package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
)

type statsUseCaseImpl struct {
	repo         domain.IntakeRepository
	settings     domain.SettingsRepository
	horizon      *HorizonLock
	clock        domain.Clock
	lookbackDays int
}

func NewStatsUseCase(
	repo domain.IntakeRepository,
	settings domain.SettingsRepository,
	horizon *HorizonLock,
	clock domain.Clock,
	lookbackDays int,
) StatsUseCase {
	if lookbackDays <= 0 {
		lookbackDays = domain.DefaultStreakLookbackDays
	}

	if horizon == nil {
		horizon = NewHorizonLock()
	}

	return &statsUseCaseImpl{
		repo:         repo,
		settings:     settings,
		horizon:      horizon,
		clock:        clock,
		lookbackDays: lookbackDays,
	}
}

func (uc *statsUseCaseImpl) DailySums(ctx context.Context, input DailySumsInput) (DailySumsOutput, error) {
	slog.Debug("computing daily sums",
		"from", input.From,
		"to", input.To,
		"tz", input.TimeZone,
		"dense", input.Dense,
	)

	loc, err := uc.resolveLocation(input.TimeZone)
	if err != nil {
		return DailySumsOutput{}, err
	}

	from, err := domain.ParseLocalDate(input.From)
	if err != nil {
		return DailySumsOutput{}, NewValidationError("start", err.Error())
	}

	to, err := domain.ParseLocalDate(input.To)
	if err != nil {
		return DailySumsOutput{}, NewValidationError("end", err.Error())
	}

	if err := validateSpan(from, to); err != nil {
		return DailySumsOutput{}, err
	}

	sums, err := uc.sumsBetween(ctx, from, to, loc)
	if err != nil {
		return DailySumsOutput{}, err
	}

	if input.Dense {
		sums = domain.FillGaps(sums, from, to)
	}

	return DailySumsOutput{
		From:     from.String(),
		To:       to.String(),
		TimeZone: loc.String(),
		Days:     FromDaySums(sums),
		TotalMl:  domain.TotalOf(sums),
	}, nil
}

func (uc *statsUseCaseImpl) Summary(ctx context.Context, input SummaryInput) (SummaryOutput, error) {
	slog.Debug("computing summary",
		"period", input.Period,
		"days", input.Days,
		"tz", input.TimeZone,
	)

	loc, err := uc.resolveLocation(input.TimeZone)
	if err != nil {
		return SummaryOutput{}, err
	}

	today := domain.LocalDateOf(uc.clock.Now(), loc)

	from, to, err := periodRange(input.Period, input.Days, today)
	if err != nil {
		return SummaryOutput{}, err
	}

	sums, err := uc.sumsBetween(ctx, from, to, loc)
	if err != nil {
		return SummaryOutput{}, err
	}

	avg := domain.AverageDaily(sums)

	output := SummaryOutput{
		Period:           input.Period,
		From:             from.String(),
		To:               to.String(),
		TimeZone:         loc.String(),
		Days:             FromDaySums(domain.FillGaps(sums, from, to)),
		TotalMl:          domain.TotalOf(sums),
		AverageMl:        avg.Float(),
		AverageRoundedMl: avg.Rounded(),
		DaysWithData:     avg.Days,
	}

	if best, ok := domain.BestDay(sums); ok {
		b := FromDaySum(best)
		output.Best = &b
	}

	if worst, ok := domain.WorstDay(sums); ok {
		w := FromDaySum(worst)
		output.Worst = &w
	}

	return output, nil
}

func (uc *statsUseCaseImpl) Streak(ctx context.Context, input StreakInput) (StreakOutput, error) {
	loc, err := uc.resolveLocation(input.TimeZone)
	if err != nil {
		return StreakOutput{}, err
	}

	settings, err := uc.settings.Load(ctx)
	if err != nil {
		slog.Error("failed to load settings for streak",
			"error", err,
		)

		return StreakOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	today := domain.LocalDateOf(uc.clock.Now(), loc)
	target := settings.DailyTargetMl()

	var sums []domain.DaySum

	// The window reaches one day past the lookback so a streak counted from
	// yesterday still sees its full length.
	err = uc.horizon.Read(func() error {
		var readErr error
		sums, readErr = uc.sumsBetween(ctx, today.AddDays(-uc.lookbackDays), today, loc)

		return readErr
	})
	if err != nil {
		return StreakOutput{}, err
	}

	todayTotal := 0
	if n := len(sums); n > 0 && sums[n-1].Date.Equals(today) {
		todayTotal = sums[n-1].TotalMl
	}

	output := StreakOutput{
		Today:        today.String(),
		TodayTotalMl: todayTotal,
		TargetMl:     target,
		Current:      domain.CurrentStreak(sums, today, target, uc.lookbackDays),
		Longest:      domain.LongestStreak(sums, target),
		LookbackDays: uc.lookbackDays,
	}

	slog.Debug("streak computed",
		"current", output.Current,
		"longest", output.Longest,
		"target_ml", target,
	)

	return output, nil
}

func (uc *statsUseCaseImpl) sumsBetween(
	ctx context.Context,
	from, to domain.LocalDate,
	loc *time.Location,
) ([]domain.DaySum, error) {
	window, err := domain.DayWindow(from, to, loc)
	if err != nil {
		return nil, NewValidationError("time_range", err.Error())
	}

	records, err := uc.repo.FindByTimeRange(ctx, window, domain.SortAscending)
	if err != nil {
		slog.Error("failed to load intakes for statistics",
			"error", err,
			"from", from.String(),
			"to", to.String(),
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return domain.DailySums(records, loc, window), nil
}

func (uc *statsUseCaseImpl) resolveLocation(name string) (*time.Location, error) {
	if name == "" {
		return uc.clock.Location(), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, NewValidationError("tz", fmt.Sprintf("unknown time zone %q", name))
	}

	return loc, nil
}

func validateSpan(from, to domain.LocalDate) error {
	if to.Before(from) {
		return NewValidationError("time_range", domain.ErrInvalidTimeRange.Error())
	}

	if from.AddDays(MaxRangeDays).Before(to) {
		return NewValidationError("time_range", fmt.Sprintf("range must not exceed %d days", MaxRangeDays))
	}

	return nil
}

// periodRange resolves a named period to inclusive local dates relative to today.
func periodRange(period string, days int, today domain.LocalDate) (domain.LocalDate, domain.LocalDate, error) {
	switch period {
	case "", PeriodWeek:
		return today.AddDays(-6), today, nil
	case PeriodMonth:
		return domain.NewLocalDate(today.Year(), today.Month(), 1), today, nil
	case PeriodPreviousWeek:
		return today.AddDays(-13), today.AddDays(-7), nil
	case PeriodLastN:
		if days < 1 || days > MaxRangeDays {
			return domain.LocalDate{}, domain.LocalDate{}, NewValidationError(
				"days", fmt.Sprintf("must be between 1 and %d", MaxRangeDays),
			)
		}

		return today.AddDays(-(days - 1)), today, nil
	default:
		return domain.LocalDate{}, domain.LocalDate{}, NewValidationError(
			"period", fmt.Sprintf("unknown period %q", period),
		)
	}
}
