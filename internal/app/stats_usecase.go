package app

import "context"

type StatsUseCase interface {
	DailySums(ctx context.Context, input DailySumsInput) (DailySumsOutput, error)
	Summary(ctx context.Context, input SummaryInput) (SummaryOutput, error)
	Streak(ctx context.Context, input StreakInput) (StreakOutput, error)
}
