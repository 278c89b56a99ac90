package app

import (
	"context"
)

type IntakeUseCase interface {
	RecordIntake(ctx context.Context, input RecordIntakeInput) (IntakeOutput, error)
	ListIntakes(ctx context.Context, input ListIntakesInput) (IntakesOutput, error)
	TodayIntakes(ctx context.Context) (TodayIntakesOutput, error)
	CorrectIntake(ctx context.Context, input CorrectIntakeInput) (IntakeOutput, error)
	DeleteIntake(ctx context.Context, input DeleteIntakeInput) error
}
