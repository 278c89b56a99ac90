package app

import "context"

type SettingsUseCase interface {
	GetSettings(ctx context.Context) (SettingsOutput, error)
	UpdateSettings(ctx context.Context, input UpdateSettingsInput) (SettingsOutput, error)
	ReminderStatus(ctx context.Context) (ReminderStatusOutput, error)
}
