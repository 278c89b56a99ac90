package domain

import "context"

//go:generate mockgen -source=settings_repository.go -destination=settings_repository_mock.go -package=domain

type SettingsRepository interface {
	Load(ctx context.Context) (ReminderSettings, error)
	Save(ctx context.Context, settings ReminderSettings) error
	LoadPendingReminder(ctx context.Context) (PendingReminder, error)
	SavePendingReminder(ctx context.Context, pending PendingReminder) error
}
