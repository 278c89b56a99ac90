package repository

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
)

type settingsRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) domain.SettingsRepository {
	return &settingsRepositoryImpl{
		db: db,
	}
}

func (r *settingsRepositoryImpl) Load(ctx context.Context) (domain.ReminderSettings, error) {
	var models []SettingModel

	result := r.db.WithContext(ctx).
		Where("name <> ?", SettingNextReminderAt).
		Find(&models)
	if result.Error != nil {
		slog.Error("failed to load settings",
			"error", result.Error,
		)

		return domain.ReminderSettings{}, result.Error
	}

	values := make(map[string]string, len(models))
	for _, m := range models {
		values[m.Name] = m.Value
	}

	return settingsFromValues(values)
}

func (r *settingsRepositoryImpl) Save(ctx context.Context, settings domain.ReminderSettings) error {
	slog.Debug("saving settings",
		"enabled", settings.Enabled(),
		"interval_minutes", settings.Interval().Minutes(),
	)

	now := time.Now()
	values := settingsToValues(settings)

	models := make([]SettingModel, 0, len(values))
	for name, value := range values {
		models = append(models, SettingModel{Name: name, Value: value, UpdatedAt: now})
	}

	if err := r.upsert(ctx, models...); err != nil {
		slog.Error("failed to save settings",
			"error", err,
		)

		return err
	}

	return nil
}

func (r *settingsRepositoryImpl) LoadPendingReminder(ctx context.Context) (domain.PendingReminder, error) {
	var m SettingModel

	result := r.db.WithContext(ctx).
		Where("name = ?", SettingNextReminderAt).
		Limit(1).
		Find(&m)
	if result.Error != nil {
		slog.Error("failed to load pending reminder",
			"error", result.Error,
		)

		return domain.PendingReminder{}, result.Error
	}

	if result.RowsAffected == 0 || m.Value == "" {
		return domain.NoPendingReminder(), nil
	}

	ms, err := strconv.ParseInt(m.Value, 10, 64)
	if err != nil {
		warnInvalidSetting(SettingNextReminderAt, m.Value, err)

		return domain.NoPendingReminder(), nil
	}

	return domain.NewPendingReminder(time.UnixMilli(ms).UTC()), nil
}

func (r *settingsRepositoryImpl) SavePendingReminder(ctx context.Context, pending domain.PendingReminder) error {
	at, ok := pending.NextFireAt()
	if !ok {
		result := r.db.WithContext(ctx).
			Where("name = ?", SettingNextReminderAt).
			Delete(&SettingModel{})
		if result.Error != nil {
			slog.Error("failed to clear pending reminder",
				"error", result.Error,
			)

			return result.Error
		}

		return nil
	}

	if err := r.upsert(ctx, SettingModel{
		Name:      SettingNextReminderAt,
		Value:     strconv.FormatInt(at.UnixMilli(), 10),
		UpdatedAt: time.Now(),
	}); err != nil {
		slog.Error("failed to save pending reminder",
			"error", err,
			"next_fire_at", at,
		)

		return err
	}

	return nil
}

func (r *settingsRepositoryImpl) upsert(ctx context.Context, models ...SettingModel) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&models).Error
}
