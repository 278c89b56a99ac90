package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/infra/repository"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/testutil"
)

func TestSettingsLoadDefaults(t *testing.T) {
	testDB := testutil.SetupSQLiteDB(t)
	repo := repository.NewSettingsRepository(testDB.DB)

	settings, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.True(t, settings.Equals(domain.DefaultReminderSettings()))
}

func TestSettingsSaveAndLoadSuccess(t *testing.T) {
	testDB := testutil.SetupSQLiteDB(t)
	repo := repository.NewSettingsRepository(testDB.DB)
	ctx := context.Background()

	settings, err := domain.NewReminderSettings(
		true,
		domain.MustReminderInterval(45),
		domain.MustQuietHours(23, 6),
		domain.ReminderModeOnlyUnderTarget,
		1800,
		[]int{150, 330},
	)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, settings))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, settings.Equals(loaded))

	updated := settings.WithEnabled(false)
	require.NoError(t, repo.Save(ctx, updated))

	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, loaded.Enabled())
	assert.Equal(t, 45, loaded.Interval().Minutes())
}

func TestSettingsLoadIgnoresInvalidValues(t *testing.T) {
	testDB := testutil.SetupSQLiteDB(t)
	repo := repository.NewSettingsRepository(testDB.DB)

	rows := []repository.SettingModel{
		{Name: repository.SettingDailyTarget, Value: "not-a-number", UpdatedAt: time.Now()},
		{Name: repository.SettingReminderInterval, Value: "90", UpdatedAt: time.Now()},
		{Name: repository.SettingQuietHoursStart, Value: "8", UpdatedAt: time.Now()},
		{Name: repository.SettingQuietHoursEnd, Value: "8", UpdatedAt: time.Now()},
		{Name: repository.SettingReminderMode, Value: "sometimes", UpdatedAt: time.Now()},
		{Name: repository.SettingButtonConfig, Value: "200, 400", UpdatedAt: time.Now()},
	}
	require.NoError(t, testDB.DB.Create(&rows).Error)

	settings, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDailyTargetMl, settings.DailyTargetMl())
	assert.Equal(t, 90, settings.Interval().Minutes())
	assert.Equal(t, domain.DefaultQuietStartHour, settings.QuietHours().StartHour())
	assert.Equal(t, domain.ReminderModeAlways, settings.Mode())
	assert.Equal(t, []int{200, 400}, settings.QuickActionAmounts())
}

func TestSettingsLoadResetsIntervalStuckInQuietHours(t *testing.T) {
	testDB := testutil.SetupSQLiteDB(t)
	repo := repository.NewSettingsRepository(testDB.DB)

	rows := []repository.SettingModel{
		{Name: repository.SettingReminderEnabled, Value: "true", UpdatedAt: time.Now()},
		{Name: repository.SettingReminderInterval, Value: "1440", UpdatedAt: time.Now()},
		{Name: repository.SettingQuietHoursStart, Value: "21", UpdatedAt: time.Now()},
		{Name: repository.SettingQuietHoursEnd, Value: "8", UpdatedAt: time.Now()},
	}
	require.NoError(t, testDB.DB.Create(&rows).Error)

	settings, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.True(t, settings.Enabled())
	assert.Equal(t, domain.DefaultReminderIntervalMinutes, settings.Interval().Minutes())
	assert.Equal(t, domain.DefaultQuietStartHour, settings.QuietHours().StartHour())
	assert.Equal(t, domain.DefaultQuietEndHour, settings.QuietHours().EndHour())
}

func TestPendingReminderRoundTrip(t *testing.T) {
	testDB := testutil.SetupSQLiteDB(t)
	repo := repository.NewSettingsRepository(testDB.DB)
	ctx := context.Background()

	pending, err := repo.LoadPendingReminder(ctx)
	require.NoError(t, err)
	assert.False(t, pending.IsArmed())

	at := time.Date(2024, 3, 11, 7, 30, 0, 0, time.UTC)
	require.NoError(t, repo.SavePendingReminder(ctx, domain.NewPendingReminder(at)))

	pending, err = repo.LoadPendingReminder(ctx)
	require.NoError(t, err)

	got, ok := pending.NextFireAt()
	require.True(t, ok)
	assert.True(t, at.Equal(got))

	require.NoError(t, repo.SavePendingReminder(ctx, domain.NoPendingReminder()))

	pending, err = repo.LoadPendingReminder(ctx)
	require.NoError(t, err)
	assert.False(t, pending.IsArmed())

	// The pending instant does not leak into the settings rows.
	settings, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, settings.Equals(domain.DefaultReminderSettings()))
}
