package repository

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
)

const (
	SettingDailyTarget      = "daily_target"
	SettingReminderEnabled  = "reminder_enabled"
	SettingReminderInterval = "reminder_interval"
	SettingQuietHoursStart  = "quiet_hours_start"
	SettingQuietHoursEnd    = "quiet_hours_end"
	SettingReminderMode     = "reminder_mode"
	SettingButtonConfig     = "button_config"
	SettingNextReminderAt   = "next_reminder_at"
)

type SettingModel struct {
	Name      string    `gorm:"column:name;type:varchar(64);primaryKey"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (SettingModel) TableName() string {
	return "settings"
}

func settingsToValues(s domain.ReminderSettings) map[string]string {
	return map[string]string{
		SettingDailyTarget:      strconv.Itoa(s.DailyTargetMl()),
		SettingReminderEnabled:  strconv.FormatBool(s.Enabled()),
		SettingReminderInterval: strconv.Itoa(s.Interval().Minutes()),
		SettingQuietHoursStart:  strconv.Itoa(s.QuietHours().StartHour()),
		SettingQuietHoursEnd:    strconv.Itoa(s.QuietHours().EndHour()),
		SettingReminderMode:     string(s.Mode()),
		SettingButtonConfig:     formatAmounts(s.QuickActionAmounts()),
	}
}

// settingsFromValues starts from the defaults and applies every stored value that
// parses. Values that do not parse are logged and left at their default.
func settingsFromValues(values map[string]string) (domain.ReminderSettings, error) {
	d := domain.DefaultReminderSettings()

	target := intOr(values, SettingDailyTarget, d.DailyTargetMl())
	if target <= 0 {
		target = d.DailyTargetMl()
	}

	enabled := d.Enabled()
	if v, ok := values[SettingReminderEnabled]; ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			warnInvalidSetting(SettingReminderEnabled, v, err)
		} else {
			enabled = parsed
		}
	}

	interval, err := domain.NewReminderInterval(intOr(values, SettingReminderInterval, d.Interval().Minutes()))
	if err != nil {
		warnInvalidSetting(SettingReminderInterval, values[SettingReminderInterval], err)
		interval = d.Interval()
	}

	quiet, err := domain.NewQuietHours(
		intOr(values, SettingQuietHoursStart, d.QuietHours().StartHour()),
		intOr(values, SettingQuietHoursEnd, d.QuietHours().EndHour()),
	)
	if err != nil {
		warnInvalidSetting(SettingQuietHoursStart, values[SettingQuietHoursStart], err)
		quiet = d.QuietHours()
	}

	if !quiet.Admits(interval) {
		warnInvalidSetting(SettingReminderInterval, values[SettingReminderInterval], domain.ErrIntervalStuckInQuiet)
		interval = d.Interval()
		quiet = d.QuietHours()
	}

	mode := d.Mode()
	if v, ok := values[SettingReminderMode]; ok {
		parsed, err := domain.NewReminderMode(v)
		if err != nil {
			warnInvalidSetting(SettingReminderMode, v, err)
		} else {
			mode = parsed
		}
	}

	amounts := d.QuickActionAmounts()
	if v, ok := values[SettingButtonConfig]; ok {
		parsed, err := parseAmounts(v)
		if err != nil {
			warnInvalidSetting(SettingButtonConfig, v, err)
		} else {
			amounts = parsed
		}
	}

	return domain.NewReminderSettings(enabled, interval, quiet, mode, target, amounts)
}

func intOr(values map[string]string, key string, fallback int) int {
	v, ok := values[key]
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		warnInvalidSetting(key, v, err)

		return fallback
	}

	return n
}

func formatAmounts(amounts []int) string {
	parts := make([]string, len(amounts))
	for i, a := range amounts {
		parts[i] = strconv.Itoa(a)
	}

	return strings.Join(parts, ",")
}

func parseAmounts(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	amounts := make([]int, 0, len(fields))

	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}

		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", f, err)
		}

		if n <= 0 {
			return nil, domain.ErrInvalidQuickAction
		}

		amounts = append(amounts, n)
	}

	return amounts, nil
}

func warnInvalidSetting(key, value string, err error) {
	slog.Warn("ignoring invalid stored setting",
		"key", key,
		"value", value,
		"error", err,
	)
}
