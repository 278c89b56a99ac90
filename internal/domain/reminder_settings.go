package domain

import (
	"slices"
)

const DefaultDailyTargetMl = 2500

var DefaultQuickActionAmounts = []int{100, 250, 500}

type ReminderSettings struct {
	enabled            bool
	interval           ReminderInterval
	quietHours         QuietHours
	mode               ReminderMode
	dailyTargetMl      int
	quickActionAmounts []int
}

func NewReminderSettings(
	enabled bool,
	interval ReminderInterval,
	quietHours QuietHours,
	mode ReminderMode,
	dailyTargetMl int,
	quickActionAmounts []int,
) (ReminderSettings, error) {
	if dailyTargetMl <= 0 {
		return ReminderSettings{}, ErrInvalidDailyTarget
	}

	if !quietHours.Admits(interval) {
		return ReminderSettings{}, ErrIntervalStuckInQuiet
	}

	if _, err := NewReminderMode(string(mode)); err != nil {
		return ReminderSettings{}, err
	}

	for _, a := range quickActionAmounts {
		if a <= 0 {
			return ReminderSettings{}, ErrInvalidQuickAction
		}
	}

	if len(quickActionAmounts) == 0 {
		quickActionAmounts = DefaultQuickActionAmounts
	}

	return ReminderSettings{
		enabled:            enabled,
		interval:           interval,
		quietHours:         quietHours,
		mode:               mode,
		dailyTargetMl:      dailyTargetMl,
		quickActionAmounts: slices.Clone(quickActionAmounts),
	}, nil
}

func DefaultReminderSettings() ReminderSettings {
	return ReminderSettings{
		enabled:            false,
		interval:           MustReminderInterval(DefaultReminderIntervalMinutes),
		quietHours:         MustQuietHours(DefaultQuietStartHour, DefaultQuietEndHour),
		mode:               ReminderModeAlways,
		dailyTargetMl:      DefaultDailyTargetMl,
		quickActionAmounts: slices.Clone(DefaultQuickActionAmounts),
	}
}

func (s ReminderSettings) Enabled() bool {
	return s.enabled
}

func (s ReminderSettings) Interval() ReminderInterval {
	return s.interval
}

func (s ReminderSettings) QuietHours() QuietHours {
	return s.quietHours
}

func (s ReminderSettings) Mode() ReminderMode {
	return s.mode
}

func (s ReminderSettings) DailyTargetMl() int {
	return s.dailyTargetMl
}

func (s ReminderSettings) QuickActionAmounts() []int {
	return slices.Clone(s.quickActionAmounts)
}

func (s ReminderSettings) WithEnabled(enabled bool) ReminderSettings {
	s.enabled = enabled
	s.quickActionAmounts = slices.Clone(s.quickActionAmounts)

	return s
}

// TimingChanged reports whether a change requires the pending reminder to be recomputed.
func (s ReminderSettings) TimingChanged(other ReminderSettings) bool {
	return s.enabled != other.enabled ||
		s.interval != other.interval ||
		s.quietHours != other.quietHours
}

func (s ReminderSettings) Equals(other ReminderSettings) bool {
	return s.enabled == other.enabled &&
		s.interval == other.interval &&
		s.quietHours == other.quietHours &&
		s.mode == other.mode &&
		s.dailyTargetMl == other.dailyTargetMl &&
		slices.Equal(s.quickActionAmounts, other.quickActionAmounts)
}
