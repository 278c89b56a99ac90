package domain

import "fmt"

type ReminderMode string

const (
	ReminderModeAlways          ReminderMode = "always"
	ReminderModeOnlyUnderTarget ReminderMode = "only_under_target"
)

func NewReminderMode(m string) (ReminderMode, error) {
	switch m {
	case string(ReminderModeAlways), string(ReminderModeOnlyUnderTarget):
		return ReminderMode(m), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidMode, m)
	}
}

// ShouldSurface reports whether a reminder is shown for today's progress.
func (m ReminderMode) ShouldSurface(todayTotalMl, dailyTargetMl int) bool {
	switch m {
	case ReminderModeOnlyUnderTarget:
		return todayTotalMl < dailyTargetMl
	default:
		return true
	}
}
