package app

import (
	"time"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/scheduler"
)

type SettingsOutput struct {
	Enabled            bool
	IntervalMinutes    int
	QuietStartHour     int
	QuietEndHour       int
	Mode               string
	DailyTargetMl      int
	QuickActionAmounts []int
}

type ReminderStatusOutput struct {
	State      string
	Armed      bool
	NextFireAt *time.Time
	Precision  string
}

func FromReminderSettings(s domain.ReminderSettings) SettingsOutput {
	return SettingsOutput{
		Enabled:            s.Enabled(),
		IntervalMinutes:    s.Interval().Minutes(),
		QuietStartHour:     s.QuietHours().StartHour(),
		QuietEndHour:       s.QuietHours().EndHour(),
		Mode:               string(s.Mode()),
		DailyTargetMl:      s.DailyTargetMl(),
		QuickActionAmounts: s.QuickActionAmounts(),
	}
}

func FromSchedulerStatus(s scheduler.Status) ReminderStatusOutput {
	output := ReminderStatusOutput{
		State: s.State.String(),
		Armed: s.Armed,
	}

	if s.Armed {
		at := s.NextFireAt
		output.NextFireAt = &at
		output.Precision = s.Precision.String()
	}

	return output
}
