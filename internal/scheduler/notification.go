package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
)

type NotificationKind string

const (
	NotificationReminder    NotificationKind = "reminder"
	NotificationGoalReached NotificationKind = "goal_reached"
)

type Notification struct {
	Kind               NotificationKind
	Title              string
	Body               string
	QuickActionAmounts []int
	TodayTotalMl       int
	DailyTargetMl      int
	FiredAt            time.Time
}

type NotificationSink interface {
	Notify(ctx context.Context, n Notification) error
}

// ProgressReader reports the total intake of the current local day.
type ProgressReader interface {
	TodayTotal(ctx context.Context) (int, error)
}

func reminderNotification(settings domain.ReminderSettings, total int, firedAt time.Time) Notification {
	return Notification{
		Kind:               NotificationReminder,
		Title:              "Time to drink!",
		Body:               fmt.Sprintf("%d / %d ml", total, settings.DailyTargetMl()),
		QuickActionAmounts: settings.QuickActionAmounts(),
		TodayTotalMl:       total,
		DailyTargetMl:      settings.DailyTargetMl(),
		FiredAt:            firedAt,
	}
}

func goalReachedNotification(settings domain.ReminderSettings, total int, firedAt time.Time) Notification {
	return Notification{
		Kind:          NotificationGoalReached,
		Title:         "Daily goal reached!",
		Body:          fmt.Sprintf("%d ml of %d ml", total, settings.DailyTargetMl()),
		TodayTotalMl:  total,
		DailyTargetMl: settings.DailyTargetMl(),
		FiredAt:       firedAt,
	}
}
