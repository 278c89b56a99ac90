package domain

import "time"

const (
	MinReminderIntervalMinutes     = 1
	MaxReminderIntervalMinutes     = 24 * 60
	DefaultReminderIntervalMinutes = 120
)

type ReminderInterval struct {
	minutes int
}

func NewReminderInterval(minutes int) (ReminderInterval, error) {
	if minutes < MinReminderIntervalMinutes || minutes > MaxReminderIntervalMinutes {
		return ReminderInterval{}, ErrInvalidInterval
	}

	return ReminderInterval{minutes: minutes}, nil
}

func MustReminderInterval(minutes int) ReminderInterval {
	i, err := NewReminderInterval(minutes)
	if err != nil {
		panic(err)
	}

	return i
}

func (i ReminderInterval) Minutes() int {
	return i.minutes
}

func (i ReminderInterval) Duration() time.Duration {
	return time.Duration(i.minutes) * time.Minute
}
