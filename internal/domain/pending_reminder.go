package domain

import "time"

// PendingReminder mirrors the single armed timer. A zero value means nothing is armed.
type PendingReminder struct {
	nextFireAt *time.Time
}

func NewPendingReminder(nextFireAt time.Time) PendingReminder {
	t := nextFireAt

	return PendingReminder{nextFireAt: &t}
}

func NoPendingReminder() PendingReminder {
	return PendingReminder{}
}

func (p PendingReminder) NextFireAt() (time.Time, bool) {
	if p.nextFireAt == nil {
		return time.Time{}, false
	}

	return *p.nextFireAt, true
}

func (p PendingReminder) IsArmed() bool {
	return p.nextFireAt != nil
}
