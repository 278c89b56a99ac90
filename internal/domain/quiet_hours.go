package domain

import (
	"time"
)

const (
	DefaultQuietStartHour = 22
	DefaultQuietEndHour   = 7
)

type QuietHours struct {
	startHour int
	endHour   int
}

// NewQuietHours rejects start == end: that window would be quiet all day and no
// reminder could ever be scheduled.
func NewQuietHours(startHour, endHour int) (QuietHours, error) {
	if !validHour(startHour) || !validHour(endHour) {
		return QuietHours{}, ErrInvalidHour
	}

	if startHour == endHour {
		return QuietHours{}, ErrFullDayQuietWindow
	}

	return QuietHours{startHour: startHour, endHour: endHour}, nil
}

func MustQuietHours(startHour, endHour int) QuietHours {
	q, err := NewQuietHours(startHour, endHour)
	if err != nil {
		panic(err)
	}

	return q
}

func (q QuietHours) StartHour() int {
	return q.startHour
}

func (q QuietHours) EndHour() int {
	return q.endHour
}

func (q QuietHours) IsQuiet(hour int) bool {
	return IsQuietHour(hour, q.startHour, q.endHour)
}

// IsQuietAt evaluates the hour of t in t's own location.
func (q QuietHours) IsQuietAt(t time.Time) bool {
	return q.IsQuiet(t.Hour())
}

// AllowedMinutes is the length of the non-quiet part of the day.
func (q QuietHours) AllowedMinutes() int {
	quiet := 0
	for h := 0; h < 24; h++ {
		if q.IsQuiet(h) {
			quiet++
		}
	}

	return (24 - quiet) * 60
}

// Admits reports whether stepping by interval leaves the quiet window from every
// starting minute. Candidates stay on one residue class modulo gcd(interval, day),
// so the allowed window must be at least that wide to contain one of them.
func (q QuietHours) Admits(interval ReminderInterval) bool {
	if interval.Minutes() <= 0 {
		return false
	}

	return gcd(interval.Minutes(), minutesPerDay) <= q.AllowedMinutes()
}

// IsQuietHour: start < end is the same-day window [start, end); anything else wraps
// midnight, and start == end is quiet around the clock.
func IsQuietHour(hour, startHour, endHour int) bool {
	if startHour < endHour {
		return hour >= startHour && hour < endHour
	}

	return hour >= startHour || hour < endHour
}

// NextAllowedInstant steps from now by interval until the candidate's hour (in now's
// location) is outside the quiet window, then truncates to the minute.
func NextAllowedInstant(now time.Time, interval ReminderInterval, quiet QuietHours) (time.Time, error) {
	step := interval.Duration()
	if step <= 0 {
		return time.Time{}, ErrInvalidInterval
	}

	// Candidate positions within the day repeat after this many steps.
	maxSteps := minutesPerDay/gcd(interval.Minutes(), minutesPerDay) + 1

	candidate := now.Add(step)
	for i := 0; quiet.IsQuietAt(candidate); i++ {
		if i >= maxSteps {
			return time.Time{}, ErrNoAllowedInstant
		}

		candidate = candidate.Add(step)
	}

	return candidate.Truncate(time.Minute), nil
}

const minutesPerDay = 24 * 60

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func validHour(h int) bool {
	return h >= 0 && h <= 23
}
