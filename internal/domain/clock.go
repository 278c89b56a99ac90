package domain

import "time"

// Clock supplies wall-clock now and the zone that defines the local day.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type SystemClock struct {
	location *time.Location
}

func NewSystemClock(location *time.Location) *SystemClock {
	return &SystemClock{location: location}
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.Location())
}

func (c *SystemClock) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}

	return c.location
}

func Today(c Clock) LocalDate {
	return LocalDateOf(c.Now(), c.Location())
}
