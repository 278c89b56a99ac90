package domain

import (
	"time"
)

const LocalDateLayout = "2006-01-02"

// LocalDate is a calendar date with no zone attached. Which instants belong to it
// depends on the location it is resolved in.
type LocalDate struct {
	year  int
	month time.Month
	day   int
}

func NewLocalDate(year int, month time.Month, day int) LocalDate {
	normalized := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return LocalDate{
		year:  normalized.Year(),
		month: normalized.Month(),
		day:   normalized.Day(),
	}
}

func LocalDateOf(t time.Time, loc *time.Location) LocalDate {
	if loc == nil {
		loc = time.UTC
	}

	year, month, day := t.In(loc).Date()

	return LocalDate{year: year, month: month, day: day}
}

func ParseLocalDate(s string) (LocalDate, error) {
	t, err := time.Parse(LocalDateLayout, s)
	if err != nil {
		return LocalDate{}, ErrInvalidLocalDate
	}

	return LocalDateOf(t, time.UTC), nil
}

func (d LocalDate) Year() int {
	return d.year
}

func (d LocalDate) Month() time.Month {
	return d.month
}

func (d LocalDate) Day() int {
	return d.day
}

func (d LocalDate) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

func (d LocalDate) AddDays(n int) LocalDate {
	return NewLocalDate(d.year, d.month, d.day+n)
}

// StartIn returns local midnight; on DST gaps time.Date picks the first valid instant.
func (d LocalDate) StartIn(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}

	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func (d LocalDate) Before(other LocalDate) bool {
	return d.compare(other) < 0
}

func (d LocalDate) After(other LocalDate) bool {
	return d.compare(other) > 0
}

func (d LocalDate) Equals(other LocalDate) bool {
	return d == other
}

func (d LocalDate) String() string {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Format(LocalDateLayout)
}

func (d LocalDate) compare(other LocalDate) int {
	switch {
	case d.year != other.year:
		return d.year - other.year
	case d.month != other.month:
		return int(d.month) - int(other.month)
	default:
		return d.day - other.day
	}
}

// DayWindow covers whole local days: [from 00:00, to+1 00:00).
func DayWindow(from, to LocalDate, loc *time.Location) (TimeRange, error) {
	if to.Before(from) {
		return TimeRange{}, ErrInvalidTimeRange
	}

	return NewTimeRange(from.StartIn(loc), to.AddDays(1).StartIn(loc))
}
