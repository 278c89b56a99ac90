package domain

import (
	"fmt"
	"time"
)

// TimeRange is half-open: [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidTimeRange
	}

	return TimeRange{Start: start, End: end}, nil
}

func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

func NewSortOrder(s string) (SortOrder, error) {
	switch s {
	case "", string(SortAscending):
		return SortAscending, nil
	case string(SortDescending):
		return SortDescending, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidSortOrder, s)
	}
}
