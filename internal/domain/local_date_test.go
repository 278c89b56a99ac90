package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
)

func TestNewLocalDateNormalizes(t *testing.T) {
	d := domain.NewLocalDate(2024, time.February, 30)

	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, "2024-03-01", d.String())
}

func TestLocalDateAddDays(t *testing.T) {
	tests := []struct {
		name     string
		date     domain.LocalDate
		days     int
		expected string
	}{
		{name: "next day", date: domain.NewLocalDate(2024, time.May, 1), days: 1, expected: "2024-05-02"},
		{name: "across month end", date: domain.NewLocalDate(2024, time.January, 31), days: 1, expected: "2024-02-01"},
		{name: "leap day", date: domain.NewLocalDate(2024, time.February, 28), days: 1, expected: "2024-02-29"},
		{name: "backwards across year", date: domain.NewLocalDate(2024, time.January, 1), days: -1, expected: "2023-12-31"},
		{name: "zero", date: domain.NewLocalDate(2024, time.May, 1), days: 0, expected: "2024-05-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.date.AddDays(tt.days).String())
		})
	}
}

func TestLocalDateOrdering(t *testing.T) {
	a := domain.NewLocalDate(2023, time.December, 31)
	b := domain.NewLocalDate(2024, time.January, 1)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(b))
	assert.False(t, a.Before(a))
	assert.True(t, a.Equals(domain.NewLocalDate(2023, time.December, 31)))
	assert.True(t, domain.LocalDate{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestParseLocalDateSuccess(t *testing.T) {
	d, err := domain.ParseLocalDate("2024-05-17")

	require.NoError(t, err)
	assert.Equal(t, domain.NewLocalDate(2024, time.May, 17), d)
}

func TestParseLocalDateError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "wrong layout", input: "17/05/2024"},
		{name: "invalid day", input: "2024-02-30"},
		{name: "with time", input: "2024-05-17T10:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseLocalDate(tt.input)

			assert.ErrorIs(t, err, domain.ErrInvalidLocalDate)
		})
	}
}

func TestLocalDateOf(t *testing.T) {
	instant := time.Date(2024, 5, 1, 22, 0, 0, 0, time.UTC)

	assert.Equal(t, domain.NewLocalDate(2024, time.May, 1), domain.LocalDateOf(instant, time.UTC))
	assert.Equal(t, domain.NewLocalDate(2024, time.May, 2), domain.LocalDateOf(instant, time.FixedZone("UTC+3", 3*60*60)))
	assert.Equal(t, domain.NewLocalDate(2024, time.May, 1), domain.LocalDateOf(instant, nil))
}

func TestDayWindowSuccess(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	from := domain.NewLocalDate(2024, time.May, 1)
	to := domain.NewLocalDate(2024, time.May, 3)

	tr, err := domain.DayWindow(from, to, loc)

	require.NoError(t, err)
	assert.True(t, tr.Start.Equal(time.Date(2024, 5, 1, 5, 0, 0, 0, time.UTC)))
	assert.True(t, tr.End.Equal(time.Date(2024, 5, 4, 5, 0, 0, 0, time.UTC)))
	assert.True(t, tr.Contains(time.Date(2024, 5, 4, 4, 59, 59, 0, time.UTC)))
	assert.False(t, tr.Contains(tr.End))
}

func TestDayWindowError(t *testing.T) {
	_, err := domain.DayWindow(
		domain.NewLocalDate(2024, time.May, 3),
		domain.NewLocalDate(2024, time.May, 1),
		time.UTC,
	)

	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
}

func TestNewSortOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.SortOrder
		wantErr  bool
	}{
		{name: "empty defaults to ascending", input: "", expected: domain.SortAscending},
		{name: "asc", input: "asc", expected: domain.SortAscending},
		{name: "desc", input: "desc", expected: domain.SortDescending},
		{name: "unknown", input: "newest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := domain.NewSortOrder(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidSortOrder)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, order)
		})
	}
}
