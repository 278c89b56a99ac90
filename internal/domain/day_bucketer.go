package domain

import (
	"sort"
	"time"
)

type DaySum struct {
	Date    LocalDate
	TotalMl int
}

// DailySums buckets records by their local date in loc. Only records inside window
// are counted, days without records are omitted, and the result is ascending by date.
func DailySums(records []*IntakeRecord, loc *time.Location, window TimeRange) []DaySum {
	totals := make(map[LocalDate]int)

	for _, r := range records {
		if !window.Contains(r.Timestamp()) {
			continue
		}

		totals[LocalDateOf(r.Timestamp(), loc)] += r.AmountMl()
	}

	sums := make([]DaySum, 0, len(totals))
	for date, total := range totals {
		sums = append(sums, DaySum{Date: date, TotalMl: total})
	}

	sort.Slice(sums, func(i, j int) bool {
		return sums[i].Date.Before(sums[j].Date)
	})

	return sums
}

// FillGaps turns a sparse series into a dense one over [from, to], inserting zero days.
func FillGaps(sums []DaySum, from, to LocalDate) []DaySum {
	if to.Before(from) {
		return nil
	}

	byDate := make(map[LocalDate]int, len(sums))
	for _, s := range sums {
		byDate[s.Date] = s.TotalMl
	}

	dense := make([]DaySum, 0)
	for d := from; !d.After(to); d = d.AddDays(1) {
		dense = append(dense, DaySum{Date: d, TotalMl: byDate[d]})
	}

	return dense
}

func TotalOf(sums []DaySum) int {
	total := 0
	for _, s := range sums {
		total += s.TotalMl
	}

	return total
}
