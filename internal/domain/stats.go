package domain

const (
	DefaultStreakLookbackDays = 365
	DefaultRetentionDays      = 400
)

// Average is kept as a fraction so callers decide how to round.
type Average struct {
	TotalMl int64
	Days    int
}

func (a Average) IsZero() bool {
	return a.Days == 0
}

func (a Average) Float() float64 {
	if a.Days == 0 {
		return 0
	}

	return float64(a.TotalMl) / float64(a.Days)
}

// Rounded truncates toward zero.
func (a Average) Rounded() int {
	if a.Days == 0 {
		return 0
	}

	return int(a.TotalMl / int64(a.Days))
}

// AverageDaily averages over days that have data; empty days are not in the denominator.
func AverageDaily(sums []DaySum) Average {
	var avg Average

	for _, s := range sums {
		if s.TotalMl <= 0 {
			continue
		}

		avg.TotalMl += int64(s.TotalMl)
		avg.Days++
	}

	return avg
}

// BestDay returns the highest total. Ties go to the earliest date.
func BestDay(sums []DaySum) (DaySum, bool) {
	var (
		best  DaySum
		found bool
	)

	for _, s := range sums {
		if !found || s.TotalMl > best.TotalMl || (s.TotalMl == best.TotalMl && s.Date.Before(best.Date)) {
			best = s
			found = true
		}
	}

	return best, found
}

// WorstDay returns the lowest non-zero total. Ties go to the earliest date.
func WorstDay(sums []DaySum) (DaySum, bool) {
	var (
		worst DaySum
		found bool
	)

	for _, s := range sums {
		if s.TotalMl <= 0 {
			continue
		}

		if !found || s.TotalMl < worst.TotalMl || (s.TotalMl == worst.TotalMl && s.Date.Before(worst.Date)) {
			worst = s
			found = true
		}
	}

	return worst, found
}

// CurrentStreak counts consecutive qualifying days ending today. When today does
// not qualify yet the count starts from yesterday. At most lookbackDays are scanned.
func CurrentStreak(sums []DaySum, today LocalDate, targetMl int, lookbackDays int) int {
	if lookbackDays <= 0 {
		return 0
	}

	byDate := make(map[LocalDate]int, len(sums))
	for _, s := range sums {
		byDate[s.Date] += s.TotalMl
	}

	qualifies := func(d LocalDate) bool {
		total, ok := byDate[d]

		return ok && total >= targetMl
	}

	cursor := today
	if !qualifies(cursor) {
		cursor = cursor.AddDays(-1)
	}

	streak := 0
	for streak < lookbackDays && qualifies(cursor) {
		streak++
		cursor = cursor.AddDays(-1)
	}

	return streak
}

// LongestStreak is the longest run of consecutive qualifying days in sums.
func LongestStreak(sums []DaySum, targetMl int) int {
	longest := 0
	run := 0

	var prev LocalDate

	for _, s := range sums {
		if s.TotalMl < targetMl {
			run = 0

			continue
		}

		if run > 0 && prev.AddDays(1).Equals(s.Date) {
			run++
		} else {
			run = 1
		}

		prev = s.Date

		if run > longest {
			longest = run
		}
	}

	return longest
}
