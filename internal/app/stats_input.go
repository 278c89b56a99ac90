package app

const (
	PeriodWeek         = "week"
	PeriodMonth        = "month"
	PeriodPreviousWeek = "previous_week"
	PeriodLastN        = "last_n"
)

// MaxRangeDays bounds any requested statistics window.
const MaxRangeDays = 400

type DailySumsInput struct {
	From     string
	To       string
	TimeZone string
	Dense    bool
}

type SummaryInput struct {
	Period   string
	Days     int
	TimeZone string
}

type StreakInput struct {
	TimeZone string
}
