package app

import "github.com/KasumiMercury/primind-sip-scheduler/internal/domain"

type DaySumOutput struct {
	Date    string
	TotalMl int
}

type DailySumsOutput struct {
	From     string
	To       string
	TimeZone string
	Days     []DaySumOutput
	TotalMl  int
}

type SummaryOutput struct {
	Period           string
	From             string
	To               string
	TimeZone         string
	Days             []DaySumOutput
	TotalMl          int
	AverageMl        float64
	AverageRoundedMl int
	DaysWithData     int
	Best             *DaySumOutput
	Worst            *DaySumOutput
}

type StreakOutput struct {
	Today        string
	TodayTotalMl int
	TargetMl     int
	Current      int
	Longest      int
	LookbackDays int
}

func FromDaySums(sums []domain.DaySum) []DaySumOutput {
	outputs := make([]DaySumOutput, 0, len(sums))
	for _, s := range sums {
		outputs = append(outputs, FromDaySum(s))
	}

	return outputs
}

func FromDaySum(s domain.DaySum) DaySumOutput {
	return DaySumOutput{
		Date:    s.Date.String(),
		TotalMl: s.TotalMl,
	}
}
