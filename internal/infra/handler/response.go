package handler

import (
	"time"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/app"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type IntakeResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	AmountMl  int       `json:"amount_ml"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type IntakesResponse struct {
	Intakes []IntakeResponse `json:"intakes"`
	Count   int              `json:"count"`
	TotalMl int              `json:"total_ml"`
}

type TodayIntakesResponse struct {
	Date          string           `json:"date"`
	Intakes       []IntakeResponse `json:"intakes"`
	TotalMl       int              `json:"total_ml"`
	DailyTargetMl int              `json:"daily_target_ml"`
}

type DaySumResponse struct {
	Date    string `json:"date"`
	TotalMl int    `json:"total_ml"`
}

type DailySumsResponse struct {
	Start   string           `json:"start"`
	End     string           `json:"end"`
	TZ      string           `json:"tz"`
	Days    []DaySumResponse `json:"days"`
	TotalMl int              `json:"total_ml"`
}

type SummaryResponse struct {
	Period           string           `json:"period"`
	Start            string           `json:"start"`
	End              string           `json:"end"`
	TZ               string           `json:"tz"`
	Days             []DaySumResponse `json:"days"`
	TotalMl          int              `json:"total_ml"`
	AverageMl        float64          `json:"average_ml"`
	AverageRoundedMl int              `json:"average_rounded_ml"`
	DaysWithData     int              `json:"days_with_data"`
	Best             *DaySumResponse  `json:"best,omitempty"`
	Worst            *DaySumResponse  `json:"worst,omitempty"`
}

type StreakResponse struct {
	Today        string `json:"today"`
	TodayTotalMl int    `json:"today_total_ml"`
	TargetMl     int    `json:"target_ml"`
	Current      int    `json:"current"`
	Longest      int    `json:"longest"`
	LookbackDays int    `json:"lookback_days"`
}

type SettingsResponse struct {
	Enabled            bool   `json:"enabled"`
	IntervalMinutes    int    `json:"interval_minutes"`
	QuietStartHour     int    `json:"quiet_start_hour"`
	QuietEndHour       int    `json:"quiet_end_hour"`
	Mode               string `json:"mode"`
	DailyTargetMl      int    `json:"daily_target_ml"`
	QuickActionAmounts []int  `json:"quick_action_amounts"`
}

type ReminderStatusResponse struct {
	State      string     `json:"state"`
	Armed      bool       `json:"armed"`
	NextFireAt *time.Time `json:"next_fire_at,omitempty"`
	Precision  string     `json:"precision,omitempty"`
}

func FromIntakeOutput(output app.IntakeOutput) IntakeResponse {
	return IntakeResponse{
		ID:        output.ID,
		Timestamp: output.Timestamp,
		AmountMl:  output.AmountMl,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
}

func fromIntakeOutputs(outputs []app.IntakeOutput) []IntakeResponse {
	intakes := make([]IntakeResponse, 0, len(outputs))
	for _, o := range outputs {
		intakes = append(intakes, FromIntakeOutput(o))
	}

	return intakes
}

func FromIntakesOutput(output app.IntakesOutput) IntakesResponse {
	return IntakesResponse{
		Intakes: fromIntakeOutputs(output.Intakes),
		Count:   output.Count,
		TotalMl: output.TotalMl,
	}
}

func FromTodayIntakesOutput(output app.TodayIntakesOutput) TodayIntakesResponse {
	return TodayIntakesResponse{
		Date:          output.Date,
		Intakes:       fromIntakeOutputs(output.Intakes),
		TotalMl:       output.TotalMl,
		DailyTargetMl: output.DailyTargetMl,
	}
}

func fromDaySum(output app.DaySumOutput) DaySumResponse {
	return DaySumResponse{
		Date:    output.Date,
		TotalMl: output.TotalMl,
	}
}

func fromDaySums(outputs []app.DaySumOutput) []DaySumResponse {
	days := make([]DaySumResponse, 0, len(outputs))
	for _, o := range outputs {
		days = append(days, fromDaySum(o))
	}

	return days
}

func FromDailySumsOutput(output app.DailySumsOutput) DailySumsResponse {
	return DailySumsResponse{
		Start:   output.From,
		End:     output.To,
		TZ:      output.TimeZone,
		Days:    fromDaySums(output.Days),
		TotalMl: output.TotalMl,
	}
}

func FromSummaryOutput(output app.SummaryOutput) SummaryResponse {
	resp := SummaryResponse{
		Period:           output.Period,
		Start:            output.From,
		End:              output.To,
		TZ:               output.TimeZone,
		Days:             fromDaySums(output.Days),
		TotalMl:          output.TotalMl,
		AverageMl:        output.AverageMl,
		AverageRoundedMl: output.AverageRoundedMl,
		DaysWithData:     output.DaysWithData,
	}

	if output.Best != nil {
		best := fromDaySum(*output.Best)
		resp.Best = &best
	}

	if output.Worst != nil {
		worst := fromDaySum(*output.Worst)
		resp.Worst = &worst
	}

	return resp
}

func FromStreakOutput(output app.StreakOutput) StreakResponse {
	return StreakResponse(output)
}

func FromSettingsOutput(output app.SettingsOutput) SettingsResponse {
	return SettingsResponse(output)
}

func FromReminderStatusOutput(output app.ReminderStatusOutput) ReminderStatusResponse {
	return ReminderStatusResponse(output)
}
