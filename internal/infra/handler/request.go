package handler

import "time"

type RecordIntakeRequest struct {
	AmountMl  int        `json:"amount_ml" binding:"required,gt=0"`
	Timestamp *time.Time `json:"timestamp"`
}

type ListIntakesRequest struct {
	Start time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End   time.Time `form:"end" binding:"required,gtfield=Start" time_format:"2006-01-02T15:04:05Z07:00"`
	Order string    `form:"order" binding:"omitempty,oneof=asc desc"`
}

type CorrectIntakeRequest struct {
	AmountMl int `json:"amount_ml" binding:"required,gt=0"`
}

type DailySumsRequest struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
	TZ    string `form:"tz"`
	Dense bool   `form:"dense"`
}

type SummaryRequest struct {
	Period string `form:"period"`
	Days   int    `form:"days"`
	TZ     string `form:"tz"`
}

type StreakRequest struct {
	TZ string `form:"tz"`
}

// UpdateSettingsRequest uses pointers where zero is a valid value, so a missing
// field is told apart from hour 0 or false.
type UpdateSettingsRequest struct {
	Enabled            *bool  `json:"enabled" binding:"required"`
	IntervalMinutes    int    `json:"interval_minutes" binding:"required"`
	QuietStartHour     *int   `json:"quiet_start_hour" binding:"required"`
	QuietEndHour       *int   `json:"quiet_end_hour" binding:"required"`
	Mode               string `json:"mode" binding:"required"`
	DailyTargetMl      int    `json:"daily_target_ml" binding:"required"`
	QuickActionAmounts []int  `json:"quick_action_amounts"`
}
