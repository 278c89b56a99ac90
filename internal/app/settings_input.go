package app

type UpdateSettingsInput struct {
	Enabled            bool
	IntervalMinutes    int
	QuietStartHour     int
	QuietEndHour       int
	Mode               string
	DailyTargetMl      int
	QuickActionAmounts []int
}
