package domain

import "errors"

var (
	ErrIntakeNotFound = errors.New("intake not found")

	ErrInvalidTimeRange = errors.New("invalid time range: start must be before end")
	ErrInvalidSortOrder = errors.New("invalid sort order")

	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrZeroTimestamp     = errors.New("timestamp is required")

	ErrInvalidIntakeID  = errors.New("invalid intake ID")
	ErrInvalidLocalDate = errors.New("invalid local date: must be YYYY-MM-DD")

	ErrInvalidHour        = errors.New("hour must be between 0 and 23")
	ErrFullDayQuietWindow = errors.New("quiet hours start and end must differ")
	ErrInvalidInterval    = errors.New("reminder interval must be between 1 and 1440 minutes")
	ErrInvalidMode        = errors.New("invalid reminder mode")
	ErrInvalidDailyTarget = errors.New("daily target must be greater than zero")
	ErrInvalidQuickAction = errors.New("quick action amounts must be positive")

	ErrNoAllowedInstant     = errors.New("no reminder instant falls outside quiet hours")
	ErrIntervalStuckInQuiet = errors.New("reminder interval can stay inside quiet hours forever")
)
