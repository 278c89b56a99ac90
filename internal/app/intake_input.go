package app

import "time"

type RecordIntakeInput struct {
	AmountMl int
	// Timestamp defaults to now when zero.
	Timestamp time.Time
}

type ListIntakesInput struct {
	Start time.Time
	End   time.Time
	Order string
}

type CorrectIntakeInput struct {
	ID       string
	AmountMl int
}

type DeleteIntakeInput struct {
	ID string
}
