package domain

import (
	"time"
)

type IntakeRecord struct {
	id        IntakeID
	timestamp time.Time
	amountMl  int
	createdAt time.Time
	updatedAt time.Time
}

// NewIntakeRecord truncates the timestamp to milliseconds, the storage resolution.
func NewIntakeRecord(timestamp time.Time, amountMl int) (*IntakeRecord, error) {
	if timestamp.IsZero() {
		return nil, ErrZeroTimestamp
	}

	if amountMl <= 0 {
		return nil, ErrNonPositiveAmount
	}

	now := time.Now()

	return &IntakeRecord{
		id:        NewIntakeID(),
		timestamp: time.UnixMilli(timestamp.UnixMilli()).UTC(),
		amountMl:  amountMl,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstituteIntakeRecord(
	id IntakeID,
	timestamp time.Time,
	amountMl int,
	createdAt time.Time,
	updatedAt time.Time,
) *IntakeRecord {
	return &IntakeRecord{
		id:        id,
		timestamp: timestamp.UTC(),
		amountMl:  amountMl,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// CorrectAmount replaces the amount; the timestamp never changes.
func (r *IntakeRecord) CorrectAmount(amountMl int) error {
	if amountMl <= 0 {
		return ErrNonPositiveAmount
	}

	r.amountMl = amountMl
	r.updatedAt = time.Now()

	return nil
}

func (r *IntakeRecord) ID() IntakeID {
	return r.id
}

func (r *IntakeRecord) Timestamp() time.Time {
	return r.timestamp
}

func (r *IntakeRecord) AmountMl() int {
	return r.amountMl
}

func (r *IntakeRecord) CreatedAt() time.Time {
	return r.createdAt
}

func (r *IntakeRecord) UpdatedAt() time.Time {
	return r.updatedAt
}
