package domain

import (
	"github.com/google/uuid"
)

// IntakeID is a UUIDv7, so lexical order follows insertion order.
type IntakeID struct {
	value uuid.UUID
}

func NewIntakeID() IntakeID {
	return IntakeID{value: uuid.Must(uuid.NewV7())}
}

func IntakeIDFromString(s string) (IntakeID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return IntakeID{}, ErrInvalidIntakeID
	}

	if id.Version() != 7 {
		return IntakeID{}, ErrInvalidIntakeID
	}

	return IntakeID{value: id}, nil
}

func (i IntakeID) String() string {
	return i.value.String()
}

func (i IntakeID) UUID() uuid.UUID {
	return i.value
}

func (i IntakeID) IsZero() bool {
	return i.value == uuid.Nil
}

func (i IntakeID) Equals(other IntakeID) bool {
	return i.value == other.value
}
