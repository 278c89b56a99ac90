package scheduler

import (
	"context"
	"errors"
	"time"
)

var ErrExactTimerUnavailable = errors.New("exact timer unavailable")

type Precision int

const (
	PrecisionExact Precision = iota
	PrecisionInexact
)

func (p Precision) String() string {
	switch p {
	case PrecisionExact:
		return "exact"
	case PrecisionInexact:
		return "inexact"
	default:
		return "unknown"
	}
}

// TimerHandle identifies one armed timer. Token is echoed back on delivery.
type TimerHandle struct {
	Token     string
	FireAt    time.Time
	Precision Precision
}

// TimerService arms one-shot wake-ups. Arm returns ErrExactTimerUnavailable when
// exact precision is refused; the caller may retry with PrecisionInexact.
type TimerService interface {
	Arm(ctx context.Context, at time.Time, token string, precision Precision) (TimerHandle, error)
	Cancel(ctx context.Context, handle TimerHandle) error
}

// Receiver is what a TimerService delivers fired tokens to.
type Receiver interface {
	OnTimerFire(ctx context.Context, token string) error
}
