package timer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/scheduler"
)

type Config struct {
	// ExactAllowed mirrors platform policy for exact alarms. When false, exact
	// requests fail with scheduler.ErrExactTimerUnavailable.
	ExactAllowed bool
	// InexactWindow is the batching window inexact timers are aligned up to.
	InexactWindow time.Duration
}

// LocalService arms in-process one-shot timers and delivers fired tokens to the
// registered receiver.
type LocalService struct {
	mu       sync.Mutex
	cfg      Config
	timers   map[string]*time.Timer
	receiver scheduler.Receiver
	now      func() time.Time
}

func NewLocalService(cfg Config) *LocalService {
	return &LocalService{
		cfg:    cfg,
		timers: make(map[string]*time.Timer),
		now:    time.Now,
	}
}

func (s *LocalService) SetReceiver(r scheduler.Receiver) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.receiver = r
}

func (s *LocalService) Arm(ctx context.Context, at time.Time, token string, precision scheduler.Precision) (scheduler.TimerHandle, error) {
	if precision == scheduler.PrecisionExact && !s.cfg.ExactAllowed {
		return scheduler.TimerHandle{}, scheduler.ErrExactTimerUnavailable
	}

	fireAt := at
	if precision == scheduler.PrecisionInexact {
		fireAt = AlignUp(at, s.cfg.InexactWindow)
	}

	delay := fireAt.Sub(s.now())
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.timers[token]; ok {
		existing.Stop()
	}

	s.timers[token] = time.AfterFunc(delay, func() {
		s.deliver(token)
	})

	slog.DebugContext(ctx, "timer armed",
		"token", token,
		"fire_at", fireAt,
		"precision", precision.String(),
		"delay", delay,
	)

	return scheduler.TimerHandle{
		Token:     token,
		FireAt:    fireAt,
		Precision: precision,
	}, nil
}

// Cancel is a no-op for tokens that already fired or were never armed.
func (s *LocalService) Cancel(ctx context.Context, handle scheduler.TimerHandle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[handle.Token]
	if !ok {
		return nil
	}

	t.Stop()
	delete(s.timers, handle.Token)

	slog.DebugContext(ctx, "timer cancelled",
		"token", handle.Token,
	)

	return nil
}

// Stop cancels every armed timer.
func (s *LocalService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, t := range s.timers {
		t.Stop()
		delete(s.timers, token)
	}
}

// deliver must not hold mu while calling the receiver: the receiver re-arms
// through Arm and Cancel.
func (s *LocalService) deliver(token string) {
	s.mu.Lock()

	if _, ok := s.timers[token]; !ok {
		s.mu.Unlock()

		return
	}

	delete(s.timers, token)
	receiver := s.receiver
	s.mu.Unlock()

	ctx := context.Background()

	if receiver == nil {
		slog.WarnContext(ctx, "timer fired without a receiver",
			"token", token,
		)

		return
	}

	if err := receiver.OnTimerFire(ctx, token); err != nil {
		slog.ErrorContext(ctx, "timer delivery failed",
			"error", err,
			"token", token,
		)
	}
}

// AlignUp rounds t up to the next multiple of window. A non-positive window
// leaves t unchanged.
func AlignUp(t time.Time, window time.Duration) time.Time {
	if window <= 0 {
		return t
	}

	aligned := t.Truncate(window)
	if aligned.Before(t) {
		aligned = aligned.Add(window)
	}

	return aligned
}
