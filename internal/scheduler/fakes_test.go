package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/scheduler"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Location() *time.Location {
	return time.UTC
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = t
}

type fakeTimer struct {
	mu        sync.Mutex
	denyExact bool
	failAll   bool
	active    map[string]scheduler.TimerHandle
	arms      []scheduler.TimerHandle
	cancelled []string
}

func newFakeTimer() *fakeTimer {
	return &fakeTimer{active: make(map[string]scheduler.TimerHandle)}
}

func (f *fakeTimer) Arm(_ context.Context, at time.Time, token string, precision scheduler.Precision) (scheduler.TimerHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failAll {
		return scheduler.TimerHandle{}, errors.New("alarm service unavailable")
	}

	if f.denyExact && precision == scheduler.PrecisionExact {
		return scheduler.TimerHandle{}, scheduler.ErrExactTimerUnavailable
	}

	h := scheduler.TimerHandle{Token: token, FireAt: at, Precision: precision}
	f.active[token] = h
	f.arms = append(f.arms, h)

	return h, nil
}

func (f *fakeTimer) Cancel(_ context.Context, handle scheduler.TimerHandle) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.active, handle.Token)
	f.cancelled = append(f.cancelled, handle.Token)

	return nil
}

// deliver drops the handle from the active set the way a fired one-shot timer does.
func (f *fakeTimer) deliver(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.active, token)
}

func (f *fakeTimer) Active() []scheduler.TimerHandle {
	f.mu.Lock()
	defer f.mu.Unlock()

	handles := make([]scheduler.TimerHandle, 0, len(f.active))
	for _, h := range f.active {
		handles = append(handles, h)
	}

	return handles
}

func (f *fakeTimer) ArmCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.arms)
}

// only returns the single active handle, or a zero handle when there is not exactly one.
func (f *fakeTimer) only() scheduler.TimerHandle {
	active := f.Active()
	if len(active) != 1 {
		return scheduler.TimerHandle{}
	}

	return active[0]
}

type memorySettings struct {
	mu       sync.Mutex
	settings domain.ReminderSettings
	pending  domain.PendingReminder
}

func newMemorySettings(settings domain.ReminderSettings) *memorySettings {
	return &memorySettings{settings: settings}
}

func (m *memorySettings) Load(context.Context) (domain.ReminderSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.settings, nil
}

func (m *memorySettings) Save(_ context.Context, settings domain.ReminderSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = settings

	return nil
}

func (m *memorySettings) LoadPendingReminder(context.Context) (domain.PendingReminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.pending, nil
}

func (m *memorySettings) SavePendingReminder(_ context.Context, pending domain.PendingReminder) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending = pending

	return nil
}

type fixedProgress struct {
	total int
	err   error
}

func (p *fixedProgress) TodayTotal(context.Context) (int, error) {
	return p.total, p.err
}

type recordingSink struct {
	mu            sync.Mutex
	notifications []scheduler.Notification
}

func (s *recordingSink) Notify(_ context.Context, n scheduler.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, n)

	return nil
}

func (s *recordingSink) All() []scheduler.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]scheduler.Notification(nil), s.notifications...)
}

type countingRecorder struct {
	mu        sync.Mutex
	outcomes  []string
	fallbacks int
}

func (r *countingRecorder) RecordFire(_ context.Context, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.outcomes = append(r.outcomes, outcome)
}

func (r *countingRecorder) RecordTimerFallback(context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fallbacks++
}
