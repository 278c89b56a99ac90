package app_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/scheduler"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/testutil"
)

type fixedClock struct {
	now time.Time
	loc *time.Location
}

func newFixedClock(now time.Time) *fixedClock {
	return &fixedClock{now: now, loc: now.Location()}
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) Location() *time.Location {
	return c.loc
}

type stubScheduler struct {
	mu              sync.Mutex
	armed           bool
	changed         []domain.ReminderSettings
	recordsInserted int
	err             error
}

func (s *stubScheduler) SettingsChanged(_ context.Context, settings domain.ReminderSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.changed = append(s.changed, settings)
	s.armed = settings.Enabled()

	return s.err
}

func (s *stubScheduler) OnRecordInserted(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recordsInserted++

	return s.err
}

func (s *stubScheduler) Status() scheduler.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.armed {
		return scheduler.Status{State: scheduler.StateDisabled}
	}

	return scheduler.Status{
		State:      scheduler.StateArmed,
		Armed:      true,
		NextFireAt: time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC),
		Precision:  scheduler.PrecisionExact,
	}
}

func setupDB(t *testing.T) *testutil.TestDB {
	t.Helper()

	return testutil.SetupSQLiteDB(t)
}

// monday is 2024-03-11 14:00 UTC.
var monday = time.Date(2024, 3, 11, 14, 0, 0, 0, time.UTC)
