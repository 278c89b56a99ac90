package app

import (
	"context"
	"sync"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/scheduler"
)

// ReminderScheduler is the part of the scheduler the use cases drive.
type ReminderScheduler interface {
	SettingsChanged(ctx context.Context, settings domain.ReminderSettings) error
	OnRecordInserted(ctx context.Context) error
	Status() scheduler.Status
}

// HorizonLock keeps the retention purge from running while a streak is computed
// over the same history.
type HorizonLock struct {
	mu sync.RWMutex
}

func NewHorizonLock() *HorizonLock {
	return &HorizonLock{}
}

func (l *HorizonLock) Read(fn func() error) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return fn()
}

func (l *HorizonLock) Purge(fn func() error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return fn()
}
