package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
)

const tracerName = "github.com/KasumiMercury/primind-sip-scheduler/internal/scheduler"

var (
	ErrClosed                 = errors.New("scheduler is closed")
	ErrPersistenceUnavailable = errors.New("settings persistence unavailable")
)

type State int

const (
	StateDisabled State = iota
	StateArmed
	StateFiring
)

func (s State) String() string {
	switch s {
	case StateDisabled:
		return "disabled"
	case StateArmed:
		return "armed"
	case StateFiring:
		return "firing"
	default:
		return "unknown"
	}
}

const (
	OutcomeSurfaced         = "surfaced"
	OutcomeSuppressedQuiet  = "suppressed_quiet_hours"
	OutcomeSuppressedTarget = "suppressed_target_reached"
	OutcomeDisabled         = "disabled"
	OutcomeFailed           = "failed"
)

// Recorder receives fire outcomes and timer fallbacks, typically for metrics.
type Recorder interface {
	RecordFire(ctx context.Context, outcome string)
	RecordTimerFallback(ctx context.Context)
}

type noopRecorder struct{}

func (noopRecorder) RecordFire(context.Context, string) {}

func (noopRecorder) RecordTimerFallback(context.Context) {}

type Config struct {
	// FireBudget bounds the work done for one timer delivery.
	FireBudget time.Duration
	// Debounce collapses bursts of settings changes. Zero applies them immediately.
	Debounce time.Duration
	// MaxPersistenceFailures is how many consecutive settings read failures are
	// tolerated before the scheduler disables itself.
	MaxPersistenceFailures int
}

func DefaultConfig() Config {
	return Config{
		FireBudget:             5 * time.Second,
		Debounce:               500 * time.Millisecond,
		MaxPersistenceFailures: 2,
	}
}

type Dependencies struct {
	Settings domain.SettingsRepository
	Progress ProgressReader
	Timer    TimerService
	Sink     NotificationSink
	Clock    domain.Clock
	Recorder Recorder
}

type Status struct {
	State      State
	Armed      bool
	NextFireAt time.Time
	Precision  Precision
}

// Scheduler keeps at most one pending reminder timer. Every transition runs under mu,
// including timer deliveries.
type Scheduler struct {
	mu sync.Mutex

	settings domain.SettingsRepository
	progress ProgressReader
	timer    TimerService
	sink     NotificationSink
	clock    domain.Clock
	recorder Recorder
	tracer   trace.Tracer
	cfg      Config

	state         State
	handle        *TimerHandle
	lastKnownGood *domain.ReminderSettings
	readFailures  int

	pending     *domain.ReminderSettings
	debounce    *time.Timer
	debounceSeq uint64

	closed bool
}

func New(deps Dependencies, cfg Config) *Scheduler {
	defaults := DefaultConfig()
	if cfg.FireBudget <= 0 {
		cfg.FireBudget = defaults.FireBudget
	}

	if cfg.MaxPersistenceFailures <= 0 {
		cfg.MaxPersistenceFailures = defaults.MaxPersistenceFailures
	}

	clock := deps.Clock
	if clock == nil {
		clock = domain.NewSystemClock(nil)
	}

	recorder := deps.Recorder
	if recorder == nil {
		recorder = noopRecorder{}
	}

	return &Scheduler{
		settings: deps.Settings,
		progress: deps.Progress,
		timer:    deps.Timer,
		sink:     deps.Sink,
		clock:    clock,
		recorder: recorder,
		tracer:   otel.Tracer(tracerName),
		cfg:      cfg,
		state:    StateDisabled,
	}
}

// Enable stores the settings as enabled and arms a reminder one interval from now,
// replacing any armed timer. Nothing is armed when the settings cannot be saved.
func (s *Scheduler) Enable(ctx context.Context, settings domain.ReminderSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	settings = settings.WithEnabled(true)

	if err := s.settings.Save(ctx, settings); err != nil {
		slog.ErrorContext(ctx, "failed to persist enabled settings",
			"error", err,
		)

		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}

	s.remember(settings)

	return s.armLocked(ctx, settings, s.clock.Now())
}

func (s *Scheduler) Disable(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	return s.disableLocked(ctx)
}

// OnTimerFire handles a delivery from the TimerService. Tokens that do not match
// the armed timer are ignored.
func (s *Scheduler) OnTimerFire(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	if s.handle == nil || s.handle.Token != token {
		slog.DebugContext(ctx, "ignoring stale timer delivery",
			"token", token,
		)

		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.FireBudget)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "reminder.fire",
		trace.WithAttributes(attribute.String("reminder.token", token)),
	)
	defer span.End()

	s.state = StateFiring
	s.handle = nil

	settings, err := s.loadSettingsForFire(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.recorder.RecordFire(ctx, OutcomeFailed)

		return err
	}

	if !settings.Enabled() {
		s.recorder.RecordFire(ctx, OutcomeDisabled)

		return s.disableLocked(ctx)
	}

	now := s.clock.Now()

	outcome := s.surfaceLocked(ctx, settings, now)
	span.SetAttributes(attribute.String("reminder.outcome", outcome))
	s.recorder.RecordFire(ctx, outcome)

	if err := s.armLocked(ctx, settings, now); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}

	return nil
}

// SettingsChanged schedules a reschedule with the given settings. Calls within the
// debounce window collapse into one, applied with the latest settings.
func (s *Scheduler) SettingsChanged(ctx context.Context, settings domain.ReminderSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	if s.cfg.Debounce <= 0 {
		return s.applySettingsLocked(ctx, settings)
	}

	s.pending = &settings
	s.debounceSeq++
	seq := s.debounceSeq

	if s.debounce != nil {
		s.debounce.Stop()
	}

	s.debounce = time.AfterFunc(s.cfg.Debounce, func() {
		s.flushSettings(seq)
	})

	slog.DebugContext(ctx, "settings change queued",
		"debounce", s.cfg.Debounce,
		"seq", seq,
	)

	return nil
}

// OnBoot restores the schedule after a restart. The next instant is computed from
// now; a persisted instant from before the restart is never reused.
func (s *Scheduler) OnBoot(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	settings, err := s.settings.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}

	s.remember(settings)

	if !settings.Enabled() {
		slog.InfoContext(ctx, "reminders disabled at boot",
			"event", "reminder.boot",
		)

		return s.disableLocked(ctx)
	}

	if pending, err := s.settings.LoadPendingReminder(ctx); err == nil {
		if at, ok := pending.NextFireAt(); ok {
			slog.DebugContext(ctx, "discarding persisted reminder instant",
				"next_fire_at", at,
			)
		}
	}

	slog.InfoContext(ctx, "restoring reminder schedule at boot",
		"event", "reminder.boot",
		"interval_minutes", settings.Interval().Minutes(),
	)

	return s.armLocked(ctx, settings, s.clock.Now())
}

// OnRecordInserted restarts the cadence from now when a reminder is armed.
func (s *Scheduler) OnRecordInserted(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.state != StateArmed {
		return nil
	}

	settings, ok := s.currentSettings(ctx)
	if !ok {
		return nil
	}

	return s.armLocked(ctx, settings, s.clock.Now())
}

func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := Status{State: s.state}
	if s.handle != nil {
		status.Armed = true
		status.NextFireAt = s.handle.FireAt
		status.Precision = s.handle.Precision
	}

	return status
}

// Close stops pending debounces and cancels the armed timer. The persisted
// instant is left in place for the next start.
func (s *Scheduler) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	s.pending = nil

	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}

	s.cancelLocked(ctx)

	return nil
}

func (s *Scheduler) flushSettings(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || seq != s.debounceSeq || s.pending == nil {
		return
	}

	settings := *s.pending
	s.pending = nil
	s.debounce = nil

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.FireBudget)
	defer cancel()

	if err := s.applySettingsLocked(ctx, settings); err != nil {
		slog.ErrorContext(ctx, "failed to apply settings change",
			"error", err,
		)
	}
}

func (s *Scheduler) applySettingsLocked(ctx context.Context, settings domain.ReminderSettings) error {
	s.remember(settings)

	if !settings.Enabled() {
		return s.disableLocked(ctx)
	}

	return s.armLocked(ctx, settings, s.clock.Now())
}

func (s *Scheduler) armLocked(ctx context.Context, settings domain.ReminderSettings, now time.Time) error {
	next, err := domain.NextAllowedInstant(now.In(s.clock.Location()), settings.Interval(), settings.QuietHours())
	if err != nil {
		s.cancelLocked(ctx)
		s.failArmLocked(ctx, settings, err)

		return fmt.Errorf("compute next reminder: %w", err)
	}

	s.cancelLocked(ctx)

	token := uuid.NewString()

	handle, err := s.timer.Arm(ctx, next, token, PrecisionExact)
	if errors.Is(err, ErrExactTimerUnavailable) {
		slog.WarnContext(ctx, "exact timer refused, falling back to inexact",
			"event", "timer.arm.fallback",
			"next_fire_at", next,
		)
		s.recorder.RecordTimerFallback(ctx)

		handle, err = s.timer.Arm(ctx, next, token, PrecisionInexact)
	}

	if err != nil {
		s.failArmLocked(ctx, settings, err)

		return fmt.Errorf("arm reminder timer: %w", err)
	}

	s.handle = &handle
	s.state = StateArmed

	slog.InfoContext(ctx, "reminder armed",
		"event", "reminder.armed",
		"next_fire_at", handle.FireAt,
		"precision", handle.Precision.String(),
	)

	if err := s.settings.SavePendingReminder(ctx, domain.NewPendingReminder(next)); err != nil {
		slog.ErrorContext(ctx, "failed to persist pending reminder",
			"error", err,
			"next_fire_at", next,
		)

		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}

	return nil
}

// failArmLocked turns reminders off when no timer could be armed, so the stored
// state never claims a pending reminder that does not exist.
func (s *Scheduler) failArmLocked(ctx context.Context, settings domain.ReminderSettings, cause error) {
	s.state = StateDisabled
	s.handle = nil

	disabled := settings.WithEnabled(false)
	s.remember(disabled)

	slog.ErrorContext(ctx, "reminder disabled, no timer could be armed",
		"event", "reminder.arm.failed",
		"error", cause,
	)

	if err := s.settings.Save(ctx, disabled); err != nil {
		slog.ErrorContext(ctx, "failed to persist disabled settings",
			"error", err,
		)
	}

	if err := s.settings.SavePendingReminder(ctx, domain.NoPendingReminder()); err != nil {
		slog.ErrorContext(ctx, "failed to clear pending reminder",
			"error", err,
		)
	}
}

func (s *Scheduler) disableLocked(ctx context.Context) error {
	s.cancelLocked(ctx)
	s.state = StateDisabled

	slog.InfoContext(ctx, "reminder disabled",
		"event", "reminder.disabled",
	)

	if err := s.settings.SavePendingReminder(ctx, domain.NoPendingReminder()); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}

	return nil
}

func (s *Scheduler) cancelLocked(ctx context.Context) {
	if s.handle == nil {
		return
	}

	if err := s.timer.Cancel(ctx, *s.handle); err != nil {
		slog.WarnContext(ctx, "failed to cancel reminder timer",
			"error", err,
			"token", s.handle.Token,
		)
	}

	s.handle = nil
}

// loadSettingsForFire falls back to the last settings that loaded successfully for
// a limited number of consecutive read failures.
func (s *Scheduler) loadSettingsForFire(ctx context.Context) (domain.ReminderSettings, error) {
	settings, err := s.settings.Load(ctx)
	if err == nil {
		s.readFailures = 0
		s.remember(settings)

		return settings, nil
	}

	s.readFailures++

	if s.lastKnownGood == nil || s.readFailures >= s.cfg.MaxPersistenceFailures {
		slog.ErrorContext(ctx, "settings unavailable, disabling reminders",
			"event", "reminder.persistence.unavailable",
			"error", err,
			"consecutive_failures", s.readFailures,
		)

		s.cancelLocked(ctx)
		s.state = StateDisabled

		if clearErr := s.settings.SavePendingReminder(ctx, domain.NoPendingReminder()); clearErr != nil {
			slog.ErrorContext(ctx, "failed to clear pending reminder",
				"error", clearErr,
			)
		}

		return domain.ReminderSettings{}, fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}

	slog.WarnContext(ctx, "settings unavailable, using last known settings",
		"error", err,
		"consecutive_failures", s.readFailures,
	)

	return *s.lastKnownGood, nil
}

func (s *Scheduler) currentSettings(ctx context.Context) (domain.ReminderSettings, bool) {
	if s.lastKnownGood != nil {
		return *s.lastKnownGood, true
	}

	settings, err := s.settings.Load(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to load settings",
			"error", err,
		)

		return domain.ReminderSettings{}, false
	}

	s.remember(settings)

	return settings, true
}

// surfaceLocked decides whether the fired reminder is shown and delivers it.
func (s *Scheduler) surfaceLocked(ctx context.Context, settings domain.ReminderSettings, now time.Time) string {
	local := now.In(s.clock.Location())

	if settings.QuietHours().IsQuietAt(local) {
		slog.InfoContext(ctx, "reminder suppressed by quiet hours",
			"event", "reminder.suppressed",
			"reason", "quiet_hours",
			"hour", local.Hour(),
		)

		return OutcomeSuppressedQuiet
	}

	total := 0

	if s.progress != nil {
		t, err := s.progress.TodayTotal(ctx)
		if err != nil {
			slog.WarnContext(ctx, "failed to read today's progress",
				"error", err,
			)
		} else {
			total = t
		}
	}

	if !settings.Mode().ShouldSurface(total, settings.DailyTargetMl()) {
		slog.InfoContext(ctx, "reminder suppressed, target reached",
			"event", "reminder.suppressed",
			"reason", "target_reached",
			"today_total_ml", total,
			"daily_target_ml", settings.DailyTargetMl(),
		)

		return OutcomeSuppressedTarget
	}

	slog.InfoContext(ctx, "surfacing reminder",
		"event", "reminder.fire",
		"today_total_ml", total,
		"daily_target_ml", settings.DailyTargetMl(),
	)

	s.notify(ctx, reminderNotification(settings, total, now))

	if total >= settings.DailyTargetMl() {
		s.notify(ctx, goalReachedNotification(settings, total, now))
	}

	return OutcomeSurfaced
}

func (s *Scheduler) notify(ctx context.Context, n Notification) {
	if s.sink == nil {
		return
	}

	if err := s.sink.Notify(ctx, n); err != nil {
		slog.ErrorContext(ctx, "failed to deliver notification",
			"error", err,
			"kind", string(n.Kind),
		)
	}
}

func (s *Scheduler) remember(settings domain.ReminderSettings) {
	s.lastKnownGood = &settings
}
