package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ReminderMetrics counts timer deliveries by outcome and exact-timer fallbacks.
type ReminderMetrics struct {
	fires     metric.Int64Counter
	fallbacks metric.Int64Counter
}

func NewReminderMetrics(meter metric.Meter) (*ReminderMetrics, error) {
	fires, err := meter.Int64Counter("sip.reminder.fires",
		metric.WithDescription("Reminder timer deliveries by outcome"),
	)
	if err != nil {
		return nil, err
	}

	fallbacks, err := meter.Int64Counter("sip.reminder.timer_fallbacks",
		metric.WithDescription("Reminders armed inexact because an exact timer was refused"),
	)
	if err != nil {
		return nil, err
	}

	return &ReminderMetrics{
		fires:     fires,
		fallbacks: fallbacks,
	}, nil
}

func (m *ReminderMetrics) RecordFire(ctx context.Context, outcome string) {
	m.fires.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *ReminderMetrics) RecordTimerFallback(ctx context.Context) {
	m.fallbacks.Add(ctx, 1)
}
