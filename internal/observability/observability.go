package observability

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/observability/logging"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/observability/metrics"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/observability/tracing"
)

type Config struct {
	ServiceInfo   logging.ServiceInfo
	Environment   logging.Environment
	GCPProjectID  string
	SamplingRate  float64
	DefaultModule logging.Module
	LogLevel      string
}

type Resources struct {
	Logger          *slog.Logger
	Tracing         *tracing.Provider
	Metrics         *metrics.Provider
	HTTPMetrics     *metrics.HTTPMetrics
	ReminderMetrics *metrics.ReminderMetrics
}

// Init installs the default logger, the global tracer and meter providers and the
// W3C propagator.
func Init(ctx context.Context, cfg Config) (*Resources, error) {
	logger := logging.Setup(logging.Config{
		Level:         cfg.LogLevel,
		Service:       cfg.ServiceInfo,
		Environment:   cfg.Environment,
		GCPProjectID:  cfg.GCPProjectID,
		DefaultModule: cfg.DefaultModule,
	})

	tp, err := tracing.NewProvider(ctx, tracing.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
		SamplingRate:   cfg.SamplingRate,
	})
	if err != nil {
		return nil, err
	}

	mp, err := metrics.NewProvider(ctx, metrics.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
	})
	if err != nil {
		_ = tp.Shutdown(ctx)

		return nil, err
	}

	otel.SetTracerProvider(tp.TracerProvider())
	otel.SetMeterProvider(mp.MeterProvider())
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	httpMetrics, err := metrics.NewHTTPMetrics(mp.Meter())
	if err != nil {
		return nil, errors.Join(err, tp.Shutdown(ctx), mp.Shutdown(ctx))
	}

	reminderMetrics, err := metrics.NewReminderMetrics(mp.Meter())
	if err != nil {
		return nil, errors.Join(err, tp.Shutdown(ctx), mp.Shutdown(ctx))
	}

	logger.Info("observability initialized",
		"event", "observability.init",
		"sampling_rate", cfg.SamplingRate,
	)

	return &Resources{
		Logger:          logger,
		Tracing:         tp,
		Metrics:         mp,
		HTTPMetrics:     httpMetrics,
		ReminderMetrics: reminderMetrics,
	}, nil
}

// Shutdown flushes spans and metrics.
func (r *Resources) Shutdown(ctx context.Context) error {
	return errors.Join(r.Tracing.Shutdown(ctx), r.Metrics.Shutdown(ctx))
}
