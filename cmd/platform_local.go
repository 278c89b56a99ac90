//go:build !gcloud

package main

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/config"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/observability"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/observability/logging"
)

// validatePlatform accepts any configuration: sqlite and a missing NATS_URL are both
// valid for local runs.
func validatePlatform(*config.Config) error {
	return nil
}

func initPublisher(ctx context.Context, cfg *config.Config) (pubsub.Publisher, error) {
	if cfg.PubSub.NatsURL == "" {
		slog.Warn("NATS_URL not set, event publishing disabled")
		return nil, nil
	}

	publisher, err := pubsub.NewNATSPublisherWithStream(ctx, pubsub.NATSPublisherConfig{
		URL: cfg.PubSub.NatsURL,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("NATS publisher initialized", "url", cfg.PubSub.NatsURL)
	return publisher, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    "sip-scheduler",
			Version: Version,
		},
		Environment:   logging.EnvDev,
		SamplingRate:  1.0,
		DefaultModule: logging.Module("sip"),
		LogLevel:      cfg.Log.Level,
	})
}
