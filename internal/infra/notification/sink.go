package notification

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/protobuf/types/known/timestamppb"

	sipv1 "github.com/KasumiMercury/primind-sip-scheduler/internal/gen/sip/v1"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/scheduler"
)

// PublisherSink forwards surfaced reminders to the event bus.
type PublisherSink struct {
	publisher pubsub.Publisher
}

func NewPublisherSink(publisher pubsub.Publisher) *PublisherSink {
	return &PublisherSink{publisher: publisher}
}

func (s *PublisherSink) Notify(ctx context.Context, n scheduler.Notification) error {
	amounts := make([]int32, 0, len(n.QuickActionAmounts))
	for _, a := range n.QuickActionAmounts {
		amounts = append(amounts, int32(a))
	}

	event := &sipv1.ReminderSurfaced{
		Kind:               string(n.Kind),
		Title:              n.Title,
		Body:               n.Body,
		QuickActionAmounts: amounts,
		TodayTotalMl:       int32(n.TodayTotalMl),
		DailyTargetMl:      int32(n.DailyTargetMl),
		FiredAt:            timestamppb.New(n.FiredAt),
	}

	if err := s.publisher.PublishReminderSurfaced(ctx, event); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

// LogSink writes notifications to the structured log. It is used when no event
// bus is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogSink{logger: logger}
}

func (s *LogSink) Notify(ctx context.Context, n scheduler.Notification) error {
	s.logger.InfoContext(ctx, n.Title,
		slog.String("event", "notification.delivered"),
		slog.String("kind", string(n.Kind)),
		slog.String("body", n.Body),
		slog.Any("quick_action_amounts", n.QuickActionAmounts),
		slog.Int("today_total_ml", n.TodayTotalMl),
		slog.Int("daily_target_ml", n.DailyTargetMl),
	)

	return nil
}
