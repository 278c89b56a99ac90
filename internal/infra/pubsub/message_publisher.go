package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"google.golang.org/protobuf/proto"

	sipv1 "github.com/KasumiMercury/primind-sip-scheduler/internal/gen/sip/v1"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/observability/tracing"
	pjson "github.com/KasumiMercury/primind-sip-scheduler/internal/proto"
)

// MessagePublisher publishes protojson-encoded events over any watermill transport.
type MessagePublisher struct {
	publisher message.Publisher
}

func NewMessagePublisher(publisher message.Publisher) *MessagePublisher {
	return &MessagePublisher{publisher: publisher}
}

func (p *MessagePublisher) PublishReminderSurfaced(ctx context.Context, event *sipv1.ReminderSurfaced) error {
	return p.publish(ctx, TopicReminderSurfaced, EventTypeReminderSurfaced, event, map[string]string{
		"kind": event.GetKind(),
	})
}

func (p *MessagePublisher) PublishIntakeRecorded(ctx context.Context, event *sipv1.IntakeRecorded) error {
	return p.publish(ctx, TopicIntakeRecorded, EventTypeIntakeRecorded, event, map[string]string{
		"intake_id": event.GetIntakeId(),
		"amount_ml": strconv.Itoa(int(event.GetAmountMl())),
	})
}

func (p *MessagePublisher) Close() error {
	return p.publisher.Close()
}

func (p *MessagePublisher) publish(ctx context.Context, topic, eventType string, event proto.Message, metadata map[string]string) error {
	payload, err := pjson.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("event_type", eventType)

	for k, v := range metadata {
		msg.Metadata.Set(k, v)
	}

	tracing.InjectToMetadata(ctx, msg.Metadata)

	if err := p.publisher.Publish(topic, msg); err != nil {
		slog.ErrorContext(ctx, "failed to publish event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()),
		)

		return fmt.Errorf("failed to publish event: %w", err)
	}

	slog.DebugContext(ctx, "published event",
		slog.String("event_type", eventType),
		slog.String("topic", topic),
		slog.String("message_id", msg.UUID),
	)

	return nil
}
