package pubsub

import (
	"context"
	"io"

	sipv1 "github.com/KasumiMercury/primind-sip-scheduler/internal/gen/sip/v1"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=pubsub

type Publisher interface {
	PublishReminderSurfaced(ctx context.Context, event *sipv1.ReminderSurfaced) error
	PublishIntakeRecorded(ctx context.Context, event *sipv1.IntakeRecorded) error
	io.Closer
}
