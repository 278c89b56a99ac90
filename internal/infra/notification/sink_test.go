package notification_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	sipv1 "github.com/KasumiMercury/primind-sip-scheduler/internal/gen/sip/v1"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/infra/notification"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/scheduler"
)

func sampleNotification() scheduler.Notification {
	return scheduler.Notification{
		Kind:               scheduler.NotificationReminder,
		Title:              "Time to drink!",
		Body:               "500 / 2500 ml",
		QuickActionAmounts: []int{100, 250, 500},
		TodayTotalMl:       500,
		DailyTargetMl:      2500,
		FiredAt:            time.Date(2024, 3, 10, 12, 0, 0, 0, time.FixedZone("JST", 9*60*60)),
	}
}

func TestPublisherSinkNotifySuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPublisher := pubsub.NewMockPublisher(ctrl)
	mockPublisher.EXPECT().
		PublishReminderSurfaced(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *sipv1.ReminderSurfaced) error {
			assert.Equal(t, "reminder", event.GetKind())
			assert.Equal(t, []int32{100, 250, 500}, event.GetQuickActionAmounts())
			assert.Equal(t, int32(500), event.GetTodayTotalMl())
			assert.Equal(t, 3, event.GetFiredAt().AsTime().Hour())

			return nil
		})

	sink := notification.NewPublisherSink(mockPublisher)

	require.NoError(t, sink.Notify(context.Background(), sampleNotification()))
}

func TestPublisherSinkNotifyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPublisher := pubsub.NewMockPublisher(ctrl)
	mockPublisher.EXPECT().
		PublishReminderSurfaced(gomock.Any(), gomock.Any()).
		Return(errors.New("nats: connection closed"))

	sink := notification.NewPublisherSink(mockPublisher)

	err := sink.Notify(context.Background(), sampleNotification())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection closed")
}

func TestLogSinkNotify(t *testing.T) {
	var buf bytes.Buffer

	sink := notification.NewLogSink(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, sink.Notify(context.Background(), sampleNotification()))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "Time to drink!", entry["msg"])
	assert.Equal(t, "notification.delivered", entry["event"])
	assert.Equal(t, "reminder", entry["kind"])
	assert.EqualValues(t, 500, entry["today_total_ml"])
}
