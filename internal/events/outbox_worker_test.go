package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/benx421/layaway/internal/metrics"
	"github.com/benx421/layaway/internal/models"
	"github.com/benx421/layaway/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOutboxWorker_ProcessBatch(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	t.Run("publishes and marks each event", func(t *testing.T) {
		outbox := mocks.NewMockOutboxRepository(t)
		publisher := NewMockPublisher(t)
		m := metrics.New()
		w := NewOutboxWorker(nil, publisher, m, testLogger(), 0, 10)
		w.now = func() time.Time { return now }
		ctx := context.Background()

		first := models.OutboxEvent{ID: uuid.New(), EventType: models.EventGoalCompleted, PartitionKey: "g1", Payload: []byte(`{"a":1}`)}
		second := models.OutboxEvent{ID: uuid.New(), EventType: models.EventEscrowReleased, PartitionKey: "g2", Payload: []byte(`{"b":2}`)}

		outbox.On("FetchUnpublished", ctx, 10).Return([]models.OutboxEvent{first, second}, nil)
		publisher.On("Publish", ctx, first.EventType, first.Payload, "g1").Return(nil)
		publisher.On("Publish", ctx, second.EventType, second.Payload, "g2").Return(nil)
		outbox.On("MarkPublished", ctx, first.ID, now).Return(nil)
		outbox.On("MarkPublished", ctx, second.ID, now).Return(nil)

		published, err := w.processBatch(ctx, outbox)

		require.NoError(t, err)
		assert.Equal(t, 2, published)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.OutboxPublished.WithLabelValues(models.EventGoalCompleted, "success")))
	})

	t.Run("failed publish is recorded and the batch continues", func(t *testing.T) {
		outbox := mocks.NewMockOutboxRepository(t)
		publisher := NewMockPublisher(t)
		w := NewOutboxWorker(nil, publisher, nil, testLogger(), time.Second, 5)
		w.now = func() time.Time { return now }
		ctx := context.Background()

		failing := models.OutboxEvent{ID: uuid.New(), EventType: models.EventRefundApproved, PartitionKey: "g1"}
		ok := models.OutboxEvent{ID: uuid.New(), EventType: models.EventDeliveryDelivered, PartitionKey: "g2"}

		outbox.On("FetchUnpublished", ctx, 5).Return([]models.OutboxEvent{failing, ok}, nil)
		publisher.On("Publish", ctx, failing.EventType, mock.Anything, "g1").Return(errors.New("broker unavailable"))
		outbox.On("MarkFailed", ctx, failing.ID, "broker unavailable", now).Return(nil)
		publisher.On("Publish", ctx, ok.EventType, mock.Anything, "g2").Return(nil)
		outbox.On("MarkPublished", ctx, ok.ID, now).Return(nil)

		published, err := w.processBatch(ctx, outbox)

		require.NoError(t, err)
		assert.Equal(t, 1, published)
	})

	t.Run("fetch failure", func(t *testing.T) {
		outbox := mocks.NewMockOutboxRepository(t)
		w := NewOutboxWorker(nil, NewMockPublisher(t), nil, testLogger(), 0, 0)
		ctx := context.Background()

		outbox.On("FetchUnpublished", ctx, defaultBatchSize).Return(nil, errors.New("db down"))

		_, err := w.processBatch(ctx, outbox)

		assert.ErrorContains(t, err, "db down")
	})
}

func TestKafkaPublisher_Topic(t *testing.T) {
	p, err := NewKafkaPublisher([]string{"localhost:9092"}, "layaway")
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	assert.Equal(t, "layaway.goal.completed", p.Topic(models.EventGoalCompleted))

	bare, err := NewKafkaPublisher([]string{"localhost:9092"}, "")
	require.NoError(t, err)
	assert.Equal(t, "escrow.released", bare.Topic(models.EventEscrowReleased))

	_, err = NewKafkaPublisher(nil, "layaway")
	assert.Error(t, err)
}

func TestLogPublisher(t *testing.T) {
	p := NewLogPublisher(testLogger())
	assert.NoError(t, p.Publish(context.Background(), models.EventGoalCompleted, []byte("{}"), "k"))
	assert.NoError(t, p.Close())
}
