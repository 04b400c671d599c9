package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/metrics"
	"github.com/benx421/layaway/internal/repository"
)

const (
	defaultInterval  = 2 * time.Second
	defaultBatchSize = 100
)

// OutboxWorker polls unpublished outbox rows and hands them to a Publisher.
// Rows are claimed with SKIP LOCKED so several workers can run side by side.
type OutboxWorker struct {
	db        *db.DB
	publisher Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
	interval  time.Duration
	batchSize int
}

// NewOutboxWorker creates a new OutboxWorker
func NewOutboxWorker(
	database *db.DB,
	publisher Publisher,
	m *metrics.Metrics,
	logger *slog.Logger,
	interval time.Duration,
	batchSize int,
) *OutboxWorker {
	if interval <= 0 {
		interval = defaultInterval
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &OutboxWorker{
		db:        database,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		interval:  interval,
		batchSize: batchSize,
	}
}

// Run relays events until ctx is cancelled
func (w *OutboxWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		if _, err := w.processOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			w.logger.ErrorContext(ctx, "outbox iteration failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *OutboxWorker) processOnce(ctx context.Context) (int, error) {
	tx, cancel, err := w.db.StartTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer cancel()
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	published, err := w.processBatch(ctx, repository.NewOutboxRepository(tx))
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit outbox batch: %w", err)
	}
	return published, nil
}

// processBatch publishes one batch and records the outcome of each row. A
// failed publish leaves the row unpublished for the next tick.
func (w *OutboxWorker) processBatch(ctx context.Context, outbox repository.OutboxRepository) (int, error) {
	records, err := outbox.FetchUnpublished(ctx, w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch outbox events: %w", err)
	}

	published := 0
	now := w.now()
	for _, rec := range records {
		if err := w.publisher.Publish(ctx, rec.EventType, rec.Payload, rec.PartitionKey); err != nil {
			w.logger.WarnContext(ctx, "event publish failed",
				"event_id", rec.ID,
				"event_type", rec.EventType,
				"retry_count", rec.RetryCount,
				"error", err,
			)
			w.observe(rec.EventType, "failure")
			if markErr := outbox.MarkFailed(ctx, rec.ID, err.Error(), now); markErr != nil {
				return published, fmt.Errorf("failed to record publish failure: %w", markErr)
			}
			continue
		}

		if err := outbox.MarkPublished(ctx, rec.ID, now); err != nil {
			return published, fmt.Errorf("failed to mark event published: %w", err)
		}
		w.observe(rec.EventType, "success")
		published++
	}

	return published, nil
}

func (w *OutboxWorker) observe(eventType, outcome string) {
	if w.metrics != nil {
		w.metrics.OutboxPublished.WithLabelValues(eventType, outcome).Inc()
	}
}
