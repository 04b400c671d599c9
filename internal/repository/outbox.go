package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/models"
	"github.com/google/uuid"
)

// OutboxRepository defines the interface for the transactional event outbox
type OutboxRepository interface {
	Enqueue(ctx context.Context, eventType, partitionKey string, payload any) error
	FetchUnpublished(ctx context.Context, limit int) ([]models.OutboxEvent, error)
	MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string, at time.Time) error
}

type outboxRepository struct {
	db db.DBTX
}

// NewOutboxRepository creates a new OutboxRepository
func NewOutboxRepository(q db.DBTX) OutboxRepository {
	return &outboxRepository{db: q}
}

// Enqueue marshals payload and writes it alongside the caller's transaction
func (r *outboxRepository) Enqueue(ctx context.Context, eventType, partitionKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	query := `
		INSERT INTO outbox_events (id, event_type, partition_key, payload)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := r.db.ExecContext(ctx, query, uuid.New(), eventType, partitionKey, string(body)); err != nil {
		return translate(err, "enqueue outbox event")
	}
	return nil
}

// FetchUnpublished returns up to limit unpublished events, oldest first.
// SKIP LOCKED lets several relays share the table.
func (r *outboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]models.OutboxEvent, error) {
	query := `
		SELECT id, event_type, partition_key, payload, retry_count, last_error, last_error_at, published_at, created_at
		FROM outbox_events
		WHERE published_at IS NULL
		ORDER BY created_at
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch outbox events: %w", err)
	}
	defer rows.Close() //nolint:errcheck // close error is not actionable

	var out []models.OutboxEvent
	for rows.Next() {
		var e models.OutboxEvent
		if err := rows.Scan(
			&e.ID,
			&e.EventType,
			&e.PartitionKey,
			&e.Payload,
			&e.RetryCount,
			&e.LastError,
			&e.LastErrorAt,
			&e.PublishedAt,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan outbox event: %w", err)
		}
		out = append(out, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating outbox events: %w", err)
	}

	return out, nil
}

func (r *outboxRepository) MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error {
	result, err := r.db.ExecContext(ctx, `UPDATE outbox_events SET published_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("failed to mark outbox event published: %w", err)
	}
	return expectOneRow(result, "mark outbox event published")
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string, at time.Time) error {
	query := `
		UPDATE outbox_events
		SET retry_count = retry_count + 1, last_error = $2, last_error_at = $3
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, errMsg, at)
	if err != nil {
		return fmt.Errorf("failed to mark outbox event failed: %w", err)
	}
	return expectOneRow(result, "mark outbox event failed")
}
