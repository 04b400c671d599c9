package models

import (
	"time"

	"github.com/google/uuid"
)

// Event types written to the outbox
const (
	EventGoalCompleted     = "goal.completed"
	EventEscrowReleased    = "escrow.released"
	EventRefundApproved    = "refund.approved"
	EventDeliveryDelivered = "delivery.delivered"
)

// OutboxEvent is a notification committed alongside the state change it describes
type OutboxEvent struct {
	CreatedAt    time.Time  `db:"created_at"`
	PublishedAt  *time.Time `db:"published_at"`
	LastErrorAt  *time.Time `db:"last_error_at"`
	LastError    *string    `db:"last_error"`
	EventType    string     `db:"event_type"`
	PartitionKey string     `db:"partition_key"`
	Payload      []byte     `db:"payload"`
	RetryCount   int        `db:"retry_count"`
	ID           uuid.UUID  `db:"id"`
}
