package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefundRequest is a cancellation awaiting admin review
type RefundRequest struct {
	CreatedAt    time.Time           `db:"created_at"`
	ProcessedAt  *time.Time          `db:"processed_at"`
	AdminID      *uuid.UUID          `db:"admin_id"`
	Reason       string              `db:"reason"`
	ResponseNote string              `db:"response_note"`
	Status       RefundRequestStatus `db:"status"`
	Amount       decimal.Decimal     `db:"amount"`
	ID           uuid.UUID           `db:"id"`
	UserID       uuid.UUID           `db:"user_id"`
	GoalID       uuid.UUID           `db:"goal_id"`
}

// Refund is the realized payout of an approved refund request
type Refund struct {
	CreatedAt       time.Time       `db:"created_at"`
	Amount          decimal.Decimal `db:"amount"`
	PlatformShare   decimal.Decimal `db:"platform_share"`
	StoreShare      decimal.Decimal `db:"store_share"`
	ID              uuid.UUID       `db:"id"`
	RefundRequestID uuid.UUID       `db:"refund_request_id"`
	GoalID          uuid.UUID       `db:"goal_id"`
	UserID          uuid.UUID       `db:"user_id"`
}
