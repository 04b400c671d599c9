package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Escrow mirrors the funds held against a goal until an admin settles them
type Escrow struct {
	CreatedAt   time.Time           `db:"created_at"`
	UpdatedAt   time.Time           `db:"updated_at"`
	ReleasedAt  *time.Time          `db:"released_at"`
	ReleasedBy  *uuid.UUID          `db:"released_by"`
	PlatformFee decimal.NullDecimal `db:"platform_fee"`
	NetAmount   decimal.NullDecimal `db:"net_amount"`
	Currency    string              `db:"currency"`
	Status      EscrowStatus        `db:"status"`
	Amount      decimal.Decimal     `db:"amount"`
	ID          uuid.UUID           `db:"id"`
	GoalID      uuid.UUID           `db:"goal_id"`
}
