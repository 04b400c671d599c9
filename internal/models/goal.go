package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal is a user's commitment to save toward one product
type Goal struct {
	TargetDate   time.Time       `db:"target_date"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
	EndDate      *time.Time      `db:"end_date"`
	Status       GoalStatus      `db:"status"`
	TargetAmount decimal.Decimal `db:"target_amount"`
	Saved        decimal.Decimal `db:"saved"`
	LockedPrice  decimal.Decimal `db:"locked_price"`
	ID           uuid.UUID       `db:"id"`
	UserID       uuid.UUID       `db:"user_id"`
	ProductID    uuid.UUID       `db:"product_id"`
}

// Remaining returns how much may still be deposited before the goal is fully funded
func (g *Goal) Remaining() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.Saved)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// PriceLockStatus represents the status of a price lock
type PriceLockStatus string

const (
	PriceLockStatusActive PriceLockStatus = "ACTIVE"
)

// PriceLock freezes the product price for the lifetime of a goal
type PriceLock struct {
	ExpiresAt     time.Time       `db:"expires_at"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
	Status        PriceLockStatus `db:"status"`
	LockedPrice   decimal.Decimal `db:"locked_price"`
	OriginalPrice decimal.Decimal `db:"original_price"`
	ID            uuid.UUID       `db:"id"`
	GoalID        uuid.UUID       `db:"goal_id"`
	ProductID     uuid.UUID       `db:"product_id"`
}

// Product is the catalogue entry a goal saves toward
type Product struct {
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	ID        uuid.UUID       `db:"id"`
	StoreID   uuid.UUID       `db:"store_id"`
}
