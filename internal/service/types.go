package service

import (
	"time"

	"github.com/benx421/layaway/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalResult is returned by goal creation
type GoalResult struct {
	Goal      *models.Goal
	PriceLock *models.PriceLock
	// Created is false when an existing live goal for the product was updated instead
	Created bool
}

// GoalUpdate carries the editable fields of a live goal
type GoalUpdate struct {
	TargetDate   time.Time
	Status       *models.GoalStatus
	TargetAmount decimal.Decimal
}

// CancelResult describes the outcome of a cancellation
type CancelResult struct {
	Goal          *models.Goal
	RefundRequest *models.RefundRequest
	// Deleted is true when the goal had no funds and was removed outright
	Deleted bool
}

// DepositRequest is a funding event to apply to a goal
type DepositRequest struct {
	IdempotencyKey *string
	PaymentMethod  models.PaymentMethod
	Amount         decimal.Decimal
	GoalID         uuid.UUID
	UserID         uuid.UUID
}

// DepositResult is the goal state after a deposit
type DepositResult struct {
	Goal    *models.Goal
	Deposit *models.Deposit
	Escrow  *models.Escrow
	// Completed is true when this deposit funded the goal in full
	Completed bool
	// Replayed is true when an earlier confirmation of the same payment was returned
	Replayed bool
}

// Checkout is a hosted checkout session opened for a deposit
type Checkout struct {
	SessionID string
	URL       string
	Currency  string
	Amount    decimal.Decimal
	GoalID    uuid.UUID
}

// PaymentConfirmation is the untrusted payload of a checkout redirect
type PaymentConfirmation struct {
	SessionID string
	Status    string
	Amount    decimal.Decimal
	GoalID    uuid.UUID
	UserID    uuid.UUID
}

// Redirect statuses reported by the checkout page
const (
	PaymentStatusSuccess = "success"
	PaymentStatusCancel  = "cancel"
)

// RefundResult is the settlement produced by approving a refund request
type RefundResult struct {
	Request    *models.RefundRequest
	Refund     *models.Refund
	Escrow     *models.Escrow
	Goal       *models.Goal
	StoreShare decimal.Decimal
}

// ReconcileReport summarizes an escrow reconciliation pass
type ReconcileReport struct {
	Backfilled int
	Synced     int64
}

// RedeemRequest converts a completed goal into a delivery
type RedeemRequest struct {
	DeliveryDate *time.Time
	GoalID       uuid.UUID
	UserID       uuid.UUID
	AddressID    uuid.UUID
}

// RedeemResult is the delivery for a redeemed goal
type RedeemResult struct {
	Delivery *models.Delivery
	// Created is false when the goal had already been redeemed
	Created bool
}

// LocationUpdate is a driver position ping. Nil coordinates hide the driver.
type LocationUpdate struct {
	Latitude  *float64
	Longitude *float64
	Label     string
}
