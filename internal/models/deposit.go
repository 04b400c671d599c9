package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a deposit was funded
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodWallet PaymentMethod = "WALLET"
	PaymentMethodBank   PaymentMethod = "BANK_TRANSFER"
)

// DepositStatus represents the status of a deposit
type DepositStatus string

const (
	DepositStatusCompleted DepositStatus = "COMPLETED"
)

// Deposit is one immutable funding event against a goal
type Deposit struct {
	CreatedAt      time.Time       `db:"created_at"`
	IdempotencyKey *string         `db:"idempotency_key"`
	ReceiptNumber  string          `db:"receipt_number"`
	PaymentMethod  PaymentMethod   `db:"payment_method"`
	Status         DepositStatus   `db:"status"`
	Amount         decimal.Decimal `db:"amount"`
	ID             uuid.UUID       `db:"id"`
	GoalID         uuid.UUID       `db:"goal_id"`
	UserID         uuid.UUID       `db:"user_id"`
}

// IdempotencyKey tracks processed requests to prevent duplicate side effects
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	RequestPath    string    `db:"request_path"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
}
