package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type goalCompletedEvent struct {
	CompletedAt time.Time       `json:"completed_at"`
	Saved       decimal.Decimal `json:"saved"`
	GoalID      uuid.UUID       `json:"goal_id"`
	UserID      uuid.UUID       `json:"user_id"`
	ProductID   uuid.UUID       `json:"product_id"`
}

type escrowReleasedEvent struct {
	ReleasedAt  time.Time       `json:"released_at"`
	Amount      decimal.Decimal `json:"amount"`
	PlatformFee decimal.Decimal `json:"platform_fee"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	EscrowID    uuid.UUID       `json:"escrow_id"`
	GoalID      uuid.UUID       `json:"goal_id"`
	ReleasedBy  uuid.UUID       `json:"released_by"`
}

type refundApprovedEvent struct {
	ApprovedAt      time.Time       `json:"approved_at"`
	Amount          decimal.Decimal `json:"amount"`
	UserShare       decimal.Decimal `json:"user_share"`
	PlatformShare   decimal.Decimal `json:"platform_share"`
	StoreShare      decimal.Decimal `json:"store_share"`
	RefundRequestID uuid.UUID       `json:"refund_request_id"`
	GoalID          uuid.UUID       `json:"goal_id"`
	UserID          uuid.UUID       `json:"user_id"`
}

type deliveryDeliveredEvent struct {
	DeliveredAt    time.Time `json:"delivered_at"`
	TrackingNumber string    `json:"tracking_number"`
	DeliveryID     uuid.UUID `json:"delivery_id"`
	GoalID         uuid.UUID `json:"goal_id"`
}
