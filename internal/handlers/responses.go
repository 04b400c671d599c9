package handlers

import (
	"time"

	"github.com/benx421/layaway/internal/models"
	"github.com/benx421/layaway/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type goalResponse struct {
	TargetDate   time.Time         `json:"target_date"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	EndDate      *time.Time        `json:"end_date"`
	Status       models.GoalStatus `json:"status"`
	TargetAmount decimal.Decimal   `json:"target_amount"`
	Saved        decimal.Decimal   `json:"saved"`
	Remaining    decimal.Decimal   `json:"remaining"`
	LockedPrice  decimal.Decimal   `json:"locked_price"`
	ID           uuid.UUID         `json:"id"`
	UserID       uuid.UUID         `json:"user_id"`
	ProductID    uuid.UUID         `json:"product_id"`
}

func toGoal(g *models.Goal) *goalResponse {
	if g == nil {
		return nil
	}
	return &goalResponse{
		ID:           g.ID,
		UserID:       g.UserID,
		ProductID:    g.ProductID,
		Status:       g.Status,
		TargetAmount: g.TargetAmount,
		Saved:        g.Saved,
		Remaining:    g.Remaining(),
		LockedPrice:  g.LockedPrice,
		TargetDate:   g.TargetDate,
		EndDate:      g.EndDate,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func toGoals(goals []models.Goal) []*goalResponse {
	out := make([]*goalResponse, 0, len(goals))
	for i := range goals {
		out = append(out, toGoal(&goals[i]))
	}
	return out
}

type priceLockResponse struct {
	ExpiresAt     time.Time              `json:"expires_at"`
	Status        models.PriceLockStatus `json:"status"`
	LockedPrice   decimal.Decimal        `json:"locked_price"`
	OriginalPrice decimal.Decimal        `json:"original_price"`
	ID            uuid.UUID              `json:"id"`
	GoalID        uuid.UUID              `json:"goal_id"`
}

func toPriceLock(p *models.PriceLock) *priceLockResponse {
	if p == nil {
		return nil
	}
	return &priceLockResponse{
		ID:            p.ID,
		GoalID:        p.GoalID,
		LockedPrice:   p.LockedPrice,
		OriginalPrice: p.OriginalPrice,
		ExpiresAt:     p.ExpiresAt,
		Status:        p.Status,
	}
}

type goalResultResponse struct {
	Goal      *goalResponse      `json:"goal"`
	PriceLock *priceLockResponse `json:"price_lock,omitempty"`
	Created   bool               `json:"created"`
}

type cancelResultResponse struct {
	Goal          *goalResponse          `json:"goal,omitempty"`
	RefundRequest *refundRequestResponse `json:"refund_request,omitempty"`
	Deleted       bool                   `json:"deleted"`
}

func toCancelResult(res *service.CancelResult) cancelResultResponse {
	return cancelResultResponse{
		Deleted:       res.Deleted,
		Goal:          toGoal(res.Goal),
		RefundRequest: toRefundRequest(res.RefundRequest),
	}
}

type depositResponse struct {
	CreatedAt     time.Time            `json:"created_at"`
	ReceiptNumber string               `json:"receipt_number"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	Status        models.DepositStatus `json:"status"`
	Amount        decimal.Decimal      `json:"amount"`
	ID            uuid.UUID            `json:"id"`
	GoalID        uuid.UUID            `json:"goal_id"`
}

func toDeposit(d *models.Deposit) *depositResponse {
	if d == nil {
		return nil
	}
	return &depositResponse{
		ID:            d.ID,
		GoalID:        d.GoalID,
		Amount:        d.Amount,
		PaymentMethod: d.PaymentMethod,
		Status:        d.Status,
		ReceiptNumber: d.ReceiptNumber,
		CreatedAt:     d.CreatedAt,
	}
}

type depositResultResponse struct {
	Goal      *goalResponse    `json:"goal"`
	Deposit   *depositResponse `json:"deposit"`
	Escrow    *escrowResponse  `json:"escrow,omitempty"`
	Completed bool             `json:"completed"`
	Replayed  bool             `json:"replayed"`
}

func toDepositResult(res *service.DepositResult) depositResultResponse {
	return depositResultResponse{
		Goal:      toGoal(res.Goal),
		Deposit:   toDeposit(res.Deposit),
		Escrow:    toEscrow(res.Escrow),
		Completed: res.Completed,
		Replayed:  res.Replayed,
	}
}

type checkoutResponse struct {
	SessionID   string          `json:"session_id"`
	CheckoutURL string          `json:"checkout_url"`
	Currency    string          `json:"currency"`
	Amount      decimal.Decimal `json:"amount"`
	GoalID      uuid.UUID       `json:"goal_id"`
}

type escrowResponse struct {
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	ReleasedAt  *time.Time          `json:"released_at"`
	ReleasedBy  *uuid.UUID          `json:"released_by"`
	PlatformFee decimal.NullDecimal `json:"platform_fee"`
	NetAmount   decimal.NullDecimal `json:"net_amount"`
	Currency    string              `json:"currency"`
	Status      models.EscrowStatus `json:"status"`
	Amount      decimal.Decimal     `json:"amount"`
	ID          uuid.UUID           `json:"id"`
	GoalID      uuid.UUID           `json:"goal_id"`
}

func toEscrow(e *models.Escrow) *escrowResponse {
	if e == nil {
		return nil
	}
	return &escrowResponse{
		ID:          e.ID,
		GoalID:      e.GoalID,
		Amount:      e.Amount,
		Currency:    e.Currency,
		Status:      e.Status,
		PlatformFee: e.PlatformFee,
		NetAmount:   e.NetAmount,
		ReleasedAt:  e.ReleasedAt,
		ReleasedBy:  e.ReleasedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type escrowListResponse struct {
	Escrows []*escrowResponse `json:"escrows"`
}

func toEscrowList(escrows []models.Escrow) escrowListResponse {
	out := make([]*escrowResponse, 0, len(escrows))
	for i := range escrows {
		out = append(out, toEscrow(&escrows[i]))
	}
	return escrowListResponse{Escrows: out}
}

type refundRequestResponse struct {
	CreatedAt    time.Time                  `json:"created_at"`
	ProcessedAt  *time.Time                 `json:"processed_at"`
	AdminID      *uuid.UUID                 `json:"admin_id"`
	Reason       string                     `json:"reason"`
	ResponseNote string                     `json:"response_note"`
	Status       models.RefundRequestStatus `json:"status"`
	Amount       decimal.Decimal            `json:"amount"`
	ID           uuid.UUID                  `json:"id"`
	GoalID       uuid.UUID                  `json:"goal_id"`
	UserID       uuid.UUID                  `json:"user_id"`
}

func toRefundRequest(r *models.RefundRequest) *refundRequestResponse {
	if r == nil {
		return nil
	}
	return &refundRequestResponse{
		ID:           r.ID,
		GoalID:       r.GoalID,
		UserID:       r.UserID,
		Amount:       r.Amount,
		Reason:       r.Reason,
		Status:       r.Status,
		ResponseNote: r.ResponseNote,
		AdminID:      r.AdminID,
		ProcessedAt:  r.ProcessedAt,
		CreatedAt:    r.CreatedAt,
	}
}

type refundResponse struct {
	Amount          decimal.Decimal `json:"amount"`
	PlatformShare   decimal.Decimal `json:"platform_share"`
	StoreShare      decimal.Decimal `json:"store_share"`
	ID              uuid.UUID       `json:"id"`
	RefundRequestID uuid.UUID       `json:"refund_request_id"`
}

type refundResultResponse struct {
	RefundRequest *refundRequestResponse `json:"refund_request"`
	Refund        *refundResponse        `json:"refund"`
	Escrow        *escrowResponse        `json:"escrow"`
	Goal          *goalResponse          `json:"goal"`
}

func toRefundResult(res *service.RefundResult) refundResultResponse {
	out := refundResultResponse{
		RefundRequest: toRefundRequest(res.Request),
		Escrow:        toEscrow(res.Escrow),
		Goal:          toGoal(res.Goal),
	}
	if res.Refund != nil {
		out.Refund = &refundResponse{
			ID:              res.Refund.ID,
			RefundRequestID: res.Refund.RefundRequestID,
			Amount:          res.Refund.Amount,
			PlatformShare:   res.Refund.PlatformShare,
			StoreShare:      res.Refund.StoreShare,
		}
	}
	return out
}

type deliveryResponse struct {
	CreatedAt             time.Time             `json:"created_at"`
	EstimatedDeliveryDate *time.Time            `json:"estimated_delivery_date"`
	ActualDeliveryDate    *time.Time            `json:"actual_delivery_date"`
	DestinationLat        *float64              `json:"destination_lat"`
	DestinationLng        *float64              `json:"destination_lng"`
	DriverLat             *float64              `json:"driver_lat"`
	DriverLng             *float64              `json:"driver_lng"`
	ShippingAddress       string                `json:"shipping_address"`
	TrackingNumber        string                `json:"tracking_number"`
	Status                models.DeliveryStatus `json:"status"`
	ID                    uuid.UUID             `json:"id"`
	GoalID                uuid.UUID             `json:"goal_id"`
}

func toDelivery(d *models.Delivery) *deliveryResponse {
	if d == nil {
		return nil
	}
	return &deliveryResponse{
		ID:                    d.ID,
		GoalID:                d.GoalID,
		Status:                d.Status,
		ShippingAddress:       d.ShippingAddress,
		TrackingNumber:        d.TrackingNumber,
		DestinationLat:        d.DestinationLat,
		DestinationLng:        d.DestinationLng,
		DriverLat:             d.DriverLat,
		DriverLng:             d.DriverLng,
		EstimatedDeliveryDate: d.EstimatedDeliveryDate,
		ActualDeliveryDate:    d.ActualDeliveryDate,
		CreatedAt:             d.CreatedAt,
	}
}

type trackingResponse struct {
	RecordedAt time.Time             `json:"recorded_at"`
	Latitude   *float64              `json:"latitude"`
	Longitude  *float64              `json:"longitude"`
	Label      string                `json:"label"`
	Status     models.DeliveryStatus `json:"status"`
	ID         uuid.UUID             `json:"id"`
	DeliveryID uuid.UUID             `json:"delivery_id"`
}

func toTracking(t *models.DeliveryTracking) *trackingResponse {
	if t == nil {
		return nil
	}
	return &trackingResponse{
		ID:         t.ID,
		DeliveryID: t.DeliveryID,
		Status:     t.Status,
		Latitude:   t.Latitude,
		Longitude:  t.Longitude,
		Label:      t.Label,
		RecordedAt: t.RecordedAt,
	}
}
