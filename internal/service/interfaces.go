package service

import (
	"context"
	"time"

	"github.com/benx421/layaway/internal/auth"
	"github.com/benx421/layaway/internal/gateway"
	"github.com/benx421/layaway/internal/geocode"
	"github.com/benx421/layaway/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// GoalManager handles goal lifecycle operations
type GoalManager interface {
	CreateGoal(ctx context.Context, userID, productID uuid.UUID, targetAmount decimal.Decimal, targetDate time.Time) (*GoalResult, error)
	UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, update GoalUpdate) (*models.Goal, error)
	CancelGoal(ctx context.Context, userID, goalID uuid.UUID, reason string) (*CancelResult, error)
	GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*models.Goal, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]models.Goal, error)
	ListDeposits(ctx context.Context, userID, goalID uuid.UUID) ([]models.Deposit, error)
}

// Depositor records funding events against goals
type Depositor interface {
	RecordDeposit(ctx context.Context, req DepositRequest) (*DepositResult, error)
}

// PaymentProcessor bridges the hosted checkout and the deposit processor
type PaymentProcessor interface {
	StartCheckout(ctx context.Context, userID, goalID uuid.UUID, amount decimal.Decimal) (*Checkout, error)
	ConfirmPayment(ctx context.Context, conf PaymentConfirmation) (*DepositResult, error)
}

// EscrowManager handles admin settlement of escrowed funds
type EscrowManager interface {
	Release(ctx context.Context, admin auth.AdminContext, escrowID uuid.UUID) (*models.Escrow, error)
	ApproveRefund(ctx context.Context, admin auth.AdminContext, refundRequestID uuid.UUID, note string) (*RefundResult, error)
	ListEscrows(ctx context.Context, admin auth.AdminContext, status *models.EscrowStatus) ([]models.Escrow, error)
	ListReleasable(ctx context.Context, admin auth.AdminContext) ([]models.Escrow, error)
	GetEscrow(ctx context.Context, admin auth.AdminContext, escrowID uuid.UUID) (*models.Escrow, error)
	ListRefundRequests(ctx context.Context, admin auth.AdminContext, status *models.RefundRequestStatus) ([]models.RefundRequest, error)
	Reconcile(ctx context.Context) (*ReconcileReport, error)
}

// DeliveryCoordinator handles redemption and delivery tracking
type DeliveryCoordinator interface {
	Redeem(ctx context.Context, req RedeemRequest) (*RedeemResult, error)
	UpdateStatus(ctx context.Context, staff auth.StaffContext, deliveryID uuid.UUID, status models.DeliveryStatus) (*models.Delivery, error)
	RecordLocation(ctx context.Context, staff auth.StaffContext, deliveryID uuid.UUID, update LocationUpdate) (*models.DeliveryTracking, error)
	ConfirmDelivered(ctx context.Context, userID, deliveryID uuid.UUID) (*models.Delivery, error)
	GetDelivery(ctx context.Context, viewer auth.Principal, deliveryID uuid.UUID) (*models.Delivery, error)
	ListTracking(ctx context.Context, viewer auth.Principal, deliveryID uuid.UUID) ([]models.DeliveryTracking, error)
}

// CheckoutGateway is the payment gateway surface the core depends on
type CheckoutGateway interface {
	CreateSession(ctx context.Context, req gateway.CheckoutRequest) (*gateway.Session, error)
	GetSession(ctx context.Context, sessionID string) (*gateway.Session, error)
}

// Geocoder resolves addresses to coordinates, returning nil when it cannot
type Geocoder interface {
	Lookup(ctx context.Context, full, coarse string) *geocode.Point
}

// Ensure concrete types implement interfaces
var (
	_ GoalManager         = (*GoalService)(nil)
	_ Depositor           = (*DepositService)(nil)
	_ PaymentProcessor    = (*PaymentService)(nil)
	_ EscrowManager       = (*EscrowService)(nil)
	_ DeliveryCoordinator = (*DeliveryService)(nil)
	_ CheckoutGateway     = (*gateway.Client)(nil)
	_ Geocoder            = (*geocode.Client)(nil)
)
