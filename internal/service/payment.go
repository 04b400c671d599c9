package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/benx421/layaway/internal/config"
	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/gateway"
	"github.com/benx421/layaway/internal/ledger"
	"github.com/benx421/layaway/internal/models"
	"github.com/benx421/layaway/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentService opens hosted checkouts and turns confirmed payments into deposits
type PaymentService struct {
	db       *db.DB
	gateway  CheckoutGateway
	deposits Depositor
	logger   *slog.Logger
	cfg      config.GatewayConfig
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	database *db.DB,
	gw CheckoutGateway,
	deposits Depositor,
	cfg config.GatewayConfig,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		db:       database,
		gateway:  gw,
		deposits: deposits,
		cfg:      cfg,
		logger:   logger,
	}
}

// StartCheckout opens a checkout session for a deposit. No goal state changes
// until the payment is confirmed.
func (s *PaymentService) StartCheckout(ctx context.Context, userID, goalID uuid.UUID, amount decimal.Decimal) (*Checkout, error) {
	return s.performStartCheckout(ctx,
		repository.NewGoalRepository(s.db),
		repository.NewProductRepository(s.db),
		userID, goalID, amount,
	)
}

func (s *PaymentService) performStartCheckout(
	ctx context.Context,
	goalRepo repository.GoalRepository,
	productRepo repository.ProductRepository,
	userID, goalID uuid.UUID,
	amount decimal.Decimal,
) (*Checkout, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}

	goal, err := findOwnedGoal(ctx, goalRepo, userID, goalID)
	if err != nil {
		return nil, err
	}

	switch {
	case goal.Status == models.GoalStatusCompleted || goal.Status == models.GoalStatusRedeemed:
		return nil, &ServiceError{Code: ErrCodeGoalAlreadyCompleted, Message: "goal is already fully funded"}
	case !goal.Status.IsLive():
		return nil, &ServiceError{
			Code:    ErrCodeInvalidState,
			Message: fmt.Sprintf("a %s goal does not accept deposits", goal.Status),
		}
	}

	if amount.GreaterThan(goal.Remaining()) {
		return nil, &ServiceError{
			Code:    ErrCodeExceedsRemaining,
			Message: fmt.Sprintf("deposit exceeds the remaining %s", goal.Remaining().StringFixed(2)),
		}
	}

	description := "Layaway deposit"
	if product, err := productRepo.FindByID(ctx, goal.ProductID); err == nil {
		description = "Layaway deposit toward " + product.Name
	}

	session, err := s.gateway.CreateSession(ctx, gateway.CheckoutRequest{
		Amount:             amount,
		Currency:           s.cfg.Currency,
		ProductDescription: description,
		SuccessURL:         redirectURL(s.cfg.SuccessURL, goal.ID, amount, PaymentStatusSuccess),
		CancelURL:          redirectURL(s.cfg.CancelURL, goal.ID, amount, PaymentStatusCancel),
		Metadata: map[string]string{
			"goal_id": goal.ID.String(),
			"user_id": userID.String(),
		},
	})
	if err != nil {
		s.logger.Warn("checkout session could not be opened", "goal_id", goal.ID, "error", err)
		return nil, &ServiceError{Code: ErrCodeGatewayUnavailable, Message: "payment gateway is unavailable", Err: err}
	}

	return &Checkout{
		SessionID: session.ID,
		URL:       session.URL,
		Currency:  s.cfg.Currency,
		Amount:    amount,
		GoalID:    goal.ID,
	}, nil
}

// redirectURL appends the goal, amount and status to a redirect target. The
// gateway substitutes {CHECKOUT_SESSION_ID} with the session id.
func redirectURL(base string, goalID uuid.UUID, amount decimal.Decimal, status string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("goal_id", goalID.String())
	q.Set("amount", amount.StringFixed(ledger.CurrencyPlaces))
	q.Set("status", status)
	u.RawQuery = q.Encode() + "&session_id={CHECKOUT_SESSION_ID}"
	return u.String()
}

// ConfirmPayment records the deposit for a checkout redirect. The redirect is
// client-controlled, so the session is re-verified with the gateway and the
// amount re-checked against the goal. Repeated confirmations of the same
// payment return the original deposit with Replayed set.
func (s *PaymentService) ConfirmPayment(ctx context.Context, conf PaymentConfirmation) (*DepositResult, error) {
	return s.performConfirmPayment(ctx, repository.NewDepositRepository(s.db), repository.NewGoalRepository(s.db), conf)
}

func (s *PaymentService) performConfirmPayment(
	ctx context.Context,
	depositRepo repository.DepositRepository,
	goalRepo repository.GoalRepository,
	conf PaymentConfirmation,
) (*DepositResult, error) {
	if err := s.verifySession(ctx, conf); err != nil {
		return nil, err
	}

	key := PaymentIdempotencyKey(conf.SessionID, conf.Amount)

	replay, err := s.replay(ctx, depositRepo, goalRepo, key, conf)
	if err != nil || replay != nil {
		return replay, err
	}

	result, err := s.deposits.RecordDeposit(ctx, DepositRequest{
		GoalID:         conf.GoalID,
		UserID:         conf.UserID,
		Amount:         conf.Amount,
		PaymentMethod:  models.PaymentMethodCard,
		IdempotencyKey: &key,
	})
	if err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) && svcErr.Code == ErrCodeDuplicatePayment {
			// a concurrent confirmation committed first
			replay, replayErr := s.replay(ctx, depositRepo, goalRepo, key, conf)
			if replayErr != nil || replay != nil {
				return replay, replayErr
			}
		}
		return nil, err
	}

	return result, nil
}

func (s *PaymentService) verifySession(ctx context.Context, conf PaymentConfirmation) error {
	if conf.Status != PaymentStatusSuccess {
		return &ServiceError{Code: ErrCodePaymentNotConfirmed, Message: "payment was not completed"}
	}
	if conf.SessionID == "" {
		return &ServiceError{Code: ErrCodePaymentNotConfirmed, Message: "missing checkout session"}
	}
	if err := ValidateAmount(conf.Amount); err != nil {
		return &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}

	session, err := s.gateway.GetSession(ctx, conf.SessionID)
	if err != nil {
		if errors.Is(err, gateway.ErrSessionNotFound) {
			return &ServiceError{Code: ErrCodePaymentNotConfirmed, Message: "checkout session not found"}
		}
		s.logger.Warn("checkout session could not be verified", "session_id", conf.SessionID, "error", err)
		return &ServiceError{Code: ErrCodeGatewayUnavailable, Message: "payment gateway is unavailable", Err: err}
	}

	if session.Status != gateway.SessionStatusPaid {
		return &ServiceError{
			Code:    ErrCodePaymentNotConfirmed,
			Message: fmt.Sprintf("checkout session is %s", session.Status),
		}
	}
	if goalID := session.Metadata["goal_id"]; goalID != conf.GoalID.String() {
		return &ServiceError{Code: ErrCodePaymentNotConfirmed, Message: "checkout session belongs to another goal"}
	}
	if !session.Amount.Equal(conf.Amount) {
		return &ServiceError{Code: ErrCodeAmountMismatch, Message: "confirmed amount does not match the paid amount"}
	}

	return nil
}

// replay returns the earlier result for key, or nil when the payment is new
func (s *PaymentService) replay(
	ctx context.Context,
	depositRepo repository.DepositRepository,
	goalRepo repository.GoalRepository,
	key string,
	conf PaymentConfirmation,
) (*DepositResult, error) {
	deposit, err := depositRepo.FindByIdempotencyKey(ctx, key)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, nil
		}
		return nil, internalError("failed to look up payment", err)
	}

	if deposit.GoalID != conf.GoalID || deposit.UserID != conf.UserID {
		return nil, &ServiceError{Code: ErrCodeDuplicatePayment, Message: "payment was already applied to another goal"}
	}

	goal, err := goalRepo.FindByID(ctx, deposit.GoalID)
	if err != nil {
		return nil, internalError("failed to load goal", err)
	}

	s.logger.Info("payment confirmation replayed", "goal_id", goal.ID, "deposit_id", deposit.ID)

	return &DepositResult{
		Goal:     goal,
		Deposit:  deposit,
		Replayed: true,
	}, nil
}
