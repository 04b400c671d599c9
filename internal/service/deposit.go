package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/metrics"
	"github.com/benx421/layaway/internal/models"
	"github.com/benx421/layaway/internal/repository"
)

// DepositService records funding events. It is the only path that raises Goal.saved.
type DepositService struct {
	db       *db.DB
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
	currency string
}

// NewDepositService creates a new DepositService
func NewDepositService(database *db.DB, currency string, m *metrics.Metrics, logger *slog.Logger) *DepositService {
	return &DepositService{
		db:       database,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
		currency: currency,
	}
}

type depositRepos struct {
	goals    repository.GoalRepository
	deposits repository.DepositRepository
	escrows  repository.EscrowRepository
	outbox   repository.OutboxRepository
}

func newDepositRepos(q db.DBTX) depositRepos {
	return depositRepos{
		goals:    repository.NewGoalRepository(q),
		deposits: repository.NewDepositRepository(q),
		escrows:  repository.NewEscrowRepository(q),
		outbox:   repository.NewOutboxRepository(q),
	}
}

// RecordDeposit applies a deposit to a goal. The deposit insert, the saved
// recompute, any completion and the escrow mirror commit together.
func (s *DepositService) RecordDeposit(ctx context.Context, req DepositRequest) (*DepositResult, error) {
	tx, cancel, err := s.db.StartTx(ctx)
	if err != nil {
		return nil, internalError("failed to start transaction", err)
	}
	defer cancel()
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	result, err := s.performDeposit(ctx, newDepositRepos(tx), req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction", err)
	}

	s.observe(result)
	return result, nil
}

func (s *DepositService) observe(result *DepositResult) {
	s.logger.Info("deposit recorded",
		"goal_id", result.Goal.ID,
		"deposit_id", result.Deposit.ID,
		"amount", result.Deposit.Amount.String(),
		"saved", result.Goal.Saved.String(),
		"completed", result.Completed,
	)

	if s.metrics == nil {
		return
	}
	s.metrics.Deposits.WithLabelValues(string(result.Deposit.PaymentMethod)).Inc()
	if result.Completed {
		s.metrics.GoalsCompleted.Inc()
	}
}

// performDeposit contains the core deposit business logic
func (s *DepositService) performDeposit(ctx context.Context, repos depositRepos, req DepositRequest) (*DepositResult, error) {
	goal, err := repos.goals.FindByIDForUpdate(ctx, req.GoalID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{Code: ErrCodeGoalNotFound, Message: "goal not found"}
		}
		return nil, internalError("failed to load goal", err)
	}

	if goal.UserID != req.UserID {
		return nil, unauthorized("goal belongs to another user")
	}

	switch goal.Status {
	case models.GoalStatusCompleted, models.GoalStatusRedeemed:
		return nil, &ServiceError{Code: ErrCodeGoalAlreadyCompleted, Message: "goal is already fully funded"}
	case models.GoalStatusCancelled, models.GoalStatusRefunded:
		return nil, &ServiceError{
			Code:    ErrCodeInvalidState,
			Message: fmt.Sprintf("a %s goal does not accept deposits", goal.Status),
		}
	}

	if err := ValidateAmount(req.Amount); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}

	// goal.Saved was read under the row lock, so this check and the write
	// below cannot interleave with another deposit on the same goal.
	if req.Amount.GreaterThan(goal.Remaining()) {
		return nil, &ServiceError{
			Code:    ErrCodeExceedsRemaining,
			Message: fmt.Sprintf("deposit exceeds the remaining %s", goal.Remaining().StringFixed(2)),
		}
	}

	now := s.now()
	receipt, err := newReceiptNumber(now)
	if err != nil {
		return nil, internalError("failed to issue receipt", err)
	}

	method := req.PaymentMethod
	if method == "" {
		method = models.PaymentMethodCard
	}

	deposit := &models.Deposit{
		GoalID:         goal.ID,
		UserID:         req.UserID,
		Amount:         req.Amount,
		PaymentMethod:  method,
		Status:         models.DepositStatusCompleted,
		ReceiptNumber:  receipt,
		IdempotencyKey: req.IdempotencyKey,
	}

	if err := repos.deposits.Create(ctx, deposit); err != nil {
		if errors.Is(err, models.ErrDuplicate) && req.IdempotencyKey != nil {
			return nil, &ServiceError{Code: ErrCodeDuplicatePayment, Message: "payment has already been recorded", Err: err}
		}
		return nil, internalError("failed to record deposit", err)
	}

	saved, err := repos.goals.RecomputeSaved(ctx, goal.ID)
	if err != nil {
		if errors.Is(err, models.ErrCheckViolation) {
			return nil, &ServiceError{Code: ErrCodeExceedsRemaining, Message: "deposit exceeds the remaining amount"}
		}
		return nil, internalError("failed to recompute saved", err)
	}
	goal.Saved = saved

	completed := !saved.LessThan(goal.TargetAmount)
	next := goal.Status
	switch {
	case completed:
		next = models.GoalStatusCompleted
	case goal.Status == models.GoalStatusSaved:
		next = models.GoalStatusActive
	}

	if next != goal.Status {
		if err := models.Transition(goal.Status, next, goal.Status.CanTransitionTo); err != nil {
			return nil, &ServiceError{Code: ErrCodeInvalidTransition, Message: err.Error()}
		}
		goal.Status = next
		if completed {
			goal.EndDate = &now
		}
		if err := repos.goals.Update(ctx, goal); err != nil {
			return nil, internalError("failed to update goal status", err)
		}
	}

	escrow, err := repos.escrows.UpsertHeld(ctx, goal.ID, saved, s.currency)
	if err != nil {
		return nil, internalError("failed to mirror escrow", err)
	}

	if completed {
		event := goalCompletedEvent{
			GoalID:      goal.ID,
			UserID:      goal.UserID,
			ProductID:   goal.ProductID,
			Saved:       saved,
			CompletedAt: now,
		}
		if err := repos.outbox.Enqueue(ctx, models.EventGoalCompleted, goal.ID.String(), event); err != nil {
			return nil, internalError("failed to enqueue goal completed event", err)
		}
	}

	return &DepositResult{
		Goal:      goal,
		Deposit:   deposit,
		Escrow:    escrow,
		Completed: completed,
	}, nil
}
