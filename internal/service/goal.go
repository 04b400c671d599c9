package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/models"
	"github.com/benx421/layaway/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalService owns goal identity, price locks and cancellation
type GoalService struct {
	db       *db.DB
	logger   *slog.Logger
	now      func() time.Time
	currency string
}

// NewGoalService creates a new GoalService
func NewGoalService(database *db.DB, currency string, logger *slog.Logger) *GoalService {
	return &GoalService{
		db:       database,
		logger:   logger,
		now:      time.Now,
		currency: currency,
	}
}

// CreateGoal opens a goal for a product, or re-prices the user's live goal for
// that product when one already exists.
func (s *GoalService) CreateGoal(
	ctx context.Context,
	userID, productID uuid.UUID,
	targetAmount decimal.Decimal,
	targetDate time.Time,
) (*GoalResult, error) {
	tx, cancel, err := s.db.StartTx(ctx)
	if err != nil {
		return nil, internalError("failed to start transaction", err)
	}
	defer cancel()
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	result, err := s.performCreateGoal(ctx,
		repository.NewGoalRepository(tx),
		repository.NewProductRepository(tx),
		repository.NewPriceLockRepository(tx),
		userID, productID, targetAmount, targetDate,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction", err)
	}

	return result, nil
}

func (s *GoalService) performCreateGoal(
	ctx context.Context,
	goalRepo repository.GoalRepository,
	productRepo repository.ProductRepository,
	lockRepo repository.PriceLockRepository,
	userID, productID uuid.UUID,
	targetAmount decimal.Decimal,
	targetDate time.Time,
) (*GoalResult, error) {
	if err := ValidateAmount(targetAmount); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}
	if err := ValidateTargetDate(targetDate, s.now()); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidDate, Message: err.Error()}
	}

	product, err := productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{Code: ErrCodeProductNotFound, Message: "product not found"}
		}
		return nil, internalError("failed to load product", err)
	}

	existing, err := goalRepo.FindLiveForUpdate(ctx, userID, productID)
	switch {
	case err == nil:
		goal, err := s.performUpdateGoal(ctx, goalRepo, lockRepo, existing, GoalUpdate{
			TargetAmount: targetAmount,
			TargetDate:   targetDate,
		})
		if err != nil {
			return nil, err
		}
		return &GoalResult{Goal: goal, Created: false}, nil
	case !errors.Is(err, models.ErrNotFound):
		return nil, internalError("failed to look up live goal", err)
	}

	goal := &models.Goal{
		ID:           uuid.New(),
		UserID:       userID,
		ProductID:    product.ID,
		TargetAmount: targetAmount,
		Saved:        decimal.Zero,
		LockedPrice:  product.Price,
		Status:       models.GoalStatusActive,
		TargetDate:   targetDate,
	}

	if err := goalRepo.Create(ctx, goal); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, &ServiceError{
				Code:    ErrCodeInvalidState,
				Message: "a live goal for this product already exists",
			}
		}
		return nil, internalError("failed to create goal", err)
	}

	lock := &models.PriceLock{
		GoalID:        goal.ID,
		ProductID:     product.ID,
		LockedPrice:   product.Price,
		OriginalPrice: product.Price,
		ExpiresAt:     targetDate,
		Status:        models.PriceLockStatusActive,
	}

	if err := lockRepo.Create(ctx, lock); err != nil {
		return nil, internalError("failed to create price lock", err)
	}

	return &GoalResult{Goal: goal, PriceLock: lock, Created: true}, nil
}

// UpdateGoal re-prices a live goal and moves its price lock expiry with it
func (s *GoalService) UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, update GoalUpdate) (*models.Goal, error) {
	tx, cancel, err := s.db.StartTx(ctx)
	if err != nil {
		return nil, internalError("failed to start transaction", err)
	}
	defer cancel()
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	goalRepo := repository.NewGoalRepository(tx)

	goal, err := lockOwnedGoal(ctx, goalRepo, userID, goalID)
	if err != nil {
		return nil, err
	}

	goal, err = s.performUpdateGoal(ctx, goalRepo, repository.NewPriceLockRepository(tx), goal, update)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction", err)
	}

	return goal, nil
}

func (s *GoalService) performUpdateGoal(
	ctx context.Context,
	goalRepo repository.GoalRepository,
	lockRepo repository.PriceLockRepository,
	goal *models.Goal,
	update GoalUpdate,
) (*models.Goal, error) {
	if !goal.Status.IsLive() {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidState,
			Message: fmt.Sprintf("goal is %s and can no longer be edited", goal.Status),
		}
	}

	if err := ValidateAmount(update.TargetAmount); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}
	if !update.TargetAmount.GreaterThan(goal.Saved) {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: fmt.Sprintf("target amount must exceed the %s already saved", goal.Saved.StringFixed(2)),
		}
	}
	if err := ValidateTargetDate(update.TargetDate, s.now()); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidDate, Message: err.Error()}
	}

	if update.Status != nil && *update.Status != goal.Status {
		if !update.Status.Valid() {
			return nil, &ServiceError{Code: ErrCodeInvalidTransition, Message: fmt.Sprintf("unknown goal status %q", *update.Status)}
		}
		if !update.Status.IsLive() {
			return nil, &ServiceError{
				Code:    ErrCodeInvalidTransition,
				Message: fmt.Sprintf("goal status can only be set to %s or %s", models.GoalStatusActive, models.GoalStatusSaved),
			}
		}
		if err := models.Transition(goal.Status, *update.Status, goal.Status.CanTransitionTo); err != nil {
			return nil, &ServiceError{Code: ErrCodeInvalidTransition, Message: err.Error()}
		}
		goal.Status = *update.Status
	}

	goal.TargetAmount = update.TargetAmount
	goal.TargetDate = update.TargetDate

	if err := goalRepo.Update(ctx, goal); err != nil {
		if errors.Is(err, models.ErrCheckViolation) {
			return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: "target amount is below the saved total"}
		}
		return nil, internalError("failed to update goal", err)
	}

	if err := lockRepo.UpdateExpiry(ctx, &models.PriceLock{GoalID: goal.ID, ExpiresAt: goal.TargetDate}); err != nil {
		return nil, internalError("failed to move price lock expiry", err)
	}

	return goal, nil
}

// CancelGoal removes an unfunded goal, or opens a refund request for a funded one
func (s *GoalService) CancelGoal(ctx context.Context, userID, goalID uuid.UUID, reason string) (*CancelResult, error) {
	tx, cancel, err := s.db.StartTx(ctx)
	if err != nil {
		return nil, internalError("failed to start transaction", err)
	}
	defer cancel()
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	result, err := s.performCancelGoal(ctx, cancelRepos{
		goals:    repository.NewGoalRepository(tx),
		locks:    repository.NewPriceLockRepository(tx),
		deposits: repository.NewDepositRepository(tx),
		escrows:  repository.NewEscrowRepository(tx),
		refunds:  repository.NewRefundRepository(tx),
	}, userID, goalID, reason)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction", err)
	}

	if result.Deleted {
		s.logger.Info("unfunded goal deleted", "goal_id", goalID)
	} else {
		s.logger.Info("refund requested", "goal_id", goalID, "refund_request_id", result.RefundRequest.ID)
	}

	return result, nil
}

type cancelRepos struct {
	goals    repository.GoalRepository
	locks    repository.PriceLockRepository
	deposits repository.DepositRepository
	escrows  repository.EscrowRepository
	refunds  repository.RefundRepository
}

func (s *GoalService) performCancelGoal(
	ctx context.Context,
	repos cancelRepos,
	userID, goalID uuid.UUID,
	reason string,
) (*CancelResult, error) {
	goal, err := lockOwnedGoal(ctx, repos.goals, userID, goalID)
	if err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) && svcErr.Code == ErrCodeGoalNotFound {
			svcErr.Code = ErrCodeNotFound
		}
		return nil, err
	}

	switch {
	case goal.Status == models.GoalStatusCancelled || goal.Status == models.GoalStatusRefunded:
		// only a funded goal survives its first cancel, as a refund request
		return nil, &ServiceError{Code: ErrCodeAlreadyRequested, Message: "a refund has already been requested for this goal"}
	case !goal.Status.IsLive():
		return nil, &ServiceError{
			Code:    ErrCodeInvalidState,
			Message: fmt.Sprintf("a %s goal cannot be cancelled", goal.Status),
		}
	}

	if goal.Saved.IsZero() {
		if err := deleteGoal(ctx, repos, goal.ID); err != nil {
			return nil, err
		}
		return &CancelResult{Deleted: true}, nil
	}

	exists, err := repos.refunds.ExistsForGoal(ctx, goal.ID)
	if err != nil {
		return nil, internalError("failed to check refund requests", err)
	}
	if exists {
		return nil, &ServiceError{Code: ErrCodeAlreadyRequested, Message: "a refund has already been requested for this goal"}
	}

	req := &models.RefundRequest{
		UserID: goal.UserID,
		GoalID: goal.ID,
		Amount: goal.Saved,
		Reason: reason,
		Status: models.RefundRequestStatusRequested,
	}
	if err := repos.refunds.CreateRequest(ctx, req); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, &ServiceError{Code: ErrCodeAlreadyRequested, Message: "a refund has already been requested for this goal"}
		}
		return nil, internalError("failed to create refund request", err)
	}

	if err := models.Transition(goal.Status, models.GoalStatusCancelled, goal.Status.CanTransitionTo); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidTransition, Message: err.Error()}
	}
	goal.Status = models.GoalStatusCancelled
	if err := repos.goals.Update(ctx, goal); err != nil {
		return nil, internalError("failed to cancel goal", err)
	}

	// Funds stay held until an admin approves the refund.
	escrow, err := repos.escrows.UpsertHeld(ctx, goal.ID, goal.Saved, s.currency)
	if err != nil {
		return nil, internalError("failed to hold escrow", err)
	}
	if escrow.Status != models.EscrowStatusHeld {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidState,
			Message: fmt.Sprintf("escrow for this goal is already %s", escrow.Status),
		}
	}

	return &CancelResult{Goal: goal, RefundRequest: req}, nil
}

func deleteGoal(ctx context.Context, repos cancelRepos, goalID uuid.UUID) error {
	if err := repos.refunds.DeleteRequestsByGoalID(ctx, goalID); err != nil {
		return internalError("failed to delete refund requests", err)
	}
	if err := repos.escrows.DeleteByGoalID(ctx, goalID); err != nil {
		return internalError("failed to delete escrow", err)
	}
	if err := repos.deposits.DeleteByGoalID(ctx, goalID); err != nil {
		return internalError("failed to delete deposits", err)
	}
	if err := repos.locks.DeleteByGoalID(ctx, goalID); err != nil {
		return internalError("failed to delete price lock", err)
	}
	if err := repos.goals.Delete(ctx, goalID); err != nil {
		return internalError("failed to delete goal", err)
	}
	return nil
}

// GetGoal retrieves a goal owned by userID
func (s *GoalService) GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*models.Goal, error) {
	return findOwnedGoal(ctx, repository.NewGoalRepository(s.db), userID, goalID)
}

// ListGoals retrieves every goal owned by userID
func (s *GoalService) ListGoals(ctx context.Context, userID uuid.UUID) ([]models.Goal, error) {
	goals, err := repository.NewGoalRepository(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, internalError("failed to list goals", err)
	}
	return goals, nil
}

// ListDeposits retrieves the deposits of a goal owned by userID
func (s *GoalService) ListDeposits(ctx context.Context, userID, goalID uuid.UUID) ([]models.Deposit, error) {
	if _, err := findOwnedGoal(ctx, repository.NewGoalRepository(s.db), userID, goalID); err != nil {
		return nil, err
	}

	deposits, err := repository.NewDepositRepository(s.db).ListByGoal(ctx, goalID)
	if err != nil {
		return nil, internalError("failed to list deposits", err)
	}
	return deposits, nil
}

func findOwnedGoal(ctx context.Context, goalRepo repository.GoalRepository, userID, goalID uuid.UUID) (*models.Goal, error) {
	goal, err := goalRepo.FindByID(ctx, goalID)
	return checkOwnedGoal(goal, err, userID)
}

func lockOwnedGoal(ctx context.Context, goalRepo repository.GoalRepository, userID, goalID uuid.UUID) (*models.Goal, error) {
	goal, err := goalRepo.FindByIDForUpdate(ctx, goalID)
	return checkOwnedGoal(goal, err, userID)
}

func checkOwnedGoal(goal *models.Goal, err error, userID uuid.UUID) (*models.Goal, error) {
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{Code: ErrCodeGoalNotFound, Message: "goal not found"}
		}
		return nil, internalError("failed to load goal", err)
	}
	if goal.UserID != userID {
		return nil, unauthorized("goal belongs to another user")
	}
	return goal, nil
}
