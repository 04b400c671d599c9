package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/benx421/layaway/internal/auth"
	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/ledger"
	"github.com/benx421/layaway/internal/metrics"
	"github.com/benx421/layaway/internal/models"
	"github.com/benx421/layaway/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EscrowService settles escrowed funds. Every mutating operation requires an AdminContext.
type EscrowService struct {
	db       *db.DB
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
	currency string
}

// NewEscrowService creates a new EscrowService
func NewEscrowService(database *db.DB, currency string, m *metrics.Metrics, logger *slog.Logger) *EscrowService {
	return &EscrowService{
		db:       database,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
		currency: currency,
	}
}

type escrowRepos struct {
	goals   repository.GoalRepository
	escrows repository.EscrowRepository
	refunds repository.RefundRepository
	outbox  repository.OutboxRepository
}

func newEscrowRepos(q db.DBTX) escrowRepos {
	return escrowRepos{
		goals:   repository.NewGoalRepository(q),
		escrows: repository.NewEscrowRepository(q),
		refunds: repository.NewRefundRepository(q),
		outbox:  repository.NewOutboxRepository(q),
	}
}

func requireAdmin(admin auth.AdminContext) error {
	if !admin.Valid() {
		return unauthorized("admin capability required")
	}
	return nil
}

// Release pays a HELD escrow out to the store minus the platform fee. Callers
// are expected to release only escrows whose delivery is DELIVERED; see ListReleasable.
func (s *EscrowService) Release(ctx context.Context, admin auth.AdminContext, escrowID uuid.UUID) (*models.Escrow, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}

	tx, cancel, err := s.db.StartTx(ctx)
	if err != nil {
		return nil, internalError("failed to start transaction", err)
	}
	defer cancel()
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	escrow, err := s.performRelease(ctx, newEscrowRepos(tx), admin, escrowID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction", err)
	}

	s.logger.Info("escrow released",
		"escrow_id", escrow.ID,
		"goal_id", escrow.GoalID,
		"admin_id", admin.AdminID(),
		"platform_fee", escrow.PlatformFee.Decimal.String(),
		"net_amount", escrow.NetAmount.Decimal.String(),
	)
	if s.metrics != nil {
		s.metrics.EscrowSettlements.WithLabelValues(string(models.EscrowStatusReleased)).Inc()
	}

	return escrow, nil
}

// performRelease contains the core release business logic
func (s *EscrowService) performRelease(
	ctx context.Context,
	repos escrowRepos,
	admin auth.AdminContext,
	escrowID uuid.UUID,
) (*models.Escrow, error) {
	found, err := repos.escrows.FindByID(ctx, escrowID)
	if err != nil {
		return nil, escrowLookupError(err)
	}

	// goal before escrow, the same order deposits take their locks in
	goal, err := repos.goals.FindByIDForUpdate(ctx, found.GoalID)
	if err != nil {
		return nil, internalError("failed to lock goal", err)
	}

	escrow, err := repos.escrows.FindByIDForUpdate(ctx, escrowID)
	if err != nil {
		return nil, escrowLookupError(err)
	}

	if err := models.Transition(escrow.Status, models.EscrowStatusReleased, escrow.Status.CanTransitionTo); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidState,
			Message: fmt.Sprintf("escrow is %s, only HELD escrows can be released", escrow.Status),
		}
	}

	now := s.now()
	adminID := admin.AdminID()
	split := ledger.SplitRelease(goal.Saved)

	escrow.Amount = goal.Saved
	escrow.Status = models.EscrowStatusReleased
	escrow.PlatformFee = decimal.NewNullDecimal(split.PlatformFee)
	escrow.NetAmount = decimal.NewNullDecimal(split.NetAmount)
	escrow.ReleasedAt = &now
	escrow.ReleasedBy = &adminID

	if err := repos.escrows.Settle(ctx, escrow); err != nil {
		return nil, internalError("failed to release escrow", err)
	}

	event := escrowReleasedEvent{
		EscrowID:    escrow.ID,
		GoalID:      escrow.GoalID,
		Amount:      escrow.Amount,
		PlatformFee: split.PlatformFee,
		NetAmount:   split.NetAmount,
		ReleasedAt:  now,
		ReleasedBy:  adminID,
	}
	if err := repos.outbox.Enqueue(ctx, models.EventEscrowReleased, escrow.GoalID.String(), event); err != nil {
		return nil, internalError("failed to enqueue escrow released event", err)
	}

	return escrow, nil
}

// ApproveRefund approves a cancellation's refund request and settles its escrow
// with the cancellation penalty split.
func (s *EscrowService) ApproveRefund(
	ctx context.Context,
	admin auth.AdminContext,
	refundRequestID uuid.UUID,
	note string,
) (*RefundResult, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}

	tx, cancel, err := s.db.StartTx(ctx)
	if err != nil {
		return nil, internalError("failed to start transaction", err)
	}
	defer cancel()
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	result, err := s.performApproveRefund(ctx, newEscrowRepos(tx), admin, refundRequestID, note)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction", err)
	}

	s.logger.Info("refund approved",
		"refund_request_id", refundRequestID,
		"goal_id", result.Goal.ID,
		"admin_id", admin.AdminID(),
		"user_share", result.Refund.Amount.String(),
	)
	if s.metrics != nil {
		s.metrics.EscrowSettlements.WithLabelValues(string(models.EscrowStatusRefunded)).Inc()
	}

	return result, nil
}

// performApproveRefund contains the core refund approval business logic
func (s *EscrowService) performApproveRefund(
	ctx context.Context,
	repos escrowRepos,
	admin auth.AdminContext,
	refundRequestID uuid.UUID,
	note string,
) (*RefundResult, error) {
	found, err := repos.refunds.FindRequestByID(ctx, refundRequestID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{Code: ErrCodeNotFound, Message: "refund request not found"}
		}
		return nil, internalError("failed to load refund request", err)
	}

	goal, err := repos.goals.FindByIDForUpdate(ctx, found.GoalID)
	if err != nil {
		return nil, internalError("failed to lock goal", err)
	}

	req, err := repos.refunds.FindRequestByIDForUpdate(ctx, refundRequestID)
	if err != nil {
		return nil, internalError("failed to lock refund request", err)
	}
	if req.Status != models.RefundRequestStatusRequested {
		return nil, &ServiceError{Code: ErrCodeInvalidState, Message: "refund request has already been processed"}
	}

	if err := models.Transition(goal.Status, models.GoalStatusRefunded, goal.Status.CanTransitionTo); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidState, Message: err.Error()}
	}

	escrow, err := repos.escrows.FindByGoalIDForUpdate(ctx, goal.ID)
	if errors.Is(err, models.ErrNotFound) {
		escrow, err = repos.escrows.UpsertHeld(ctx, goal.ID, req.Amount, s.currency)
	}
	if err != nil {
		return nil, internalError("failed to load escrow", err)
	}
	if err := models.Transition(escrow.Status, models.EscrowStatusRefunded, escrow.Status.CanTransitionTo); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidState,
			Message: fmt.Sprintf("escrow is %s, only HELD escrows can be refunded", escrow.Status),
		}
	}

	now := s.now()
	adminID := admin.AdminID()
	split := ledger.SplitRefund(req.Amount)

	req.ProcessedAt = &now
	req.AdminID = &adminID
	req.ResponseNote = note
	if err := repos.refunds.MarkApproved(ctx, req); err != nil {
		return nil, internalError("failed to approve refund request", err)
	}

	refund := &models.Refund{
		RefundRequestID: req.ID,
		GoalID:          goal.ID,
		UserID:          req.UserID,
		Amount:          split.UserShare,
		PlatformShare:   split.AdminShare,
		StoreShare:      split.StoreShare,
	}
	if err := repos.refunds.CreateRefund(ctx, refund); err != nil {
		return nil, internalError("failed to record refund", err)
	}

	escrow.Amount = req.Amount
	escrow.Status = models.EscrowStatusRefunded
	escrow.PlatformFee = decimal.NewNullDecimal(split.AdminShare)
	escrow.NetAmount = decimal.NewNullDecimal(split.UserShare)
	escrow.ReleasedAt = &now
	escrow.ReleasedBy = &adminID
	if err := repos.escrows.Settle(ctx, escrow); err != nil {
		return nil, internalError("failed to refund escrow", err)
	}

	goal.Status = models.GoalStatusRefunded
	if err := repos.goals.Update(ctx, goal); err != nil {
		return nil, internalError("failed to mark goal refunded", err)
	}

	event := refundApprovedEvent{
		RefundRequestID: req.ID,
		GoalID:          goal.ID,
		UserID:          req.UserID,
		Amount:          req.Amount,
		UserShare:       split.UserShare,
		PlatformShare:   split.AdminShare,
		StoreShare:      split.StoreShare,
		ApprovedAt:      now,
	}
	if err := repos.outbox.Enqueue(ctx, models.EventRefundApproved, goal.ID.String(), event); err != nil {
		return nil, internalError("failed to enqueue refund approved event", err)
	}

	return &RefundResult{
		Request:    req,
		Refund:     refund,
		Escrow:     escrow,
		Goal:       goal,
		StoreShare: split.StoreShare,
	}, nil
}

func escrowLookupError(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{Code: ErrCodeNotFound, Message: "escrow not found"}
	}
	return internalError("failed to load escrow", err)
}

// Reconcile backfills missing escrow rows and re-syncs HELD amounts to their goals
func (s *EscrowService) Reconcile(ctx context.Context) (*ReconcileReport, error) {
	tx, cancel, err := s.db.StartTx(ctx)
	if err != nil {
		return nil, internalError("failed to start transaction", err)
	}
	defer cancel()
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	report, err := s.performReconcile(ctx, newEscrowRepos(tx))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction", err)
	}

	if report.Backfilled > 0 || report.Synced > 0 {
		s.logger.Warn("escrow drift repaired", "backfilled", report.Backfilled, "synced", report.Synced)
	}
	if s.metrics != nil {
		s.metrics.EscrowsBackfilled.Add(float64(report.Backfilled))
	}

	return report, nil
}

// performReconcile contains the core reconciliation logic
func (s *EscrowService) performReconcile(ctx context.Context, repos escrowRepos) (*ReconcileReport, error) {
	goals, err := repos.goals.ListFundedWithoutEscrow(ctx)
	if err != nil {
		return nil, internalError("failed to find goals without escrow", err)
	}

	report := &ReconcileReport{}
	for i := range goals {
		escrow := backfillEscrow(&goals[i], s.currency)
		if err := repos.escrows.Create(ctx, escrow); err != nil {
			if errors.Is(err, models.ErrDuplicate) {
				continue
			}
			return nil, internalError("failed to backfill escrow", err)
		}
		report.Backfilled++
	}

	synced, err := repos.escrows.SyncHeldAmounts(ctx)
	if err != nil {
		return nil, internalError("failed to sync escrow amounts", err)
	}
	report.Synced = synced

	return report, nil
}

// backfillEscrow builds the escrow a goal should have had. Settled goals get a
// settled escrow stamped with the goal's last update.
func backfillEscrow(goal *models.Goal, currency string) *models.Escrow {
	escrow := &models.Escrow{
		GoalID:   goal.ID,
		Amount:   goal.Saved,
		Status:   models.EscrowStatusHeld,
		Currency: currency,
	}

	switch goal.Status {
	case models.GoalStatusCompleted:
		split := ledger.SplitRelease(goal.Saved)
		releasedAt := goal.UpdatedAt
		escrow.Status = models.EscrowStatusReleased
		escrow.PlatformFee = decimal.NewNullDecimal(split.PlatformFee)
		escrow.NetAmount = decimal.NewNullDecimal(split.NetAmount)
		escrow.ReleasedAt = &releasedAt
	case models.GoalStatusRefunded:
		split := ledger.SplitRefund(goal.Saved)
		releasedAt := goal.UpdatedAt
		escrow.Status = models.EscrowStatusRefunded
		escrow.PlatformFee = decimal.NewNullDecimal(split.AdminShare)
		escrow.NetAmount = decimal.NewNullDecimal(split.UserShare)
		escrow.ReleasedAt = &releasedAt
	}

	return escrow
}

// ListEscrows lists escrows after reconciling, optionally filtered by status
func (s *EscrowService) ListEscrows(ctx context.Context, admin auth.AdminContext, status *models.EscrowStatus) ([]models.Escrow, error) {
	if err := s.reconcileForRead(ctx, admin); err != nil {
		return nil, err
	}

	escrows, err := repository.NewEscrowRepository(s.db).List(ctx, status)
	if err != nil {
		return nil, internalError("failed to list escrows", err)
	}
	return escrows, nil
}

// ListReleasable lists HELD escrows whose delivery has been confirmed
func (s *EscrowService) ListReleasable(ctx context.Context, admin auth.AdminContext) ([]models.Escrow, error) {
	if err := s.reconcileForRead(ctx, admin); err != nil {
		return nil, err
	}

	escrows, err := repository.NewEscrowRepository(s.db).ListReleasable(ctx)
	if err != nil {
		return nil, internalError("failed to list releasable escrows", err)
	}
	return escrows, nil
}

// GetEscrow retrieves one escrow after reconciling
func (s *EscrowService) GetEscrow(ctx context.Context, admin auth.AdminContext, escrowID uuid.UUID) (*models.Escrow, error) {
	if err := s.reconcileForRead(ctx, admin); err != nil {
		return nil, err
	}

	escrow, err := repository.NewEscrowRepository(s.db).FindByID(ctx, escrowID)
	if err != nil {
		return nil, escrowLookupError(err)
	}
	return escrow, nil
}

// ListRefundRequests lists refund requests, optionally filtered by status
func (s *EscrowService) ListRefundRequests(
	ctx context.Context,
	admin auth.AdminContext,
	status *models.RefundRequestStatus,
) ([]models.RefundRequest, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}

	requests, err := repository.NewRefundRepository(s.db).ListRequests(ctx, status)
	if err != nil {
		return nil, internalError("failed to list refund requests", err)
	}
	return requests, nil
}

func (s *EscrowService) reconcileForRead(ctx context.Context, admin auth.AdminContext) error {
	if err := requireAdmin(admin); err != nil {
		return err
	}
	_, err := s.Reconcile(ctx)
	return err
}
