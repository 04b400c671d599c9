package repository

import (
	"context"
	"fmt"

	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/models"
	"github.com/google/uuid"
)

// RefundRepository defines the interface for refund requests and realized refunds
type RefundRepository interface {
	CreateRequest(ctx context.Context, req *models.RefundRequest) error
	FindRequestByID(ctx context.Context, id uuid.UUID) (*models.RefundRequest, error)
	FindRequestByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.RefundRequest, error)
	ExistsForGoal(ctx context.Context, goalID uuid.UUID) (bool, error)
	ListRequests(ctx context.Context, status *models.RefundRequestStatus) ([]models.RefundRequest, error)
	MarkApproved(ctx context.Context, req *models.RefundRequest) error
	CreateRefund(ctx context.Context, refund *models.Refund) error
	FindRefundByRequestID(ctx context.Context, requestID uuid.UUID) (*models.Refund, error)
	DeleteRequestsByGoalID(ctx context.Context, goalID uuid.UUID) error
}

type refundRepository struct {
	db db.DBTX
}

// NewRefundRepository creates a new RefundRepository
func NewRefundRepository(q db.DBTX) RefundRepository {
	return &refundRepository{db: q}
}

const refundRequestColumns = `
	id, user_id, goal_id, amount, reason, status, processed_at, admin_id, response_note, created_at`

func scanRefundRequest(row scanner) (*models.RefundRequest, error) {
	var rr models.RefundRequest
	err := row.Scan(
		&rr.ID,
		&rr.UserID,
		&rr.GoalID,
		&rr.Amount,
		&rr.Reason,
		&rr.Status,
		&rr.ProcessedAt,
		&rr.AdminID,
		&rr.ResponseNote,
		&rr.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rr, nil
}

// CreateRequest inserts a refund request. goal_id is unique, so a second
// request for the same goal surfaces as models.ErrDuplicate.
func (r *refundRepository) CreateRequest(ctx context.Context, req *models.RefundRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.Status == "" {
		req.Status = models.RefundRequestStatusRequested
	}

	query := `
		INSERT INTO refund_requests (id, user_id, goal_id, amount, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		req.ID,
		req.UserID,
		req.GoalID,
		req.Amount,
		req.Reason,
		req.Status,
	).Scan(&req.CreatedAt)

	return translate(err, "create refund request")
}

func (r *refundRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*models.RefundRequest, error) {
	query := `SELECT` + refundRequestColumns + ` FROM refund_requests WHERE id = $1`

	req, err := scanRefundRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translate(err, "find refund request")
	}
	return req, nil
}

func (r *refundRepository) FindRequestByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.RefundRequest, error) {
	query := `SELECT` + refundRequestColumns + ` FROM refund_requests WHERE id = $1 FOR UPDATE`

	req, err := scanRefundRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translate(err, "find refund request for update")
	}
	return req, nil
}

func (r *refundRepository) ExistsForGoal(ctx context.Context, goalID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM refund_requests WHERE goal_id = $1)`, goalID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check refund request: %w", err)
	}
	return exists, nil
}

// ListRequests returns refund requests, optionally filtered by status, oldest first
func (r *refundRepository) ListRequests(ctx context.Context, status *models.RefundRequestStatus) ([]models.RefundRequest, error) {
	query := `SELECT` + refundRequestColumns + ` FROM refund_requests`
	var args []any
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list refund requests: %w", err)
	}
	defer rows.Close() //nolint:errcheck // close error is not actionable

	var out []models.RefundRequest
	for rows.Next() {
		req, err := scanRefundRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan refund request: %w", err)
		}
		out = append(out, *req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating refund requests: %w", err)
	}

	return out, nil
}

// MarkApproved stamps the approval. Only REQUESTED rows can be approved.
func (r *refundRepository) MarkApproved(ctx context.Context, req *models.RefundRequest) error {
	query := `
		UPDATE refund_requests
		SET status = 'APPROVED',
		    processed_at = $2,
		    admin_id = $3,
		    response_note = $4
		WHERE id = $1 AND status = 'REQUESTED'
	`

	result, err := r.db.ExecContext(ctx, query, req.ID, req.ProcessedAt, req.AdminID, req.ResponseNote)
	if err != nil {
		return translate(err, "approve refund request")
	}
	if err := expectOneRow(result, "approve refund request"); err != nil {
		return err
	}

	req.Status = models.RefundRequestStatusApproved
	return nil
}

func (r *refundRepository) CreateRefund(ctx context.Context, refund *models.Refund) error {
	if refund.ID == uuid.Nil {
		refund.ID = uuid.New()
	}

	query := `
		INSERT INTO refunds (id, refund_request_id, goal_id, user_id, amount, platform_share, store_share)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		refund.ID,
		refund.RefundRequestID,
		refund.GoalID,
		refund.UserID,
		refund.Amount,
		refund.PlatformShare,
		refund.StoreShare,
	).Scan(&refund.CreatedAt)

	return translate(err, "create refund")
}

func (r *refundRepository) FindRefundByRequestID(ctx context.Context, requestID uuid.UUID) (*models.Refund, error) {
	query := `
		SELECT id, refund_request_id, goal_id, user_id, amount, platform_share, store_share, created_at
		FROM refunds
		WHERE refund_request_id = $1
	`

	var rf models.Refund
	err := r.db.QueryRowContext(ctx, query, requestID).Scan(
		&rf.ID,
		&rf.RefundRequestID,
		&rf.GoalID,
		&rf.UserID,
		&rf.Amount,
		&rf.PlatformShare,
		&rf.StoreShare,
		&rf.CreatedAt,
	)
	if err != nil {
		return nil, translate(err, "find refund")
	}
	return &rf, nil
}

// DeleteRequestsByGoalID is only used when an unfunded goal is hard-deleted
func (r *refundRepository) DeleteRequestsByGoalID(ctx context.Context, goalID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM refund_requests WHERE goal_id = $1`, goalID); err != nil {
		return translate(err, "delete refund requests")
	}
	return nil
}
