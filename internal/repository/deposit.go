package repository

import (
	"context"
	"fmt"

	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/models"
	"github.com/google/uuid"
)

// DepositRepository defines the interface for deposit data access.
// Deposits are append-only; there is no update.
type DepositRepository interface {
	Create(ctx context.Context, deposit *models.Deposit) error
	FindByIdempotencyKey(ctx context.Context, key string) (*models.Deposit, error)
	ListByGoal(ctx context.Context, goalID uuid.UUID) ([]models.Deposit, error)
	DeleteByGoalID(ctx context.Context, goalID uuid.UUID) error
}

type depositRepository struct {
	db db.DBTX
}

// NewDepositRepository creates a new DepositRepository
func NewDepositRepository(q db.DBTX) DepositRepository {
	return &depositRepository{db: q}
}

const depositColumns = `
	id, goal_id, user_id, amount, payment_method, status, receipt_number, idempotency_key, created_at`

func scanDeposit(row scanner) (*models.Deposit, error) {
	var d models.Deposit
	err := row.Scan(
		&d.ID,
		&d.GoalID,
		&d.UserID,
		&d.Amount,
		&d.PaymentMethod,
		&d.Status,
		&d.ReceiptNumber,
		&d.IdempotencyKey,
		&d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a deposit. A repeated idempotency key or receipt number
// surfaces as models.ErrDuplicate.
func (r *depositRepository) Create(ctx context.Context, deposit *models.Deposit) error {
	if deposit.ID == uuid.Nil {
		deposit.ID = uuid.New()
	}
	if deposit.Status == "" {
		deposit.Status = models.DepositStatusCompleted
	}

	query := `
		INSERT INTO deposits (id, goal_id, user_id, amount, payment_method, status, receipt_number, idempotency_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		deposit.ID,
		deposit.GoalID,
		deposit.UserID,
		deposit.Amount,
		deposit.PaymentMethod,
		deposit.Status,
		deposit.ReceiptNumber,
		deposit.IdempotencyKey,
	).Scan(&deposit.CreatedAt)

	return translate(err, "create deposit")
}

func (r *depositRepository) FindByIdempotencyKey(ctx context.Context, key string) (*models.Deposit, error) {
	query := `SELECT` + depositColumns + ` FROM deposits WHERE idempotency_key = $1`

	deposit, err := scanDeposit(r.db.QueryRowContext(ctx, query, key))
	if err != nil {
		return nil, translate(err, "find deposit by idempotency key")
	}
	return deposit, nil
}

// ListByGoal returns a goal's deposits in the order they were made
func (r *depositRepository) ListByGoal(ctx context.Context, goalID uuid.UUID) ([]models.Deposit, error) {
	query := `SELECT` + depositColumns + ` FROM deposits WHERE goal_id = $1 ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	defer rows.Close() //nolint:errcheck // close error is not actionable

	var deposits []models.Deposit
	for rows.Next() {
		d, err := scanDeposit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deposit: %w", err)
		}
		deposits = append(deposits, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deposits: %w", err)
	}

	return deposits, nil
}

// DeleteByGoalID is only used when an unfunded goal is hard-deleted
func (r *depositRepository) DeleteByGoalID(ctx context.Context, goalID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM deposits WHERE goal_id = $1`, goalID); err != nil {
		return translate(err, "delete deposits")
	}
	return nil
}
