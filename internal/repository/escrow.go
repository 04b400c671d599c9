package repository

import (
	"context"
	"fmt"

	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EscrowRepository defines the interface for escrow data access
type EscrowRepository interface {
	Create(ctx context.Context, escrow *models.Escrow) error
	UpsertHeld(ctx context.Context, goalID uuid.UUID, amount decimal.Decimal, currency string) (*models.Escrow, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Escrow, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Escrow, error)
	FindByGoalIDForUpdate(ctx context.Context, goalID uuid.UUID) (*models.Escrow, error)
	List(ctx context.Context, status *models.EscrowStatus) ([]models.Escrow, error)
	ListReleasable(ctx context.Context) ([]models.Escrow, error)
	Settle(ctx context.Context, escrow *models.Escrow) error
	SyncHeldAmounts(ctx context.Context) (int64, error)
	DeleteByGoalID(ctx context.Context, goalID uuid.UUID) error
}

type escrowRepository struct {
	db db.DBTX
}

// NewEscrowRepository creates a new EscrowRepository
func NewEscrowRepository(q db.DBTX) EscrowRepository {
	return &escrowRepository{db: q}
}

const escrowColumns = `
	id, goal_id, amount, status, platform_fee, net_amount, currency,
	released_at, released_by, created_at, updated_at`

func scanEscrow(row scanner) (*models.Escrow, error) {
	var e models.Escrow
	err := row.Scan(
		&e.ID,
		&e.GoalID,
		&e.Amount,
		&e.Status,
		&e.PlatformFee,
		&e.NetAmount,
		&e.Currency,
		&e.ReleasedAt,
		&e.ReleasedBy,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a fully specified escrow row. Used by reconciliation backfill.
func (r *escrowRepository) Create(ctx context.Context, escrow *models.Escrow) error {
	if escrow.ID == uuid.Nil {
		escrow.ID = uuid.New()
	}

	query := `
		INSERT INTO escrows (id, goal_id, amount, status, platform_fee, net_amount, currency, released_at, released_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		escrow.ID,
		escrow.GoalID,
		escrow.Amount,
		escrow.Status,
		escrow.PlatformFee,
		escrow.NetAmount,
		escrow.Currency,
		escrow.ReleasedAt,
		escrow.ReleasedBy,
	).Scan(&escrow.CreatedAt, &escrow.UpdatedAt)

	return translate(err, "create escrow")
}

// UpsertHeld mirrors a goal's saved total onto its escrow, creating a HELD row
// when none exists. Settled rows are left untouched and returned as they are.
func (r *escrowRepository) UpsertHeld(ctx context.Context, goalID uuid.UUID, amount decimal.Decimal, currency string) (*models.Escrow, error) {
	query := `
		INSERT INTO escrows (id, goal_id, amount, status, currency)
		VALUES ($1, $2, $3, 'HELD', $4)
		ON CONFLICT (goal_id) DO UPDATE
		SET amount = CASE WHEN escrows.status = 'HELD' THEN EXCLUDED.amount ELSE escrows.amount END,
		    updated_at = NOW()
		RETURNING` + escrowColumns

	escrow, err := scanEscrow(r.db.QueryRowContext(ctx, query, uuid.New(), goalID, amount, currency))
	if err != nil {
		return nil, translate(err, "upsert escrow")
	}
	return escrow, nil
}

func (r *escrowRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Escrow, error) {
	query := `SELECT` + escrowColumns + ` FROM escrows WHERE id = $1`

	escrow, err := scanEscrow(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translate(err, "find escrow by id")
	}
	return escrow, nil
}

func (r *escrowRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Escrow, error) {
	query := `SELECT` + escrowColumns + ` FROM escrows WHERE id = $1 FOR UPDATE`

	escrow, err := scanEscrow(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translate(err, "find escrow by id for update")
	}
	return escrow, nil
}

func (r *escrowRepository) FindByGoalIDForUpdate(ctx context.Context, goalID uuid.UUID) (*models.Escrow, error) {
	query := `SELECT` + escrowColumns + ` FROM escrows WHERE goal_id = $1 FOR UPDATE`

	escrow, err := scanEscrow(r.db.QueryRowContext(ctx, query, goalID))
	if err != nil {
		return nil, translate(err, "find escrow by goal id")
	}
	return escrow, nil
}

// List returns escrows, optionally filtered by status, newest first
func (r *escrowRepository) List(ctx context.Context, status *models.EscrowStatus) ([]models.Escrow, error) {
	if status == nil {
		return r.list(ctx, `SELECT`+escrowColumns+` FROM escrows ORDER BY created_at DESC`)
	}
	return r.list(ctx, `SELECT`+escrowColumns+` FROM escrows WHERE status = $1 ORDER BY created_at DESC`, *status)
}

// ListReleasable returns HELD escrows whose goal has a DELIVERED delivery
func (r *escrowRepository) ListReleasable(ctx context.Context) ([]models.Escrow, error) {
	query := `SELECT` + escrowColumns + `
		FROM escrows
		WHERE status = 'HELD'
		  AND EXISTS (
			SELECT 1 FROM deliveries d
			WHERE d.goal_id = escrows.goal_id AND d.status = 'DELIVERED'
		  )
		ORDER BY updated_at
	`
	return r.list(ctx, query)
}

func (r *escrowRepository) list(ctx context.Context, query string, args ...any) ([]models.Escrow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list escrows: %w", err)
	}
	defer rows.Close() //nolint:errcheck // close error is not actionable

	var escrows []models.Escrow
	for rows.Next() {
		e, err := scanEscrow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan escrow: %w", err)
		}
		escrows = append(escrows, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating escrows: %w", err)
	}

	return escrows, nil
}

// Settle writes a terminal status with its split. Only HELD rows can be settled.
func (r *escrowRepository) Settle(ctx context.Context, escrow *models.Escrow) error {
	query := `
		UPDATE escrows
		SET status = $2,
		    amount = $3,
		    platform_fee = $4,
		    net_amount = $5,
		    released_at = $6,
		    released_by = $7,
		    updated_at = NOW()
		WHERE id = $1 AND status = 'HELD'
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		escrow.ID,
		escrow.Status,
		escrow.Amount,
		escrow.PlatformFee,
		escrow.NetAmount,
		escrow.ReleasedAt,
		escrow.ReleasedBy,
	).Scan(&escrow.UpdatedAt)

	return translate(err, "settle escrow")
}

// SyncHeldAmounts re-mirrors every HELD escrow whose amount drifted from its goal
func (r *escrowRepository) SyncHeldAmounts(ctx context.Context) (int64, error) {
	query := `
		UPDATE escrows e
		SET amount = g.saved, updated_at = NOW()
		FROM goals g
		WHERE e.goal_id = g.id
		  AND e.status = 'HELD'
		  AND e.amount <> g.saved
	`

	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to sync escrow amounts: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

// DeleteByGoalID is only used when an unfunded goal is hard-deleted
func (r *escrowRepository) DeleteByGoalID(ctx context.Context, goalID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM escrows WHERE goal_id = $1`, goalID); err != nil {
		return translate(err, "delete escrow")
	}
	return nil
}
