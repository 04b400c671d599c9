package repository

import (
	"context"
	"fmt"

	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalRepository defines the interface for goal data access
type GoalRepository interface {
	Create(ctx context.Context, goal *models.Goal) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Goal, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Goal, error)
	FindLiveForUpdate(ctx context.Context, userID, productID uuid.UUID) (*models.Goal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Goal, error)
	ListFundedWithoutEscrow(ctx context.Context) ([]models.Goal, error)
	Update(ctx context.Context, goal *models.Goal) error
	RecomputeSaved(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type goalRepository struct {
	db db.DBTX
}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository(q db.DBTX) GoalRepository {
	return &goalRepository{db: q}
}

const goalColumns = `
	id, user_id, product_id, target_amount, saved, locked_price, status,
	target_date, end_date, created_at, updated_at`

func scanGoal(row scanner) (*models.Goal, error) {
	var g models.Goal
	err := row.Scan(
		&g.ID,
		&g.UserID,
		&g.ProductID,
		&g.TargetAmount,
		&g.Saved,
		&g.LockedPrice,
		&g.Status,
		&g.TargetDate,
		&g.EndDate,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Create inserts a goal, assigning an ID when none is set
func (r *goalRepository) Create(ctx context.Context, goal *models.Goal) error {
	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}

	query := `
		INSERT INTO goals (id, user_id, product_id, target_amount, saved, locked_price, status, target_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		goal.ID,
		goal.UserID,
		goal.ProductID,
		goal.TargetAmount,
		goal.Saved,
		goal.LockedPrice,
		goal.Status,
		goal.TargetDate,
		goal.EndDate,
	).Scan(&goal.CreatedAt, &goal.UpdatedAt)

	return translate(err, "create goal")
}

// FindByID retrieves a goal by its UUID
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Goal, error) {
	query := `SELECT` + goalColumns + ` FROM goals WHERE id = $1`

	goal, err := scanGoal(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translate(err, "find goal by id")
	}
	return goal, nil
}

// FindByIDForUpdate retrieves a goal and locks its row until the transaction ends.
// Every deposit, cancellation and redemption takes this lock first, which
// serializes concurrent mutations of the same goal.
func (r *goalRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Goal, error) {
	query := `SELECT` + goalColumns + ` FROM goals WHERE id = $1 FOR UPDATE`

	goal, err := scanGoal(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translate(err, "find goal by id for update")
	}
	return goal, nil
}

// FindLiveForUpdate locks the user's ACTIVE or SAVED goal for a product, if any
func (r *goalRepository) FindLiveForUpdate(ctx context.Context, userID, productID uuid.UUID) (*models.Goal, error) {
	query := `SELECT` + goalColumns + `
		FROM goals
		WHERE user_id = $1 AND product_id = $2 AND status IN ('ACTIVE', 'SAVED')
		FOR UPDATE
	`

	goal, err := scanGoal(r.db.QueryRowContext(ctx, query, userID, productID))
	if err != nil {
		return nil, translate(err, "find live goal")
	}
	return goal, nil
}

// ListByUser returns a user's goals, newest first
func (r *goalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Goal, error) {
	query := `SELECT` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

// ListFundedWithoutEscrow returns goals holding money that have no escrow mirror
func (r *goalRepository) ListFundedWithoutEscrow(ctx context.Context) ([]models.Goal, error) {
	query := `SELECT` + goalColumns + `
		FROM goals g
		WHERE g.saved > 0
		  AND NOT EXISTS (SELECT 1 FROM escrows e WHERE e.goal_id = g.id)
		ORDER BY g.created_at
	`
	return r.list(ctx, query)
}

func (r *goalRepository) list(ctx context.Context, query string, args ...any) ([]models.Goal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close() //nolint:errcheck // close error is not actionable

	var goals []models.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, *goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goals: %w", err)
	}

	return goals, nil
}

// Update persists the mutable goal fields. saved is not written here; it only
// changes through RecomputeSaved.
func (r *goalRepository) Update(ctx context.Context, goal *models.Goal) error {
	query := `
		UPDATE goals
		SET target_amount = $2,
		    locked_price = $3,
		    status = $4,
		    target_date = $5,
		    end_date = $6,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		goal.ID,
		goal.TargetAmount,
		goal.LockedPrice,
		goal.Status,
		goal.TargetDate,
		goal.EndDate,
	).Scan(&goal.UpdatedAt)

	return translate(err, "update goal")
}

// RecomputeSaved rewrites saved as the sum of the goal's deposits and returns it.
// The goals_saved_within_target check rejects a sum above the target.
func (r *goalRepository) RecomputeSaved(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	query := `
		UPDATE goals
		SET saved = (SELECT COALESCE(SUM(amount), 0) FROM deposits WHERE goal_id = $1),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING saved
	`

	var saved decimal.Decimal
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&saved); err != nil {
		return decimal.Zero, translate(err, "recompute saved")
	}
	return saved, nil
}

// Delete removes a goal row. Dependent rows must be removed first.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return translate(err, "delete goal")
	}
	return expectOneRow(result, "delete goal")
}
