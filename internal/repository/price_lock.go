package repository

import (
	"context"

	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/models"
	"github.com/google/uuid"
)

// PriceLockRepository defines the interface for price lock data access
type PriceLockRepository interface {
	Create(ctx context.Context, lock *models.PriceLock) error
	FindByGoalID(ctx context.Context, goalID uuid.UUID) (*models.PriceLock, error)
	UpdateExpiry(ctx context.Context, lock *models.PriceLock) error
	DeleteByGoalID(ctx context.Context, goalID uuid.UUID) error
}

type priceLockRepository struct {
	db db.DBTX
}

// NewPriceLockRepository creates a new PriceLockRepository
func NewPriceLockRepository(q db.DBTX) PriceLockRepository {
	return &priceLockRepository{db: q}
}

func (r *priceLockRepository) Create(ctx context.Context, lock *models.PriceLock) error {
	if lock.ID == uuid.Nil {
		lock.ID = uuid.New()
	}
	if lock.Status == "" {
		lock.Status = models.PriceLockStatusActive
	}

	query := `
		INSERT INTO price_locks (id, goal_id, product_id, locked_price, original_price, expires_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		lock.ID,
		lock.GoalID,
		lock.ProductID,
		lock.LockedPrice,
		lock.OriginalPrice,
		lock.ExpiresAt,
		lock.Status,
	).Scan(&lock.CreatedAt, &lock.UpdatedAt)

	return translate(err, "create price lock")
}

func (r *priceLockRepository) FindByGoalID(ctx context.Context, goalID uuid.UUID) (*models.PriceLock, error) {
	query := `
		SELECT id, goal_id, product_id, locked_price, original_price, expires_at, status, created_at, updated_at
		FROM price_locks
		WHERE goal_id = $1
	`

	var l models.PriceLock
	err := r.db.QueryRowContext(ctx, query, goalID).Scan(
		&l.ID,
		&l.GoalID,
		&l.ProductID,
		&l.LockedPrice,
		&l.OriginalPrice,
		&l.ExpiresAt,
		&l.Status,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err, "find price lock")
	}
	return &l, nil
}

// UpdateExpiry moves the lock expiry to follow the goal's target date
func (r *priceLockRepository) UpdateExpiry(ctx context.Context, lock *models.PriceLock) error {
	query := `
		UPDATE price_locks
		SET expires_at = $2, updated_at = NOW()
		WHERE goal_id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query, lock.GoalID, lock.ExpiresAt).Scan(&lock.UpdatedAt)
	return translate(err, "update price lock expiry")
}

func (r *priceLockRepository) DeleteByGoalID(ctx context.Context, goalID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM price_locks WHERE goal_id = $1`, goalID); err != nil {
		return translate(err, "delete price lock")
	}
	return nil
}
