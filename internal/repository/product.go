package repository

import (
	"context"

	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/models"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product catalogue reads
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
}

type productRepository struct {
	db db.DBTX
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(q db.DBTX) ProductRepository {
	return &productRepository{db: q}
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	query := `
		SELECT id, store_id, name, price, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.StoreID,
		&p.Name,
		&p.Price,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err, "find product by id")
	}
	return &p, nil
}

// Create seeds a catalogue entry. The catalogue is owned elsewhere; this
// exists for fixtures and the migrate command.
func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}

	query := `
		INSERT INTO products (id, store_id, name, price)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		product.ID,
		product.StoreID,
		product.Name,
		product.Price,
	).Scan(&product.CreatedAt, &product.UpdatedAt)

	return translate(err, "create product")
}
