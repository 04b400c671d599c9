package repository

import (
	"context"

	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/models"
	"github.com/google/uuid"
)

// AddressRepository defines the interface for saved shipping addresses
type AddressRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Address, error)
	Create(ctx context.Context, address *models.Address) error
}

type addressRepository struct {
	db db.DBTX
}

// NewAddressRepository creates a new AddressRepository
func NewAddressRepository(q db.DBTX) AddressRepository {
	return &addressRepository{db: q}
}

func (r *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	query := `
		SELECT id, user_id, recipient, line1, line2, city, state, postal_code, country,
		       latitude, longitude, created_at
		FROM addresses
		WHERE id = $1
	`

	var a models.Address
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.UserID,
		&a.Recipient,
		&a.Line1,
		&a.Line2,
		&a.City,
		&a.State,
		&a.PostalCode,
		&a.Country,
		&a.Latitude,
		&a.Longitude,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, translate(err, "find address by id")
	}
	return &a, nil
}

func (r *addressRepository) Create(ctx context.Context, address *models.Address) error {
	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}

	query := `
		INSERT INTO addresses (id, user_id, recipient, line1, line2, city, state, postal_code, country, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		address.ID,
		address.UserID,
		address.Recipient,
		address.Line1,
		address.Line2,
		address.City,
		address.State,
		address.PostalCode,
		address.Country,
		address.Latitude,
		address.Longitude,
	).Scan(&address.CreatedAt)

	return translate(err, "create address")
}
