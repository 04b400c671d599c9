package repository

import (
	"context"
	"fmt"

	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/models"
	"github.com/google/uuid"
)

// DeliveryRepository defines the interface for deliveries and their tracking log
type DeliveryRepository interface {
	Create(ctx context.Context, delivery *models.Delivery) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Delivery, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Delivery, error)
	FindByGoalID(ctx context.Context, goalID uuid.UUID) (*models.Delivery, error)
	UpdateStatus(ctx context.Context, delivery *models.Delivery) error
	UpdateDriverLocation(ctx context.Context, delivery *models.Delivery) error
	AppendTracking(ctx context.Context, entry *models.DeliveryTracking) error
	ListTracking(ctx context.Context, deliveryID uuid.UUID) ([]models.DeliveryTracking, error)
}

type deliveryRepository struct {
	db db.DBTX
}

// NewDeliveryRepository creates a new DeliveryRepository
func NewDeliveryRepository(q db.DBTX) DeliveryRepository {
	return &deliveryRepository{db: q}
}

const deliveryColumns = `
	id, goal_id, status, shipping_address, destination_lat, destination_lng,
	estimated_delivery_date, actual_delivery_date, tracking_number,
	driver_lat, driver_lng, created_at, updated_at`

func scanDelivery(row scanner) (*models.Delivery, error) {
	var d models.Delivery
	err := row.Scan(
		&d.ID,
		&d.GoalID,
		&d.Status,
		&d.ShippingAddress,
		&d.DestinationLat,
		&d.DestinationLng,
		&d.EstimatedDeliveryDate,
		&d.ActualDeliveryDate,
		&d.TrackingNumber,
		&d.DriverLat,
		&d.DriverLng,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a delivery. goal_id and tracking_number are unique.
func (r *deliveryRepository) Create(ctx context.Context, delivery *models.Delivery) error {
	if delivery.ID == uuid.Nil {
		delivery.ID = uuid.New()
	}

	query := `
		INSERT INTO deliveries (id, goal_id, status, shipping_address, destination_lat, destination_lng,
		                        estimated_delivery_date, tracking_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		delivery.ID,
		delivery.GoalID,
		delivery.Status,
		delivery.ShippingAddress,
		delivery.DestinationLat,
		delivery.DestinationLng,
		delivery.EstimatedDeliveryDate,
		delivery.TrackingNumber,
	).Scan(&delivery.CreatedAt, &delivery.UpdatedAt)

	return translate(err, "create delivery")
}

func (r *deliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Delivery, error) {
	query := `SELECT` + deliveryColumns + ` FROM deliveries WHERE id = $1`

	d, err := scanDelivery(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translate(err, "find delivery by id")
	}
	return d, nil
}

func (r *deliveryRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Delivery, error) {
	query := `SELECT` + deliveryColumns + ` FROM deliveries WHERE id = $1 FOR UPDATE`

	d, err := scanDelivery(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translate(err, "find delivery by id for update")
	}
	return d, nil
}

func (r *deliveryRepository) FindByGoalID(ctx context.Context, goalID uuid.UUID) (*models.Delivery, error) {
	query := `SELECT` + deliveryColumns + ` FROM deliveries WHERE goal_id = $1`

	d, err := scanDelivery(r.db.QueryRowContext(ctx, query, goalID))
	if err != nil {
		return nil, translate(err, "find delivery by goal id")
	}
	return d, nil
}

// UpdateStatus writes status and the actual delivery date. Driver coordinates are not touched.
func (r *deliveryRepository) UpdateStatus(ctx context.Context, delivery *models.Delivery) error {
	query := `
		UPDATE deliveries
		SET status = $2, actual_delivery_date = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		delivery.ID,
		delivery.Status,
		delivery.ActualDeliveryDate,
	).Scan(&delivery.UpdatedAt)

	return translate(err, "update delivery status")
}

// UpdateDriverLocation writes driver coordinates only. Status is not touched.
func (r *deliveryRepository) UpdateDriverLocation(ctx context.Context, delivery *models.Delivery) error {
	query := `
		UPDATE deliveries
		SET driver_lat = $2, driver_lng = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		delivery.ID,
		delivery.DriverLat,
		delivery.DriverLng,
	).Scan(&delivery.UpdatedAt)

	return translate(err, "update driver location")
}

func (r *deliveryRepository) AppendTracking(ctx context.Context, entry *models.DeliveryTracking) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	query := `
		INSERT INTO delivery_tracking (id, delivery_id, status, latitude, longitude, label)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING recorded_at
	`

	err := r.db.QueryRowContext(ctx, query,
		entry.ID,
		entry.DeliveryID,
		entry.Status,
		entry.Latitude,
		entry.Longitude,
		entry.Label,
	).Scan(&entry.RecordedAt)

	return translate(err, "append delivery tracking")
}

// ListTracking returns the tracking log newest first
func (r *deliveryRepository) ListTracking(ctx context.Context, deliveryID uuid.UUID) ([]models.DeliveryTracking, error) {
	query := `
		SELECT id, delivery_id, status, latitude, longitude, label, recorded_at
		FROM delivery_tracking
		WHERE delivery_id = $1
		ORDER BY recorded_at DESC, id
	`

	rows, err := r.db.QueryContext(ctx, query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery tracking: %w", err)
	}
	defer rows.Close() //nolint:errcheck // close error is not actionable

	var out []models.DeliveryTracking
	for rows.Next() {
		var t models.DeliveryTracking
		if err := rows.Scan(
			&t.ID,
			&t.DeliveryID,
			&t.Status,
			&t.Latitude,
			&t.Longitude,
			&t.Label,
			&t.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan delivery tracking: %w", err)
		}
		out = append(out, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating delivery tracking: %w", err)
	}

	return out, nil
}
