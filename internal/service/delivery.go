package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/benx421/layaway/internal/auth"
	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/metrics"
	"github.com/benx421/layaway/internal/models"
	"github.com/benx421/layaway/internal/repository"
	"github.com/google/uuid"
)

// defaultDeliveryWindow is used when redemption does not name a delivery date
const defaultDeliveryWindow = 7 * 24 * time.Hour

// DeliveryService converts completed goals into deliveries and tracks them
type DeliveryService struct {
	db       *db.DB
	geocoder Geocoder
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

// NewDeliveryService creates a new DeliveryService
func NewDeliveryService(database *db.DB, geocoder Geocoder, m *metrics.Metrics, logger *slog.Logger) *DeliveryService {
	return &DeliveryService{
		db:       database,
		geocoder: geocoder,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

type deliveryRepos struct {
	goals      repository.GoalRepository
	addresses  repository.AddressRepository
	deliveries repository.DeliveryRepository
	outbox     repository.OutboxRepository
}

func newDeliveryRepos(q db.DBTX) deliveryRepos {
	return deliveryRepos{
		goals:      repository.NewGoalRepository(q),
		addresses:  repository.NewAddressRepository(q),
		deliveries: repository.NewDeliveryRepository(q),
		outbox:     repository.NewOutboxRepository(q),
	}
}

// Redeem creates the delivery for a completed goal. Redeeming twice returns the
// existing delivery.
func (s *DeliveryService) Redeem(ctx context.Context, req RedeemRequest) (*RedeemResult, error) {
	tx, cancel, err := s.db.StartTx(ctx)
	if err != nil {
		return nil, internalError("failed to start transaction", err)
	}
	defer cancel()
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	result, err := s.performRedeem(ctx, newDeliveryRepos(tx), req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction", err)
	}

	if result.Created {
		s.logger.Info("goal redeemed",
			"goal_id", req.GoalID,
			"delivery_id", result.Delivery.ID,
			"tracking_number", result.Delivery.TrackingNumber,
		)
	}

	return result, nil
}

// performRedeem contains the core redemption business logic
func (s *DeliveryService) performRedeem(ctx context.Context, repos deliveryRepos, req RedeemRequest) (*RedeemResult, error) {
	goal, err := lockOwnedGoal(ctx, repos.goals, req.UserID, req.GoalID)
	if err != nil {
		return nil, err
	}

	existing, err := repos.deliveries.FindByGoalID(ctx, goal.ID)
	switch {
	case err == nil:
		return &RedeemResult{Delivery: existing, Created: false}, nil
	case !errors.Is(err, models.ErrNotFound):
		return nil, internalError("failed to check existing delivery", err)
	}

	if err := models.Transition(goal.Status, models.GoalStatusRedeemed, goal.Status.CanTransitionTo); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeGoalNotCompleted,
			Message: fmt.Sprintf("goal is %s, only COMPLETED goals can be redeemed", goal.Status),
		}
	}

	address, err := repos.addresses.FindByID(ctx, req.AddressID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{Code: ErrCodeInvalidAddress, Message: "address not found"}
		}
		return nil, internalError("failed to load address", err)
	}
	if address.UserID != req.UserID {
		return nil, &ServiceError{Code: ErrCodeInvalidAddress, Message: "address belongs to another user"}
	}

	now := s.now()
	estimated := now.Add(defaultDeliveryWindow)
	if req.DeliveryDate != nil {
		estimated = *req.DeliveryDate
	}

	tracking, err := newTrackingNumber()
	if err != nil {
		return nil, internalError("failed to issue tracking number", err)
	}

	lat, lng := s.destination(ctx, address)
	delivery := &models.Delivery{
		GoalID:                goal.ID,
		Status:                models.DeliveryStatusPending,
		ShippingAddress:       address.Format(),
		DestinationLat:        lat,
		DestinationLng:        lng,
		EstimatedDeliveryDate: &estimated,
		TrackingNumber:        tracking,
	}
	if err := repos.deliveries.Create(ctx, delivery); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, &ServiceError{Code: ErrCodeInvalidState, Message: "goal already has a delivery"}
		}
		return nil, internalError("failed to create delivery", err)
	}

	if err := repos.deliveries.AppendTracking(ctx, &models.DeliveryTracking{
		DeliveryID: delivery.ID,
		Status:     delivery.Status,
		Label:      "order placed",
	}); err != nil {
		return nil, internalError("failed to record tracking", err)
	}

	goal.Status = models.GoalStatusRedeemed
	if err := repos.goals.Update(ctx, goal); err != nil {
		return nil, internalError("failed to mark goal redeemed", err)
	}

	return &RedeemResult{Delivery: delivery, Created: true}, nil
}

// destination prefers the coordinates saved on the address and falls back to geocoding
func (s *DeliveryService) destination(ctx context.Context, address *models.Address) (*float64, *float64) {
	if address.Latitude != nil && address.Longitude != nil {
		return address.Latitude, address.Longitude
	}
	if s.geocoder == nil {
		return nil, nil
	}

	point := s.geocoder.Lookup(ctx, address.Format(), address.Coarse())
	outcome := "resolved"
	if point == nil {
		outcome = "unresolved"
	}
	if s.metrics != nil {
		s.metrics.GeocodeLookups.WithLabelValues(outcome).Inc()
	}
	if point == nil {
		return nil, nil
	}
	lat, lng := point.Lat, point.Lng
	return &lat, &lng
}

// UpdateStatus moves a delivery forward. Driver coordinates are left untouched.
func (s *DeliveryService) UpdateStatus(
	ctx context.Context,
	staff auth.StaffContext,
	deliveryID uuid.UUID,
	status models.DeliveryStatus,
) (*models.Delivery, error) {
	if !staff.Valid() {
		return nil, unauthorized("staff capability required")
	}
	if !status.Valid() {
		return nil, &ServiceError{Code: ErrCodeInvalidTransition, Message: fmt.Sprintf("unknown delivery status %q", status)}
	}

	tx, cancel, err := s.db.StartTx(ctx)
	if err != nil {
		return nil, internalError("failed to start transaction", err)
	}
	defer cancel()
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	delivery, err := s.performAdvance(ctx, newDeliveryRepos(tx), deliveryID, status)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction", err)
	}

	s.logger.Info("delivery status updated",
		"delivery_id", delivery.ID,
		"status", delivery.Status,
		"actor_id", staff.ActorID(),
		"role", staff.Role(),
	)

	return delivery, nil
}

// performAdvance locks the delivery and applies a forward status transition.
// Re-applying the current status is a no-op.
func (s *DeliveryService) performAdvance(
	ctx context.Context,
	repos deliveryRepos,
	deliveryID uuid.UUID,
	status models.DeliveryStatus,
) (*models.Delivery, error) {
	delivery, err := repos.deliveries.FindByIDForUpdate(ctx, deliveryID)
	if err != nil {
		return nil, deliveryLookupError(err)
	}
	if delivery.Status == status {
		return delivery, nil
	}

	if err := models.Transition(delivery.Status, status, delivery.Status.CanTransitionTo); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidTransition, Message: err.Error()}
	}

	return delivery, s.applyStatus(ctx, repos, delivery, status)
}

func (s *DeliveryService) applyStatus(
	ctx context.Context,
	repos deliveryRepos,
	delivery *models.Delivery,
	status models.DeliveryStatus,
) error {
	now := s.now()
	delivery.Status = status
	if status == models.DeliveryStatusDelivered {
		delivery.ActualDeliveryDate = &now
	}

	if err := repos.deliveries.UpdateStatus(ctx, delivery); err != nil {
		return internalError("failed to update delivery status", err)
	}

	if err := repos.deliveries.AppendTracking(ctx, &models.DeliveryTracking{
		DeliveryID: delivery.ID,
		Status:     delivery.Status,
		Latitude:   delivery.DriverLat,
		Longitude:  delivery.DriverLng,
		Label:      statusLabel(status),
	}); err != nil {
		return internalError("failed to record tracking", err)
	}

	if status != models.DeliveryStatusDelivered {
		return nil
	}

	event := deliveryDeliveredEvent{
		DeliveryID:     delivery.ID,
		GoalID:         delivery.GoalID,
		TrackingNumber: delivery.TrackingNumber,
		DeliveredAt:    now,
	}
	if err := repos.outbox.Enqueue(ctx, models.EventDeliveryDelivered, delivery.GoalID.String(), event); err != nil {
		return internalError("failed to enqueue delivery event", err)
	}
	return nil
}

func statusLabel(status models.DeliveryStatus) string {
	switch status {
	case models.DeliveryStatusDispatched:
		return "dispatched"
	case models.DeliveryStatusInTransit:
		return "in transit"
	case models.DeliveryStatusDelivered:
		return "delivered"
	default:
		return "pending"
	}
}

// RecordLocation stores a driver position and appends a tracking row. The
// delivery status is never changed here.
func (s *DeliveryService) RecordLocation(
	ctx context.Context,
	staff auth.StaffContext,
	deliveryID uuid.UUID,
	update LocationUpdate,
) (*models.DeliveryTracking, error) {
	if !staff.Valid() {
		return nil, unauthorized("staff capability required")
	}
	if err := ValidateCoordinates(update.Latitude, update.Longitude); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidCoordinates, Message: err.Error()}
	}

	tx, cancel, err := s.db.StartTx(ctx)
	if err != nil {
		return nil, internalError("failed to start transaction", err)
	}
	defer cancel()
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	entry, err := s.performRecordLocation(ctx, newDeliveryRepos(tx), deliveryID, update)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction", err)
	}

	s.logger.Debug("driver location recorded", "delivery_id", deliveryID, "hidden", update.Latitude == nil)

	return entry, nil
}

// performRecordLocation contains the core location ping logic
func (s *DeliveryService) performRecordLocation(
	ctx context.Context,
	repos deliveryRepos,
	deliveryID uuid.UUID,
	update LocationUpdate,
) (*models.DeliveryTracking, error) {
	delivery, err := repos.deliveries.FindByIDForUpdate(ctx, deliveryID)
	if err != nil {
		return nil, deliveryLookupError(err)
	}

	delivery.DriverLat = update.Latitude
	delivery.DriverLng = update.Longitude
	if err := repos.deliveries.UpdateDriverLocation(ctx, delivery); err != nil {
		return nil, internalError("failed to update driver location", err)
	}

	entry := &models.DeliveryTracking{
		DeliveryID: delivery.ID,
		Status:     delivery.Status,
		Latitude:   update.Latitude,
		Longitude:  update.Longitude,
		Label:      update.Label,
	}
	if err := repos.deliveries.AppendTracking(ctx, entry); err != nil {
		return nil, internalError("failed to record tracking", err)
	}

	return entry, nil
}

// ConfirmDelivered lets the goal owner confirm receipt of a dispatched delivery.
// It does not release escrow.
func (s *DeliveryService) ConfirmDelivered(ctx context.Context, userID, deliveryID uuid.UUID) (*models.Delivery, error) {
	tx, cancel, err := s.db.StartTx(ctx)
	if err != nil {
		return nil, internalError("failed to start transaction", err)
	}
	defer cancel()
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	delivery, err := s.performConfirmDelivered(ctx, newDeliveryRepos(tx), userID, deliveryID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction", err)
	}

	s.logger.Info("delivery confirmed by customer", "delivery_id", delivery.ID, "user_id", userID)

	return delivery, nil
}

// performConfirmDelivered contains the core customer confirmation logic
func (s *DeliveryService) performConfirmDelivered(
	ctx context.Context,
	repos deliveryRepos,
	userID uuid.UUID,
	deliveryID uuid.UUID,
) (*models.Delivery, error) {
	delivery, err := repos.deliveries.FindByIDForUpdate(ctx, deliveryID)
	if err != nil {
		return nil, deliveryLookupError(err)
	}

	goal, err := repos.goals.FindByID(ctx, delivery.GoalID)
	if err != nil {
		return nil, internalError("failed to load goal", err)
	}
	if goal.UserID != userID {
		return nil, unauthorized("delivery belongs to another user")
	}

	if delivery.Status == models.DeliveryStatusDelivered {
		return delivery, nil
	}
	if !delivery.Status.CustomerConfirmable() {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidTransition,
			Message: fmt.Sprintf("delivery is %s, it must be dispatched before receipt can be confirmed", delivery.Status),
		}
	}

	return delivery, s.applyStatus(ctx, repos, delivery, models.DeliveryStatusDelivered)
}

// GetDelivery retrieves a delivery visible to the goal owner or staff
func (s *DeliveryService) GetDelivery(ctx context.Context, viewer auth.Principal, deliveryID uuid.UUID) (*models.Delivery, error) {
	repos := newDeliveryRepos(s.db)
	return s.visibleDelivery(ctx, repos, viewer, deliveryID)
}

// ListTracking returns a delivery's tracking history, newest first
func (s *DeliveryService) ListTracking(ctx context.Context, viewer auth.Principal, deliveryID uuid.UUID) ([]models.DeliveryTracking, error) {
	repos := newDeliveryRepos(s.db)
	if _, err := s.visibleDelivery(ctx, repos, viewer, deliveryID); err != nil {
		return nil, err
	}

	entries, err := repos.deliveries.ListTracking(ctx, deliveryID)
	if err != nil {
		return nil, internalError("failed to list tracking", err)
	}
	return entries, nil
}

func (s *DeliveryService) visibleDelivery(
	ctx context.Context,
	repos deliveryRepos,
	viewer auth.Principal,
	deliveryID uuid.UUID,
) (*models.Delivery, error) {
	delivery, err := repos.deliveries.FindByID(ctx, deliveryID)
	if err != nil {
		return nil, deliveryLookupError(err)
	}
	if viewer.IsStaff() {
		return delivery, nil
	}

	goal, err := repos.goals.FindByID(ctx, delivery.GoalID)
	if err != nil {
		return nil, internalError("failed to load goal", err)
	}
	if goal.UserID != viewer.UserID {
		return nil, unauthorized("delivery belongs to another user")
	}
	return delivery, nil
}

func deliveryLookupError(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{Code: ErrCodeNotFound, Message: "delivery not found"}
	}
	return internalError("failed to load delivery", err)
}
