// Package handlers implements HTTP handlers for the layaway API.
package handlers

import (
	"log/slog"

	"github.com/benx421/layaway/internal/service"
)

// Handler serves every API route on top of the service layer
type Handler struct {
	goals         service.GoalManager
	payments      service.PaymentProcessor
	escrow        service.EscrowManager
	deliveries    service.DeliveryCoordinator
	healthChecker service.HealthChecker
	logger        *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	goals service.GoalManager,
	payments service.PaymentProcessor,
	escrow service.EscrowManager,
	deliveries service.DeliveryCoordinator,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		goals:         goals,
		payments:      payments,
		escrow:        escrow,
		deliveries:    deliveries,
		healthChecker: healthChecker,
		logger:        logger,
	}
}
