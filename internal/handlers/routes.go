package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/benx421/layaway/internal/api"
	"github.com/benx421/layaway/internal/auth"
	"github.com/benx421/layaway/internal/config"
	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/metrics"
	"github.com/benx421/layaway/internal/middleware"
	"github.com/benx421/layaway/internal/repository"
	"github.com/benx421/layaway/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates the services and returns the configured HTTP router.
// geocoder may be nil.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	gw service.CheckoutGateway,
	geocoder service.Geocoder,
	m *metrics.Metrics,
	logger *slog.Logger,
) (http.Handler, error) {
	verifier, err := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("create token verifier: %w", err)
	}

	currency := cfg.Gateway.Currency
	goalService := service.NewGoalService(database, currency, logger)
	depositService := service.NewDepositService(database, currency, m, logger)
	paymentService := service.NewPaymentService(database, gw, depositService, cfg.Gateway, logger)
	escrowService := service.NewEscrowService(database, currency, m, logger)
	deliveryService := service.NewDeliveryService(database, geocoder, m, logger)

	handler := NewHandler(goalService, paymentService, escrowService, deliveryService, database, logger)
	return handler.Routes(verifier, repository.NewIdempotencyRepository(database), m)
}

// Routes mounts every endpoint with its middleware chain. m may be nil.
func (h *Handler) Routes(
	verifier *auth.Verifier,
	idempotencyRepo repository.IdempotencyRepository,
	m *metrics.Metrics,
) (http.Handler, error) {
	doc, err := api.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	validate, err := middleware.RequestValidator(doc, h.logger)
	if err != nil {
		return nil, fmt.Errorf("create request validator: %w", err)
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.Recoverer)
	if m != nil {
		r.Use(middleware.Metrics(m))
		r.Handle("/metrics", m.Handler())
	}

	api.RegisterDocsRoutes(r)
	r.Get("/health", h.GetHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(
			auth.Authenticate(verifier, h.logger),
			validate,
			middleware.Idempotency(idempotencyRepo, m, h.logger),
		)

		r.Post("/goals", h.CreateGoal)
		r.Get("/goals", h.ListGoals)
		r.Get("/goals/{goalId}", h.GetGoal)
		r.Put("/goals/{goalId}", h.UpdateGoal)
		r.Delete("/goals/{goalId}", h.CancelGoal)
		r.Get("/goals/{goalId}/deposits", h.ListDeposits)
		r.Post("/goals/{goalId}/checkout", h.StartCheckout)
		r.Post("/goals/{goalId}/redeem", h.RedeemGoal)

		r.Post("/payments/confirmations", h.ConfirmPayment)

		r.Get("/deliveries/{deliveryId}", h.GetDelivery)
		r.Get("/deliveries/{deliveryId}/tracking", h.ListTracking)
		r.Post("/deliveries/{deliveryId}/confirm", h.ConfirmDelivered)

		r.Route("/admin", func(r chi.Router) {
			r.Patch("/deliveries/{deliveryId}/status", h.UpdateDeliveryStatus)
			r.Post("/deliveries/{deliveryId}/locations", h.RecordLocation)

			r.Get("/escrows", h.ListEscrows)
			r.Get("/escrows/releasable", h.ListReleasableEscrows)
			r.Get("/escrows/{escrowId}", h.GetEscrow)
			r.Post("/escrows/{escrowId}/release", h.ReleaseEscrow)

			r.Get("/refund-requests", h.ListRefundRequests)
			r.Post("/refund-requests/{refundRequestId}/approve", h.ApproveRefund)
		})
	})

	return r, nil
}
