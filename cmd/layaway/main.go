// Package main is the layaway API binary.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benx421/layaway/internal/auth"
	"github.com/benx421/layaway/internal/config"
	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/events"
	"github.com/benx421/layaway/internal/gateway"
	"github.com/benx421/layaway/internal/geocode"
	"github.com/benx421/layaway/internal/handlers"
	"github.com/benx421/layaway/internal/metrics"
	"github.com/benx421/layaway/internal/middleware"
	"github.com/benx421/layaway/internal/repository"
	"github.com/benx421/layaway/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const sweepInterval = time.Hour

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "layaway",
		Short:        "Layaway goal funding and escrow settlement API",
		SilenceUsage: true,
	}

	cmd.AddCommand(serveCmd(), migrateCmd(), reconcileCmd(), tokenCmd())
	return cmd
}

func serveCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the outbox relay",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply database migrations before serving")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			database, err := db.Connect(cmd.Context(), &cfg.Database, logger)
			if err != nil {
				return err
			}
			defer database.Close()

			return database.Migrate(cmd.Context())
		},
	}
}

func reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Backfill missing escrows and resync held amounts with goal balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			database, err := db.Connect(cmd.Context(), &cfg.Database, logger)
			if err != nil {
				return err
			}
			defer database.Close()

			escrow := service.NewEscrowService(database, cfg.Gateway.Currency, nil, logger)
			report, err := escrow.Reconcile(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "backfilled %d escrows, resynced %d held amounts\n", report.Backfilled, report.Synced)
			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	var (
		role string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Sign a development identity token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup()
			if err != nil {
				return err
			}
			userID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id: %w", err)
			}
			verifier, err := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
			if err != nil {
				return err
			}
			token, err := verifier.Issue(userID, auth.Role(role), ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", string(auth.RoleCustomer), "Role claim (customer, admin, store)")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	return cmd
}

func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func serve(parent context.Context, migrate bool) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	logger.Info("starting layaway api",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if migrate {
		if err := database.Migrate(ctx); err != nil {
			return err
		}
	}

	m := metrics.New()
	gw := gateway.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.APIKey, cfg.Gateway.Timeout)
	geocoder, closeCache := newGeocoder(ctx, cfg.Geocoder, logger)
	defer closeCache()

	router, err := handlers.NewRouter(database, cfg, gw, geocoder, m, logger)
	if err != nil {
		return err
	}

	publisher, err := newPublisher(cfg.Events, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close event publisher", "error", err)
		}
	}()

	worker := events.NewOutboxWorker(database, publisher, m, logger, cfg.Events.Interval, cfg.Events.BatchSize)
	go func() {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("outbox worker stopped", "error", err)
		}
	}()
	go middleware.SweepIdempotencyKeys(ctx, repository.NewIdempotencyRepository(database),
		cfg.Server.IdempotencyTTL, sweepInterval, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
	return nil
}

// newGeocoder builds the address resolver. The redis cache is optional and a
// failed connection only disables caching.
func newGeocoder(ctx context.Context, cfg config.GeocoderConfig, logger *slog.Logger) (service.Geocoder, func()) {
	resolver := geocode.NewNominatimResolver(cfg.BaseURL, cfg.Timeout)
	if cfg.RedisURL == "" {
		return geocode.NewClient(resolver, nil, cfg.CacheTTL, logger), func() {}
	}

	client, err := geocode.Connect(ctx, cfg.RedisURL)
	if err != nil {
		logger.Warn("geocode cache disabled", "error", err)
		return geocode.NewClient(resolver, nil, cfg.CacheTTL, logger), func() {}
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close redis client", "error", err)
		}
	}
	return geocode.NewClient(resolver, geocode.NewRedisCache(client), cfg.CacheTTL, logger), closeFn
}

// newPublisher returns a Kafka publisher when brokers are configured and a
// logging publisher otherwise.
func newPublisher(cfg config.EventsConfig, logger *slog.Logger) (events.Publisher, error) {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Warn("no kafka brokers configured, outbox events will only be logged")
		return events.NewLogPublisher(logger), nil
	}
	publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.TopicPrefix)
	if err != nil {
		return nil, fmt.Errorf("create kafka publisher: %w", err)
	}
	return publisher, nil
}
