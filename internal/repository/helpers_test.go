package repository

import (
	"context"
	"io"
	"log"
	"log/slog"
	"testing"
	"time"

	"github.com/benx421/layaway/internal/config"
	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to the database described by the environment and
// applies migrations. Tests are skipped when no database is reachable.
func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	if err := database.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	return database
}

func cleanupTestDB(t *testing.T, database *db.DB) {
	t.Helper()
	if err := database.Close(); err != nil {
		log.Printf("failed to close test database: %v", err)
	}
}

func truncateTables(t *testing.T, database *db.DB) {
	t.Helper()

	tables := []string{
		"delivery_tracking", "deliveries", "refunds", "refund_requests", "escrows",
		"deposits", "price_locks", "goals", "products", "addresses",
		"outbox_events", "idempotency_keys",
	}
	for _, table := range tables {
		_, err := database.ExecContext(context.Background(), "TRUNCATE TABLE "+table+" CASCADE")
		if err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}

func seedProduct(t *testing.T, database *db.DB, price string) *models.Product {
	t.Helper()
	product := &models.Product{
		StoreID: uuid.New(),
		Name:    "Standing desk",
		Price:   decimal.RequireFromString(price),
	}
	require.NoError(t, NewProductRepository(database).Create(context.Background(), product))
	return product
}

func seedGoal(t *testing.T, database *db.DB, status models.GoalStatus, target, saved string) *models.Goal {
	t.Helper()
	product := seedProduct(t, database, target)
	goal := &models.Goal{
		UserID:       uuid.New(),
		ProductID:    product.ID,
		Status:       status,
		TargetAmount: decimal.RequireFromString(target),
		Saved:        decimal.RequireFromString(saved),
		LockedPrice:  product.Price,
		TargetDate:   time.Now().Add(30 * 24 * time.Hour).UTC(),
	}
	require.NoError(t, NewGoalRepository(database).Create(context.Background(), goal))
	return goal
}
