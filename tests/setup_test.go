//nolint:errcheck // unchecked errors are acceptable in test files
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/benx421/layaway/internal/auth"
	"github.com/benx421/layaway/internal/config"
	"github.com/benx421/layaway/internal/db"
	"github.com/benx421/layaway/internal/gateway"
	"github.com/benx421/layaway/internal/geocode"
	"github.com/benx421/layaway/internal/handlers"
	"github.com/benx421/layaway/internal/models"
	"github.com/benx421/layaway/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// TestServer wraps the HTTP test server, database and checkout gateway for integration tests.
type TestServer struct {
	Server   *httptest.Server
	Database *db.DB
	Gateway  *fakeGateway
	verifier *auth.Verifier
	t        *testing.T
}

// SetupTest creates a new test server with a clean database state.
// It skips when no database is reachable.
func SetupTest(t *testing.T) *TestServer {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err, "failed to load config")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		t.Skipf("database unavailable: %v", err)
	}
	require.NoError(t, database.Migrate(ctx), "failed to migrate")

	resetTestData(t, database)

	gw := newFakeGateway()
	router, err := handlers.NewRouter(database, cfg, gw, noGeocoder{}, nil, logger)
	require.NoError(t, err, "failed to build router")

	verifier, err := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	require.NoError(t, err)

	return &TestServer{
		Server:   httptest.NewServer(router),
		Database: database,
		Gateway:  gw,
		verifier: verifier,
		t:        t,
	}
}

// Close shuts down the test server and database connection.
func (ts *TestServer) Close() {
	ts.Server.Close()
	_ = ts.Database.Close()
}

// URL returns the full URL for a given path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

func resetTestData(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(), `
		TRUNCATE TABLE outbox_events, idempotency_keys, delivery_tracking, deliveries,
			refunds, refund_requests, escrows, deposits, price_locks, goals, addresses, products CASCADE;
	`)
	require.NoError(t, err, "failed to reset test data")
}

// Client acts as one authenticated caller against the test server.
type Client struct {
	ts     *TestServer
	token  string
	UserID uuid.UUID
}

// As returns a client holding a fresh token for a new user with role.
func (ts *TestServer) As(role auth.Role) *Client {
	ts.t.Helper()
	userID := uuid.New()
	token, err := ts.verifier.Issue(userID, role, time.Hour)
	require.NoError(ts.t, err)
	return &Client{ts: ts, token: token, UserID: userID}
}

// Do sends body as JSON and decodes the response into out when out is non-nil.
func (c *Client) Do(method, path string, body any, idempotencyKey string, out any) int {
	c.ts.t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(c.ts.t, err)
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, c.ts.URL(path), reader)
	require.NoError(c.ts.t, err)
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.ts.t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(c.ts.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// SeedProduct inserts a catalog product priced at price.
func (ts *TestServer) SeedProduct(price string) *models.Product {
	ts.t.Helper()
	product := &models.Product{
		StoreID: uuid.New(),
		Name:    "Espresso machine",
		Price:   decimal.RequireFromString(price),
	}
	require.NoError(ts.t, repository.NewProductRepository(ts.Database).Create(context.Background(), product))
	return product
}

// SeedAddress stores a shipping address owned by userID.
func (ts *TestServer) SeedAddress(userID uuid.UUID) *models.Address {
	ts.t.Helper()
	address := &models.Address{
		UserID:     userID,
		Recipient:  "Ada Lovelace",
		Line1:      "12 Analytical Row",
		City:       "London",
		PostalCode: "N1 9GU",
		Country:    "GB",
	}
	require.NoError(ts.t, repository.NewAddressRepository(ts.Database).Create(context.Background(), address))
	return address
}

// fakeGateway is an in-memory hosted checkout that marks every session paid.
type fakeGateway struct {
	sessions map[string]*gateway.Session
	mu       sync.Mutex
	seq      int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{sessions: make(map[string]*gateway.Session)}
}

func (g *fakeGateway) CreateSession(_ context.Context, req gateway.CheckoutRequest) (*gateway.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.seq++
	session := &gateway.Session{
		ID:       fmt.Sprintf("cs_test_%d", g.seq),
		URL:      fmt.Sprintf("https://checkout.test/cs_test_%d", g.seq),
		Status:   gateway.SessionStatusPaid,
		Currency: req.Currency,
		Amount:   req.Amount,
		Metadata: req.Metadata,
	}
	g.sessions[session.ID] = session
	return session, nil
}

func (g *fakeGateway) GetSession(_ context.Context, sessionID string) (*gateway.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	session, ok := g.sessions[sessionID]
	if !ok {
		return nil, gateway.ErrSessionNotFound
	}
	return session, nil
}

type noGeocoder struct{}

func (noGeocoder) Lookup(context.Context, string, string) *geocode.Point { return nil }
