package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benx421/layaway/internal/auth"
	"github.com/benx421/layaway/internal/metrics"
	repomocks "github.com/benx421/layaway/internal/repository/mocks"
	"github.com/benx421/layaway/internal/service"
	"github.com/benx421/layaway/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testServer struct {
	goals       *mocks.MockGoalManager
	payments    *mocks.MockPaymentProcessor
	escrow      *mocks.MockEscrowManager
	deliveries  *mocks.MockDeliveryCoordinator
	health      *mocks.MockHealthChecker
	idempotency *repomocks.MockIdempotencyRepository
	verifier    *auth.Verifier
	metrics     *metrics.Metrics
	router      http.Handler
	t           *testing.T
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	verifier, err := auth.NewVerifier("handler-test-secret", "")
	require.NoError(t, err)

	s := &testServer{
		goals:       mocks.NewMockGoalManager(t),
		payments:    mocks.NewMockPaymentProcessor(t),
		escrow:      mocks.NewMockEscrowManager(t),
		deliveries:  mocks.NewMockDeliveryCoordinator(t),
		health:      mocks.NewMockHealthChecker(t),
		idempotency: repomocks.NewMockIdempotencyRepository(t),
		verifier:    verifier,
		metrics:     metrics.New(),
		t:           t,
	}

	h := NewHandler(s.goals, s.payments, s.escrow, s.deliveries, s.health, testLogger())
	s.router, err = h.Routes(verifier, s.idempotency, s.metrics)
	require.NoError(t, err)
	return s
}

// do sends a request as userID with the given role. An empty role sends no token.
func (s *testServer) do(method, path string, role auth.Role, userID uuid.UUID, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		reader = jsonReader(s.t, body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		token, err := s.verifier.Issue(userID, role, time.Minute)
		require.NoError(s.t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func jsonReader(t *testing.T, body any) io.Reader {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func assertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, rec.Code, rec.Body.String())
	assert.Equal(t, code, decodeResponse(t, rec)["error"])
}

func svcErr(code string) error {
	return &service.ServiceError{Code: code, Message: code}
}
