package auth

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough"

func TestVerifier_RoundTrip(t *testing.T) {
	v, err := NewVerifier(testSecret, "layaway-test")
	require.NoError(t, err)

	userID := uuid.New()
	token, err := v.Issue(userID, RoleAdmin, time.Minute)
	require.NoError(t, err)

	p, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, p.UserID)
	assert.Equal(t, RoleAdmin, p.Role)
}

func TestVerifier_Rejects(t *testing.T) {
	v, err := NewVerifier(testSecret, "")
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		token, err := v.Issue(uuid.New(), RoleCustomer, -2*time.Minute)
		require.NoError(t, err)

		_, err = v.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewVerifier("a-different-secret", "")
		require.NoError(t, err)
		token, err := other.Issue(uuid.New(), RoleCustomer, time.Minute)
		require.NoError(t, err)

		_, err = v.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-123",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		})
		raw, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = v.Verify(raw)
		assert.Error(t, err)
	})

	t.Run("missing role defaults to customer", func(t *testing.T) {
		token, err := v.Issue(uuid.New(), "", time.Minute)
		require.NoError(t, err)

		p, err := v.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, RoleCustomer, p.Role)
	})
}

func TestNewVerifier_EmptySecret(t *testing.T) {
	_, err := NewVerifier("", "")
	assert.Error(t, err)
}

func TestCapabilities(t *testing.T) {
	id := uuid.New()

	admin, err := NewAdminContext(Principal{UserID: id, Role: RoleAdmin})
	require.NoError(t, err)
	assert.True(t, admin.Valid())
	assert.Equal(t, id, admin.AdminID())

	_, err = NewAdminContext(Principal{UserID: id, Role: RoleStore})
	assert.ErrorIs(t, err, ErrForbidden)

	staff, err := NewStaffContext(Principal{UserID: id, Role: RoleStore})
	require.NoError(t, err)
	assert.True(t, staff.Valid())
	assert.Equal(t, RoleStore, staff.Role())

	_, err = NewStaffContext(Principal{UserID: id, Role: RoleCustomer})
	assert.ErrorIs(t, err, ErrForbidden)

	assert.False(t, AdminContext{}.Valid())
	assert.False(t, StaffContext{}.Valid())
}

func TestAuthenticate(t *testing.T) {
	v, err := NewVerifier(testSecret, "")
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userID := uuid.New()
	var seen Principal
	handler := Authenticate(v, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/goals", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/goals", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := v.Issue(userID, RoleCustomer, time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/goals", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, userID, seen.UserID)
	})
}
