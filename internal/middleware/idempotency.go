// Package middleware provides HTTP middleware components for the layaway API.
package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/benx421/layaway/internal/auth"
	"github.com/benx421/layaway/internal/metrics"
	"github.com/benx421/layaway/internal/models"
	"github.com/benx421/layaway/internal/repository"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "X-Idempotent-Replayed"
)

type responseCapture struct {
	http.ResponseWriter
	body       bytes.Buffer
	statusCode int
}

func newResponseCapture(w http.ResponseWriter) *responseCapture {
	return &responseCapture{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // Default if WriteHeader not called
	}
}

func (rc *responseCapture) WriteHeader(code int) {
	rc.statusCode = code
	rc.ResponseWriter.WriteHeader(code)
}

func (rc *responseCapture) Write(b []byte) (int, error) {
	rc.body.Write(b)
	return rc.ResponseWriter.Write(b)
}

// Idempotency replays the stored response for a repeated POST carrying an
// Idempotency-Key header. Keys are scoped to the authenticated caller and the
// request path, and only 2xx responses are stored.
func Idempotency(repo repository.IdempotencyRepository, m *metrics.Metrics, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			idempotencyKey := strings.TrimSpace(r.Header.Get(idempotencyKeyHeader))
			if idempotencyKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			key := scopedKey(ctx, idempotencyKey)
			requestPath := normalizeRequestPath(r.URL.Path)

			cached, err := repo.Get(ctx, key, requestPath)
			if err != nil {
				logger.Error("failed to check idempotency cache", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if cached != nil {
				logger.Debug("returning cached idempotent response",
					"key", idempotencyKey,
					"path", requestPath,
					"status", cached.ResponseStatus,
				)
				if m != nil {
					m.IdempotentReplays.Inc()
				}
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set(replayedHeader, "true")
				w.WriteHeader(cached.ResponseStatus)
				//nolint:errcheck // Best effort response writing
				w.Write([]byte(cached.ResponseBody))
				return
			}

			capture := newResponseCapture(w)
			next.ServeHTTP(capture, r)

			if !shouldCacheResponse(capture.statusCode) {
				return
			}

			if err := repo.Store(ctx, &models.IdempotencyKey{
				Key:            key,
				RequestPath:    requestPath,
				ResponseStatus: capture.statusCode,
				ResponseBody:   capture.body.String(),
				CreatedAt:      time.Now(),
			}); err != nil {
				logger.Error("failed to store idempotency key",
					"error", err,
					"key", idempotencyKey,
				)
			}
		})
	}
}

// scopedKey prefixes the client key with the caller so two users cannot
// collide on the same key.
func scopedKey(ctx context.Context, key string) string {
	if p, ok := auth.FromContext(ctx); ok {
		return p.UserID.String() + ":" + key
	}
	return key
}

func normalizeRequestPath(urlPath string) string {
	return strings.TrimSuffix(urlPath, "/")
}

func shouldCacheResponse(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// SweepIdempotencyKeys deletes stored responses older than ttl every interval
// until ctx is cancelled.
func SweepIdempotencyKeys(
	ctx context.Context,
	repo repository.IdempotencyRepository,
	ttl, interval time.Duration,
	logger *slog.Logger,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := repo.DeleteOlderThan(ctx, time.Now().Add(-ttl))
			if err != nil {
				logger.Error("failed to sweep idempotency keys", "error", err)
				continue
			}
			if deleted > 0 {
				logger.Debug("swept idempotency keys", "deleted", deleted)
			}
		}
	}
}
