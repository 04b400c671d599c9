package service

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/benx421/layaway/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return testNow
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestGoal(status models.GoalStatus, target, saved string) *models.Goal {
	return &models.Goal{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		ProductID:    uuid.New(),
		TargetAmount: dec(target),
		Saved:        dec(saved),
		LockedPrice:  dec(target),
		Status:       status,
		TargetDate:   testNow.Add(30 * 24 * time.Hour),
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var svcErr *ServiceError
	if assert.ErrorAs(t, err, &svcErr) {
		assert.Equal(t, code, svcErr.Code, svcErr.Message)
	}
}
