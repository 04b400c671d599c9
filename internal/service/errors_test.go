package service

import (
	"errors"
	"testing"

	"github.com/benx421/layaway/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ServiceError
		expected string
	}{
		{
			name: "error without underlying cause",
			err: &ServiceError{
				Code:    ErrCodeExceedsRemaining,
				Message: "deposit exceeds remaining amount",
			},
			expected: "deposit exceeds remaining amount",
		},
		{
			name:     "internal error keeps its cause",
			err:      internalError("failed to recompute saved", errors.New("connection reset")),
			expected: "failed to recompute saved: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestServiceError_Unwrap(t *testing.T) {
	err := internalError("failed to load goal", models.ErrNotFound)

	assert.Equal(t, ErrCodeInternalError, err.Code)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestServiceError_NoUnwrap(t *testing.T) {
	err := unauthorized("goal belongs to another user")

	assert.Equal(t, ErrCodeUnauthorized, err.Code)
	assert.Nil(t, err.Unwrap())
}
