package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/benx421/layaway/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{service.ErrCodeInvalidAmount, http.StatusBadRequest},
		{service.ErrCodeInvalidDate, http.StatusBadRequest},
		{service.ErrCodeInvalidAddress, http.StatusBadRequest},
		{service.ErrCodeInvalidCoordinates, http.StatusBadRequest},
		{service.ErrCodeUnauthorized, http.StatusForbidden},
		{service.ErrCodeProductNotFound, http.StatusNotFound},
		{service.ErrCodeGoalNotFound, http.StatusNotFound},
		{service.ErrCodeNotFound, http.StatusNotFound},
		{service.ErrCodeGoalAlreadyCompleted, http.StatusConflict},
		{service.ErrCodeGoalNotCompleted, http.StatusConflict},
		{service.ErrCodeAlreadyRequested, http.StatusConflict},
		{service.ErrCodeInvalidState, http.StatusConflict},
		{service.ErrCodeInvalidTransition, http.StatusConflict},
		{service.ErrCodeDuplicatePayment, http.StatusConflict},
		{service.ErrCodeExceedsRemaining, http.StatusUnprocessableEntity},
		{service.ErrCodeAmountMismatch, http.StatusUnprocessableEntity},
		{service.ErrCodePaymentNotConfirmed, http.StatusPaymentRequired},
		{service.ErrCodeGatewayUnavailable, http.StatusBadGateway},
		{service.ErrCodeInternalError, http.StatusInternalServerError},
		{"something_new", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForCode(tt.code))
		})
	}
}

func TestExtractServiceError(t *testing.T) {
	inner := &service.ServiceError{Code: service.ErrCodeNotFound}

	assert.Same(t, inner, extractServiceError(fmt.Errorf("wrapped: %w", inner)))
	assert.Nil(t, extractServiceError(errors.New("plain")))
}
