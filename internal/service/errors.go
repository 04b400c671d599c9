package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInvalidAmount        = "invalid_amount"
	ErrCodeInvalidDate          = "invalid_date"
	ErrCodeProductNotFound      = "product_not_found"
	ErrCodeGoalNotFound         = "goal_not_found"
	ErrCodeNotFound             = "not_found"
	ErrCodeUnauthorized         = "unauthorized"
	ErrCodeGoalAlreadyCompleted = "goal_already_completed"
	ErrCodeGoalNotCompleted     = "goal_not_completed"
	ErrCodeExceedsRemaining     = "exceeds_remaining"
	ErrCodeAlreadyRequested     = "already_requested"
	ErrCodeInvalidState         = "invalid_state"
	ErrCodeInvalidTransition    = "invalid_transition"
	ErrCodeInvalidAddress       = "invalid_address"
	ErrCodeInvalidCoordinates   = "invalid_coordinates"
	ErrCodeDuplicatePayment     = "duplicate_payment"
	ErrCodePaymentNotConfirmed  = "payment_not_confirmed"
	ErrCodeAmountMismatch       = "amount_mismatch"
	ErrCodeGatewayUnavailable   = "gateway_unavailable"
	ErrCodeInternalError        = "internal_error"
)

func internalError(message string, err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: message,
		Err:     err,
	}
}

func unauthorized(message string) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeUnauthorized,
		Message: message,
	}
}
