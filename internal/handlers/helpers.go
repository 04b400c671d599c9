package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/benx421/layaway/internal/auth"
	"github.com/benx421/layaway/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

// Error codes produced by the HTTP layer itself
const (
	errCodeInvalidRequest = "invalid_request"
	errCodeUnauthorized   = "unauthorized"
	errCodeInternal       = "internal_error"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Best effort response writing
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

// statusForCode maps a service error code to its HTTP status
func statusForCode(code string) int {
	switch code {
	case service.ErrCodeInvalidAmount,
		service.ErrCodeInvalidDate,
		service.ErrCodeInvalidAddress,
		service.ErrCodeInvalidCoordinates:
		return http.StatusBadRequest
	case service.ErrCodeUnauthorized:
		return http.StatusForbidden
	case service.ErrCodeProductNotFound,
		service.ErrCodeGoalNotFound,
		service.ErrCodeNotFound:
		return http.StatusNotFound
	case service.ErrCodeGoalAlreadyCompleted,
		service.ErrCodeGoalNotCompleted,
		service.ErrCodeAlreadyRequested,
		service.ErrCodeInvalidState,
		service.ErrCodeInvalidTransition,
		service.ErrCodeDuplicatePayment:
		return http.StatusConflict
	case service.ErrCodeExceedsRemaining,
		service.ErrCodeAmountMismatch:
		return http.StatusUnprocessableEntity
	case service.ErrCodePaymentNotConfirmed:
		return http.StatusPaymentRequired
	case service.ErrCodeGatewayUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// handleServiceError writes the response for an error returned by a service
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	svcErr := extractServiceError(err)
	if svcErr == nil {
		h.logger.Error("unexpected error", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, errCodeInternal, "internal error")
		return
	}

	status := statusForCode(svcErr.Code)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "path", r.URL.Path, "code", svcErr.Code, "error", err)
		writeError(w, status, errCodeInternal, "internal error")
		return
	}

	writeError(w, status, svcErr.Code, svcErr.Message)
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

// pathUUID binds a uuid path parameter, writing a 400 when it is malformed
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, errCodeInvalidRequest, "invalid parameter "+name)
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody decodes the JSON request body into dst, writing a 400 on failure.
// An empty body is accepted when optional is true.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	if r.Body == nil {
		r.Body = http.NoBody
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return true
		}
		writeError(w, http.StatusBadRequest, errCodeInvalidRequest, "invalid request body")
		return false
	}
	return true
}

func principal(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, errCodeUnauthorized, "missing principal")
		return auth.Principal{}, false
	}
	return p, true
}

func adminContext(w http.ResponseWriter, r *http.Request) (auth.AdminContext, bool) {
	p, ok := principal(w, r)
	if !ok {
		return auth.AdminContext{}, false
	}
	admin, err := auth.NewAdminContext(p)
	if err != nil {
		writeError(w, http.StatusForbidden, errCodeUnauthorized, "admin role required")
		return auth.AdminContext{}, false
	}
	return admin, true
}

func staffContext(w http.ResponseWriter, r *http.Request) (auth.StaffContext, bool) {
	p, ok := principal(w, r)
	if !ok {
		return auth.StaffContext{}, false
	}
	staff, err := auth.NewStaffContext(p)
	if err != nil {
		writeError(w, http.StatusForbidden, errCodeUnauthorized, "staff role required")
		return auth.StaffContext{}, false
	}
	return staff, true
}
