package handlers

import (
	"net/http"

	"github.com/benx421/layaway/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type confirmPaymentRequest struct {
	SessionID string          `json:"session_id"`
	Status    string          `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	GoalID    uuid.UUID       `json:"goal_id"`
}

// ConfirmPayment handles POST /api/v1/payments/confirmations. The redirect
// payload is untrusted; the service verifies it against the gateway.
func (h *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var req confirmPaymentRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	res, err := h.payments.ConfirmPayment(r.Context(), service.PaymentConfirmation{
		UserID:    p.UserID,
		GoalID:    req.GoalID,
		SessionID: req.SessionID,
		Status:    req.Status,
		Amount:    req.Amount,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}
	writeJSON(w, status, toDepositResult(res))
}
