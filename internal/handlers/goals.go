package handlers

import (
	"net/http"
	"time"

	"github.com/benx421/layaway/internal/models"
	"github.com/benx421/layaway/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type createGoalRequest struct {
	TargetDate   time.Time       `json:"target_date"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	ProductID    uuid.UUID       `json:"product_id"`
}

type updateGoalRequest struct {
	TargetDate   time.Time          `json:"target_date"`
	Status       *models.GoalStatus `json:"status"`
	TargetAmount decimal.Decimal    `json:"target_amount"`
}

type checkoutRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type redeemRequest struct {
	DeliveryDate *time.Time `json:"delivery_date"`
	AddressID    uuid.UUID  `json:"address_id"`
}

// CreateGoal handles POST /api/v1/goals
func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var req createGoalRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	res, err := h.goals.CreateGoal(r.Context(), p.UserID, req.ProductID, req.TargetAmount, req.TargetDate)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, goalResultResponse{
		Goal:      toGoal(res.Goal),
		PriceLock: toPriceLock(res.PriceLock),
		Created:   res.Created,
	})
}

// ListGoals handles GET /api/v1/goals
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	goals, err := h.goals.ListGoals(r.Context(), p.UserID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"goals": toGoals(goals)})
}

// GetGoal handles GET /api/v1/goals/{goalId}
func (h *Handler) GetGoal(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	goalID, ok := pathUUID(w, r, "goalId")
	if !ok {
		return
	}

	goal, err := h.goals.GetGoal(r.Context(), p.UserID, goalID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoal(goal))
}

// UpdateGoal handles PUT /api/v1/goals/{goalId}
func (h *Handler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	goalID, ok := pathUUID(w, r, "goalId")
	if !ok {
		return
	}
	var req updateGoalRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	goal, err := h.goals.UpdateGoal(r.Context(), p.UserID, goalID, service.GoalUpdate{
		TargetAmount: req.TargetAmount,
		TargetDate:   req.TargetDate,
		Status:       req.Status,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoal(goal))
}

// CancelGoal handles DELETE /api/v1/goals/{goalId}
func (h *Handler) CancelGoal(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	goalID, ok := pathUUID(w, r, "goalId")
	if !ok {
		return
	}

	res, err := h.goals.CancelGoal(r.Context(), p.UserID, goalID, r.URL.Query().Get("reason"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCancelResult(res))
}

// ListDeposits handles GET /api/v1/goals/{goalId}/deposits
func (h *Handler) ListDeposits(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	goalID, ok := pathUUID(w, r, "goalId")
	if !ok {
		return
	}

	deposits, err := h.goals.ListDeposits(r.Context(), p.UserID, goalID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	out := make([]*depositResponse, 0, len(deposits))
	for i := range deposits {
		out = append(out, toDeposit(&deposits[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"deposits": out})
}

// StartCheckout handles POST /api/v1/goals/{goalId}/checkout
func (h *Handler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	goalID, ok := pathUUID(w, r, "goalId")
	if !ok {
		return
	}
	var req checkoutRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	checkout, err := h.payments.StartCheckout(r.Context(), p.UserID, goalID, req.Amount)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, checkoutResponse{
		SessionID:   checkout.SessionID,
		CheckoutURL: checkout.URL,
		GoalID:      checkout.GoalID,
		Amount:      checkout.Amount,
		Currency:    checkout.Currency,
	})
}

// RedeemGoal handles POST /api/v1/goals/{goalId}/redeem
func (h *Handler) RedeemGoal(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	goalID, ok := pathUUID(w, r, "goalId")
	if !ok {
		return
	}
	var req redeemRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	res, err := h.deliveries.Redeem(r.Context(), service.RedeemRequest{
		UserID:       p.UserID,
		GoalID:       goalID,
		AddressID:    req.AddressID,
		DeliveryDate: req.DeliveryDate,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toDelivery(res.Delivery))
}
