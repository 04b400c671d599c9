package handlers

import (
	"net/http"

	"github.com/benx421/layaway/internal/models"
	"github.com/oapi-codegen/runtime"
)

type approveRefundRequest struct {
	Note string `json:"note"`
}

// ListEscrows handles GET /api/v1/admin/escrows
func (h *Handler) ListEscrows(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminContext(w, r)
	if !ok {
		return
	}
	var status *models.EscrowStatus
	if err := runtime.BindQueryParameter("form", true, false, "status", r.URL.Query(), &status); err != nil {
		writeError(w, http.StatusBadRequest, errCodeInvalidRequest, "invalid parameter status")
		return
	}

	escrows, err := h.escrow.ListEscrows(r.Context(), admin, status)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEscrowList(escrows))
}

// ListReleasableEscrows handles GET /api/v1/admin/escrows/releasable
func (h *Handler) ListReleasableEscrows(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminContext(w, r)
	if !ok {
		return
	}

	escrows, err := h.escrow.ListReleasable(r.Context(), admin)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEscrowList(escrows))
}

// GetEscrow handles GET /api/v1/admin/escrows/{escrowId}
func (h *Handler) GetEscrow(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminContext(w, r)
	if !ok {
		return
	}
	escrowID, ok := pathUUID(w, r, "escrowId")
	if !ok {
		return
	}

	escrow, err := h.escrow.GetEscrow(r.Context(), admin, escrowID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEscrow(escrow))
}

// ReleaseEscrow handles POST /api/v1/admin/escrows/{escrowId}/release
func (h *Handler) ReleaseEscrow(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminContext(w, r)
	if !ok {
		return
	}
	escrowID, ok := pathUUID(w, r, "escrowId")
	if !ok {
		return
	}

	escrow, err := h.escrow.Release(r.Context(), admin, escrowID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEscrow(escrow))
}

// ListRefundRequests handles GET /api/v1/admin/refund-requests
func (h *Handler) ListRefundRequests(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminContext(w, r)
	if !ok {
		return
	}
	var status *models.RefundRequestStatus
	if err := runtime.BindQueryParameter("form", true, false, "status", r.URL.Query(), &status); err != nil {
		writeError(w, http.StatusBadRequest, errCodeInvalidRequest, "invalid parameter status")
		return
	}

	requests, err := h.escrow.ListRefundRequests(r.Context(), admin, status)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	out := make([]*refundRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, toRefundRequest(&requests[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"refund_requests": out})
}

// ApproveRefund handles POST /api/v1/admin/refund-requests/{refundRequestId}/approve
func (h *Handler) ApproveRefund(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminContext(w, r)
	if !ok {
		return
	}
	requestID, ok := pathUUID(w, r, "refundRequestId")
	if !ok {
		return
	}
	var req approveRefundRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	res, err := h.escrow.ApproveRefund(r.Context(), admin, requestID, req.Note)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRefundResult(res))
}
