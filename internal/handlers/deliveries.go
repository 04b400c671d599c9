package handlers

import (
	"net/http"

	"github.com/benx421/layaway/internal/models"
	"github.com/benx421/layaway/internal/service"
)

type deliveryStatusRequest struct {
	Status models.DeliveryStatus `json:"status"`
}

type locationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Label     string   `json:"label"`
}

// GetDelivery handles GET /api/v1/deliveries/{deliveryId}
func (h *Handler) GetDelivery(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	deliveryID, ok := pathUUID(w, r, "deliveryId")
	if !ok {
		return
	}

	delivery, err := h.deliveries.GetDelivery(r.Context(), p, deliveryID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDelivery(delivery))
}

// ListTracking handles GET /api/v1/deliveries/{deliveryId}/tracking
func (h *Handler) ListTracking(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	deliveryID, ok := pathUUID(w, r, "deliveryId")
	if !ok {
		return
	}

	entries, err := h.deliveries.ListTracking(r.Context(), p, deliveryID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	out := make([]*trackingResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toTracking(&entries[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"tracking": out})
}

// ConfirmDelivered handles POST /api/v1/deliveries/{deliveryId}/confirm
func (h *Handler) ConfirmDelivered(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	deliveryID, ok := pathUUID(w, r, "deliveryId")
	if !ok {
		return
	}

	delivery, err := h.deliveries.ConfirmDelivered(r.Context(), p.UserID, deliveryID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDelivery(delivery))
}

// UpdateDeliveryStatus handles PATCH /api/v1/admin/deliveries/{deliveryId}/status
func (h *Handler) UpdateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	staff, ok := staffContext(w, r)
	if !ok {
		return
	}
	deliveryID, ok := pathUUID(w, r, "deliveryId")
	if !ok {
		return
	}
	var req deliveryStatusRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	delivery, err := h.deliveries.UpdateStatus(r.Context(), staff, deliveryID, req.Status)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDelivery(delivery))
}

// RecordLocation handles POST /api/v1/admin/deliveries/{deliveryId}/locations
func (h *Handler) RecordLocation(w http.ResponseWriter, r *http.Request) {
	staff, ok := staffContext(w, r)
	if !ok {
		return
	}
	deliveryID, ok := pathUUID(w, r, "deliveryId")
	if !ok {
		return
	}
	var req locationRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	entry, err := h.deliveries.RecordLocation(r.Context(), staff, deliveryID, service.LocationUpdate{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Label:     req.Label,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTracking(entry))
}
