package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/horsepowerelectrical/horsepower-api/internal/entity"
)

type LeadHandler struct {
	leadRepo entity.LeadRepositoryInterface
	logger   zerolog.Logger
}

func NewLeadHandler(leadRepo entity.LeadRepositoryInterface, logger zerolog.Logger) *LeadHandler {
	return &LeadHandler{leadRepo: leadRepo, logger: logger}
}

// HandleList returns every lead, newest first. Filtering happens client-side.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadRepo.FindAll(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("leads: listing failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch leads"})
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

type UpdateLeadResponse struct {
	Success bool         `json:"success"`
	Data    *entity.Lead `json:"data,omitempty"`
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var update entity.LeadUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	if update.Empty() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No fields to update"})
		return
	}
	if update.Status != nil && !update.Status.IsValid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid status value"})
		return
	}
	if update.Priority != nil && !update.Priority.IsValid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid priority value"})
		return
	}

	lead, err := h.leadRepo.Update(r.Context(), id, update, time.Now())
	if err != nil {
		if err == entity.ErrNotFound {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Lead not found"})
			return
		}
		h.logger.Error().Err(err).Str("lead_id", id).Msg("leads: update failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update lead"})
		return
	}

	writeJSON(w, http.StatusOK, UpdateLeadResponse{Success: true, Data: lead})
}
