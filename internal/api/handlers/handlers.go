package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/envelopes-app/backend/internal/api/middleware"
	"github.com/envelopes-app/backend/internal/service"
)

// DetectionHandler exposes the detection service over plain JSON endpoints.
type DetectionHandler struct {
	svc *service.DetectionService
	log zerolog.Logger
}

// NewDetectionHandler creates a new detection handler.
func NewDetectionHandler(svc *service.DetectionService, log zerolog.Logger) *DetectionHandler {
	return &DetectionHandler{svc: svc, log: log}
}

// Register wires the handler's routes onto mux.
func (h *DetectionHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/detection/run", h.RunDetection)
	mux.HandleFunc("POST /api/detection/sweep", h.RunSweep)
	mux.HandleFunc("GET /api/users/{id}/recurring", h.ListRecurring)
	mux.HandleFunc("GET /health", h.Health)
}

// RunDetection handles POST /api/detection/run
func (h *DetectionHandler) RunDetection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"user_id"`
		AsOf   string `json:"as_of,omitempty"` // RFC 3339; defaults to now
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" {
		middleware.WriteError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	now := time.Now()
	if req.AsOf != "" {
		parsed, err := time.Parse(time.RFC3339, req.AsOf)
		if err != nil {
			middleware.WriteError(w, http.StatusBadRequest, "as_of must be RFC 3339")
			return
		}
		now = parsed
	}

	result, err := h.svc.DetectForUser(r.Context(), req.UserID, now)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", req.UserID).Msg("Failed to run detection")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to run detection")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, result)
}

// RunSweep handles POST /api/detection/sweep. Called by Cloud Scheduler.
func (h *DetectionHandler) RunSweep(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.RunDetectionSweep(r.Context(), time.Now())
	if err != nil {
		h.log.Error().Err(err).Msg("Detection sweep failed")
		middleware.WriteError(w, http.StatusInternalServerError, "Detection sweep failed")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, result)
}

// ListRecurring handles GET /api/users/{id}/recurring
func (h *DetectionHandler) ListRecurring(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		middleware.WriteError(w, http.StatusBadRequest, "user id is required")
		return
	}
	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	patterns, err := h.svc.ListRecurring(r.Context(), userID, includeInactive)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("Failed to list recurring patterns")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list recurring patterns")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"patterns": patterns,
		"count":    len(patterns),
	})
}

// Health handles GET /health
func (h *DetectionHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
