package roundhandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	roundservice "github.com/greenside-labs/greenside/app/modules/round/application"
	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
	userauth "github.com/greenside-labs/greenside/app/modules/user/infrastructure/auth"
)

// defaultStatsWindow is how many recent rounds the stats view covers when
// the client does not ask for a specific window.
const defaultStatsWindow = 5

// RoundHandlers handles HTTP requests for round persistence and projections.
type RoundHandlers struct {
	service roundservice.Service
	logger  *slog.Logger
}

// NewRoundHandlers creates a new RoundHandlers instance.
func NewRoundHandlers(service roundservice.Service, logger *slog.Logger) *RoundHandlers {
	return &RoundHandlers{
		service: service,
		logger:  logger,
	}
}

// SaveRound handles POST /rounds.
func (h *RoundHandlers) SaveRound(w http.ResponseWriter, r *http.Request) {
	userID, ok := userauth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload scorecardtypes.ScorecardPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.SaveRound(r.Context(), userID, payload)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to save round", slog.Any("error", err))
		http.Error(w, "Failed to save round", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		if err := json.NewEncoder(w).Encode(result.Failure); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(result.Success); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// ListRounds handles GET /rounds.
func (h *RoundHandlers) ListRounds(w http.ResponseWriter, r *http.Request) {
	userID, ok := userauth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	rounds, err := h.service.ListRounds(r.Context(), userID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list rounds", slog.Any("error", err))
		http.Error(w, "Failed to fetch rounds", http.StatusInternalServerError)
		return
	}

	writeJSON(w, rounds)
}

// GetRound handles GET /rounds/{roundID}.
func (h *RoundHandlers) GetRound(w http.ResponseWriter, r *http.Request) {
	userID, ok := userauth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	roundID, err := uuid.Parse(chi.URLParam(r, "roundID"))
	if err != nil {
		http.Error(w, "Invalid round ID", http.StatusBadRequest)
		return
	}

	round, err := h.service.GetRound(r.Context(), userID, roundID)
	if errors.Is(err, roundservice.ErrNotFound) {
		http.Error(w, "Round not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch round", http.StatusInternalServerError)
		return
	}

	writeJSON(w, round)
}

// DeleteRound handles DELETE /rounds/{roundID}.
func (h *RoundHandlers) DeleteRound(w http.ResponseWriter, r *http.Request) {
	userID, ok := userauth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	roundID, err := uuid.Parse(chi.URLParam(r, "roundID"))
	if err != nil {
		http.Error(w, "Invalid round ID", http.StatusBadRequest)
		return
	}

	err = h.service.DeleteRound(r.Context(), userID, roundID)
	if errors.Is(err, roundservice.ErrNotFound) {
		http.Error(w, "Round not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to delete round", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /rounds/stats?window=.
func (h *RoundHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := userauth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	window := defaultStatsWindow
	if raw := r.URL.Query().Get("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "Invalid window", http.StatusBadRequest)
			return
		}
		window = parsed
	}

	stats, err := h.service.Stats(r.Context(), userID, window)
	if err != nil {
		http.Error(w, "Failed to compute stats", http.StatusInternalServerError)
		return
	}

	writeJSON(w, stats)
}

// ExportRounds handles GET /rounds/export.
func (h *RoundHandlers) ExportRounds(w http.ResponseWriter, r *http.Request) {
	userID, ok := userauth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := h.service.ExportRounds(r.Context(), userID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to export rounds", slog.Any("error", err))
		http.Error(w, "Failed to export rounds", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="rounds.xlsx"`)
	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to write export", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
