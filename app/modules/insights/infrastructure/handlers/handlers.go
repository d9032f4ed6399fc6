package insightshandlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	insightsservice "github.com/greenside-labs/greenside/app/modules/insights/application"
	scorecardservice "github.com/greenside-labs/greenside/app/modules/scorecard/application"
	userauth "github.com/greenside-labs/greenside/app/modules/user/infrastructure/auth"
)

// InsightsHandlers handles HTTP requests for scanning, chat, and analysis.
type InsightsHandlers struct {
	service insightsservice.Service
	logger  *slog.Logger
}

// NewInsightsHandlers creates a new InsightsHandlers instance.
func NewInsightsHandlers(service insightsservice.Service, logger *slog.Logger) *InsightsHandlers {
	return &InsightsHandlers{
		service: service,
		logger:  logger,
	}
}

type scanRequest struct {
	Image    string `json:"image"`
	MimeType string `json:"mime_type"`
}

// Scan handles POST /scan. The image arrives base64-encoded in JSON.
func (h *InsightsHandlers) Scan(w http.ResponseWriter, r *http.Request) {
	if _, ok := userauth.UserIDFromContext(r.Context()); !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		http.Error(w, "Image is not valid base64", http.StatusBadRequest)
		return
	}

	payload, err := h.service.ScanScorecard(r.Context(), image, req.MimeType)
	switch {
	case errors.Is(err, insightsservice.ErrUnsupportedImage),
		errors.Is(err, insightsservice.ErrImageTooLarge):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, insightsservice.ErrTimeout):
		http.Error(w, "Scan timed out, try again", http.StatusGatewayTimeout)
		return
	case errors.Is(err, insightsservice.ErrServiceUnavailable):
		http.Error(w, "Scan service unavailable", http.StatusBadGateway)
		return
	case errors.Is(err, scorecardservice.ErrMalformedResponse),
		errors.Is(err, scorecardservice.ErrInvalidShape):
		http.Error(w, "Could not read a scorecard from this image", http.StatusUnprocessableEntity)
		return
	case err != nil:
		h.logger.ErrorContext(r.Context(), "Scan failed", slog.Any("error", err))
		http.Error(w, "Scan failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, payload)
}

type chatRequest struct {
	Question string `json:"question"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

// Chat handles POST /insights/chat.
func (h *InsightsHandlers) Chat(w http.ResponseWriter, r *http.Request) {
	userID, ok := userauth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == "" {
		http.Error(w, "Question is required", http.StatusBadRequest)
		return
	}

	answer, err := h.service.Chat(r.Context(), userID, req.Question)
	if err != nil {
		h.writeModelError(w, r, err, "Chat failed")
		return
	}

	writeJSON(w, chatResponse{Answer: answer})
}

// Analysis handles GET /insights/analysis.
func (h *InsightsHandlers) Analysis(w http.ResponseWriter, r *http.Request) {
	userID, ok := userauth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	narrative, err := h.service.Analyze(r.Context(), userID)
	if err != nil {
		h.writeModelError(w, r, err, "Analysis failed")
		return
	}

	writeJSON(w, chatResponse{Answer: narrative})
}

// TrendChart handles GET /insights/trend.png.
func (h *InsightsHandlers) TrendChart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userauth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	data, err := h.service.ScoreTrendChart(r.Context(), userID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to render trend chart", slog.Any("error", err))
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to write chart", slog.Any("error", err))
	}
}

func (h *InsightsHandlers) writeModelError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, insightsservice.ErrTimeout):
		http.Error(w, "The model timed out, try again", http.StatusGatewayTimeout)
	case errors.Is(err, insightsservice.ErrServiceUnavailable):
		http.Error(w, "The model is unavailable", http.StatusBadGateway)
	default:
		h.logger.ErrorContext(r.Context(), fallback, slog.Any("error", err))
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
