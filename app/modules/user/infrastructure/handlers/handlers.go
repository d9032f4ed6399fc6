package userhandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	userservice "github.com/greenside-labs/greenside/app/modules/user/application"
	userauth "github.com/greenside-labs/greenside/app/modules/user/infrastructure/auth"
)

// UserHandlers handles HTTP requests for user profiles.
type UserHandlers struct {
	service userservice.Service
	logger  *slog.Logger
}

// NewUserHandlers creates a new UserHandlers instance.
func NewUserHandlers(service userservice.Service, logger *slog.Logger) *UserHandlers {
	return &UserHandlers{
		service: service,
		logger:  logger,
	}
}

// Me handles GET /me.
func (h *UserHandlers) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := userauth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if errors.Is(err, userservice.ErrNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to fetch user", slog.Any("error", err))
		http.Error(w, "Failed to fetch user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(user); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
