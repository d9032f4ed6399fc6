package userrouter

import (
	"github.com/go-chi/chi/v5"

	userhandlers "github.com/greenside-labs/greenside/app/modules/user/infrastructure/handlers"
)

// Routes mounts the user endpoints.
func Routes(h *userhandlers.UserHandlers) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Me)
	return r
}
