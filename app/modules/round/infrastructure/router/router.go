package roundrouter

import (
	"github.com/go-chi/chi/v5"

	roundhandlers "github.com/greenside-labs/greenside/app/modules/round/infrastructure/handlers"
)

// Routes mounts the round endpoints.
func Routes(h *roundhandlers.RoundHandlers) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.SaveRound)
	r.Get("/", h.ListRounds)
	r.Get("/stats", h.Stats)
	r.Get("/export", h.ExportRounds)
	r.Get("/{roundID}", h.GetRound)
	r.Delete("/{roundID}", h.DeleteRound)
	return r
}
