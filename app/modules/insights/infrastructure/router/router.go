package insightsrouter

import (
	"github.com/go-chi/chi/v5"

	insightshandlers "github.com/greenside-labs/greenside/app/modules/insights/infrastructure/handlers"
)

// Routes mounts the insight endpoints.
func Routes(h *insightshandlers.InsightsHandlers) chi.Router {
	r := chi.NewRouter()
	r.Post("/chat", h.Chat)
	r.Get("/analysis", h.Analysis)
	r.Get("/trend.png", h.TrendChart)
	return r
}

// ScanRoutes mounts the scorecard scan endpoint.
func ScanRoutes(h *insightshandlers.InsightsHandlers) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Scan)
	return r
}
