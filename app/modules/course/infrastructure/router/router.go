package courserouter

import (
	"github.com/go-chi/chi/v5"

	coursehandlers "github.com/greenside-labs/greenside/app/modules/course/infrastructure/handlers"
)

// Routes mounts the course endpoints.
func Routes(h *coursehandlers.CourseHandlers) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.SearchCourses)
	r.Get("/{courseID}", h.GetCourse)
	r.Get("/{courseID}/teeboxes", h.ListTeeBoxes)
	return r
}

// TeeBoxRoutes mounts the tee-box endpoints.
func TeeBoxRoutes(h *coursehandlers.CourseHandlers) chi.Router {
	r := chi.NewRouter()
	r.Get("/{teeBoxID}/pars", h.ResolvePars)
	return r
}
