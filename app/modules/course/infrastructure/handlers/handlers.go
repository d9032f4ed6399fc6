package coursehandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	courseservice "github.com/greenside-labs/greenside/app/modules/course/application"
)

// CourseHandlers handles HTTP requests for course reference data.
type CourseHandlers struct {
	service courseservice.Service
	logger  *slog.Logger
}

// NewCourseHandlers creates a new CourseHandlers instance.
func NewCourseHandlers(service courseservice.Service, logger *slog.Logger) *CourseHandlers {
	return &CourseHandlers{
		service: service,
		logger:  logger,
	}
}

// SearchCourses handles GET /courses?search=.
func (h *CourseHandlers) SearchCourses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("search")

	courses, err := h.service.SearchCourses(r.Context(), query)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to search courses", slog.Any("error", err))
		http.Error(w, "Failed to fetch courses", http.StatusInternalServerError)
		return
	}

	writeJSON(w, courses)
}

// GetCourse handles GET /courses/{courseID}.
func (h *CourseHandlers) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := uuid.Parse(chi.URLParam(r, "courseID"))
	if err != nil {
		http.Error(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	course, err := h.service.GetCourse(r.Context(), courseID)
	if errors.Is(err, courseservice.ErrNotFound) {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch course", http.StatusInternalServerError)
		return
	}

	writeJSON(w, course)
}

// ListTeeBoxes handles GET /courses/{courseID}/teeboxes.
func (h *CourseHandlers) ListTeeBoxes(w http.ResponseWriter, r *http.Request) {
	courseID, err := uuid.Parse(chi.URLParam(r, "courseID"))
	if err != nil {
		http.Error(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	teeBoxes, err := h.service.ListTeeBoxes(r.Context(), courseID)
	if errors.Is(err, courseservice.ErrInvalidTeeBoxData) {
		// Malformed reference data is a fetch error, never padded out.
		http.Error(w, "Tee box data for this course is invalid", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch tee boxes", http.StatusInternalServerError)
		return
	}

	writeJSON(w, teeBoxes)
}

// ResolvePars handles GET /teeboxes/{teeBoxID}/pars.
func (h *CourseHandlers) ResolvePars(w http.ResponseWriter, r *http.Request) {
	teeBoxID, err := uuid.Parse(chi.URLParam(r, "teeBoxID"))
	if err != nil {
		http.Error(w, "Invalid tee box ID", http.StatusBadRequest)
		return
	}

	pars, err := h.service.ResolveHolePars(r.Context(), &teeBoxID)
	if errors.Is(err, courseservice.ErrNotFound) {
		http.Error(w, "Tee box not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, courseservice.ErrInvalidTeeBoxData) {
		http.Error(w, "Tee box data is invalid", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		http.Error(w, "Failed to resolve pars", http.StatusInternalServerError)
		return
	}

	writeJSON(w, pars)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
