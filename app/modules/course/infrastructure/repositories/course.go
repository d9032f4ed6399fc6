package coursedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	coursetypes "github.com/greenside-labs/greenside/app/modules/course/domain/types"
)

// ErrNotFound is returned when a course or tee box does not exist.
var ErrNotFound = errors.New("course record not found")

// CourseDBImpl is the concrete implementation of the Repository interface
// using bun.
type CourseDBImpl struct {
	DB *bun.DB
}

// NewCourseDB creates a bun-backed course repository.
func NewCourseDB(db *bun.DB) *CourseDBImpl {
	return &CourseDBImpl{DB: db}
}

// ListCourses returns all courses ordered by name.
func (db *CourseDBImpl) ListCourses(ctx context.Context) ([]coursetypes.Course, error) {
	var models []Course
	err := db.DB.NewSelect().
		Model(&models).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}
	return toCourses(models), nil
}

// SearchCourses returns courses whose name contains the query,
// case-insensitive. An empty query returns everything.
func (db *CourseDBImpl) SearchCourses(ctx context.Context, query string) ([]coursetypes.Course, error) {
	var models []Course
	q := db.DB.NewSelect().Model(&models).Order("name ASC")
	if query != "" {
		q = q.Where("name ILIKE ?", "%"+query+"%")
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to search courses: %w", err)
	}
	slog.DebugContext(ctx, "Course search executed",
		slog.String("query", query),
		slog.Int("matches", len(models)),
	)
	return toCourses(models), nil
}

// GetCourse retrieves a single course by ID.
func (db *CourseDBImpl) GetCourse(ctx context.Context, courseID uuid.UUID) (*coursetypes.Course, error) {
	model := new(Course)
	err := db.DB.NewSelect().
		Model(model).
		Where("id = ?", courseID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course: %w", err)
	}
	course := toCourse(*model)
	return &course, nil
}

// ListTeeBoxes returns all tee boxes for a course.
func (db *CourseDBImpl) ListTeeBoxes(ctx context.Context, courseID uuid.UUID) ([]coursetypes.TeeBox, error) {
	var models []TeeBox
	err := db.DB.NewSelect().
		Model(&models).
		Where("course_id = ?", courseID).
		Order("tee_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tee boxes: %w", err)
	}

	out := make([]coursetypes.TeeBox, 0, len(models))
	for _, m := range models {
		out = append(out, toTeeBox(m))
	}
	return out, nil
}

// GetTeeBox retrieves a single tee box by ID.
func (db *CourseDBImpl) GetTeeBox(ctx context.Context, teeBoxID uuid.UUID) (*coursetypes.TeeBox, error) {
	model := new(TeeBox)
	err := db.DB.NewSelect().
		Model(model).
		Where("id = ?", teeBoxID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tee box: %w", err)
	}
	teeBox := toTeeBox(*model)
	return &teeBox, nil
}

func toCourses(models []Course) []coursetypes.Course {
	out := make([]coursetypes.Course, 0, len(models))
	for _, m := range models {
		out = append(out, toCourse(m))
	}
	return out
}

func toCourse(m Course) coursetypes.Course {
	return coursetypes.Course{
		ID:    m.ID,
		Name:  m.Name,
		City:  m.City,
		State: m.State,
	}
}

func toTeeBox(m TeeBox) coursetypes.TeeBox {
	return coursetypes.TeeBox{
		ID:                m.ID,
		CourseID:          m.CourseID,
		TeeName:           m.TeeName,
		FrontNinePar:      m.FrontNinePar,
		BackNinePar:       m.BackNinePar,
		FrontNineDistance: m.FrontNineDistance,
		BackNineDistance:  m.BackNineDistance,
		Slope:             m.Slope,
		Rating:            m.Rating,
		TotalDistance:     m.TotalDistance,
	}
}
