package courseservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	coursetypes "github.com/greenside-labs/greenside/app/modules/course/domain/types"
	coursedb "github.com/greenside-labs/greenside/app/modules/course/infrastructure/repositories"
	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
)

// Service exposes course reference data to the rest of the application.
type Service interface {
	SearchCourses(ctx context.Context, query string) ([]coursetypes.Course, error)
	GetCourse(ctx context.Context, courseID uuid.UUID) (*coursetypes.Course, error)
	ListTeeBoxes(ctx context.Context, courseID uuid.UUID) ([]coursetypes.TeeBox, error)
	ResolveHolePars(ctx context.Context, teeBoxID *uuid.UUID) ([scorecardtypes.HolesPerRound]int, error)
}

// CourseService implements the Service interface.
type CourseService struct {
	repo   coursedb.Repository
	logger *slog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(repo coursedb.Repository, logger *slog.Logger) *CourseService {
	return &CourseService{
		repo:   repo,
		logger: logger,
	}
}

// SearchCourses searches courses by case-insensitive name substring. This is
// the backing query of the interactive resolution step when an extraction
// comes back without a recognizable course name.
func (s *CourseService) SearchCourses(ctx context.Context, query string) ([]coursetypes.Course, error) {
	courses, err := s.repo.SearchCourses(ctx, query)
	if err != nil {
		s.logger.ErrorContext(ctx, "Course search failed",
			slog.String("query", query),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("search courses: %w", err)
	}
	return courses, nil
}

// GetCourse fetches one course.
func (s *CourseService) GetCourse(ctx context.Context, courseID uuid.UUID) (*coursetypes.Course, error) {
	course, err := s.repo.GetCourse(ctx, courseID)
	if errors.Is(err, coursedb.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	return course, nil
}

// ListTeeBoxes lists the tee boxes of a course, validating the par arrays of
// each. A tee box with malformed reference data fails the whole fetch rather
// than surfacing a padded or truncated card.
func (s *CourseService) ListTeeBoxes(ctx context.Context, courseID uuid.UUID) ([]coursetypes.TeeBox, error) {
	teeBoxes, err := s.repo.ListTeeBoxes(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list tee boxes: %w", err)
	}

	for i := range teeBoxes {
		if _, err := ResolvePars(&teeBoxes[i]); err != nil {
			s.logger.ErrorContext(ctx, "Tee box has malformed par data",
				slog.String("tee_box_id", teeBoxes[i].ID.String()),
				slog.String("course_id", courseID.String()),
			)
			return nil, err
		}
	}
	return teeBoxes, nil
}

// ResolveHolePars supplies the per-hole par array for a tee box selection.
// A nil teeBoxID means no selection and yields the all-fours default.
func (s *CourseService) ResolveHolePars(ctx context.Context, teeBoxID *uuid.UUID) ([scorecardtypes.HolesPerRound]int, error) {
	if teeBoxID == nil {
		return DefaultPars(), nil
	}

	teeBox, err := s.repo.GetTeeBox(ctx, *teeBoxID)
	if errors.Is(err, coursedb.ErrNotFound) {
		return DefaultPars(), ErrNotFound
	}
	if err != nil {
		return DefaultPars(), fmt.Errorf("get tee box: %w", err)
	}

	return ResolvePars(teeBox)
}
