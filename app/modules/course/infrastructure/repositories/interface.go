package coursedb

import (
	"context"

	"github.com/google/uuid"

	coursetypes "github.com/greenside-labs/greenside/app/modules/course/domain/types"
)

// Repository defines the read-only store operations for course reference data.
type Repository interface {
	ListCourses(ctx context.Context) ([]coursetypes.Course, error)
	SearchCourses(ctx context.Context, query string) ([]coursetypes.Course, error)
	GetCourse(ctx context.Context, courseID uuid.UUID) (*coursetypes.Course, error)
	ListTeeBoxes(ctx context.Context, courseID uuid.UUID) ([]coursetypes.TeeBox, error)
	GetTeeBox(ctx context.Context, teeBoxID uuid.UUID) (*coursetypes.TeeBox, error)
}
