package courseservice

import (
	"context"
	"strings"

	"github.com/google/uuid"

	coursetypes "github.com/greenside-labs/greenside/app/modules/course/domain/types"
	coursedb "github.com/greenside-labs/greenside/app/modules/course/infrastructure/repositories"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	courses  []coursetypes.Course
	teeBoxes []coursetypes.TeeBox
	err      error
}

func (f *fakeRepo) ListCourses(ctx context.Context) ([]coursetypes.Course, error) {
	return f.courses, f.err
}

func (f *fakeRepo) SearchCourses(ctx context.Context, query string) ([]coursetypes.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []coursetypes.Course
	for _, c := range f.courses {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetCourse(ctx context.Context, courseID uuid.UUID) (*coursetypes.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.courses {
		if f.courses[i].ID == courseID {
			return &f.courses[i], nil
		}
	}
	return nil, coursedb.ErrNotFound
}

func (f *fakeRepo) ListTeeBoxes(ctx context.Context, courseID uuid.UUID) ([]coursetypes.TeeBox, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []coursetypes.TeeBox
	for _, tb := range f.teeBoxes {
		if tb.CourseID == courseID {
			out = append(out, tb)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetTeeBox(ctx context.Context, teeBoxID uuid.UUID) (*coursetypes.TeeBox, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.teeBoxes {
		if f.teeBoxes[i].ID == teeBoxID {
			return &f.teeBoxes[i], nil
		}
	}
	return nil, coursedb.ErrNotFound
}
