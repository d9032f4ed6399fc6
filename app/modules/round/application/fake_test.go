package roundservice

import (
	"context"

	"github.com/google/uuid"

	courseservice "github.com/greenside-labs/greenside/app/modules/course/application"
	coursetypes "github.com/greenside-labs/greenside/app/modules/course/domain/types"
	roundtypes "github.com/greenside-labs/greenside/app/modules/round/domain/types"
	rounddb "github.com/greenside-labs/greenside/app/modules/round/infrastructure/repositories"
	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	rounds []roundtypes.Round
	err    error
}

func (f *fakeRepo) CreateRound(ctx context.Context, round *roundtypes.Round) error {
	if f.err != nil {
		return f.err
	}
	round.ID = uuid.New()
	f.rounds = append(f.rounds, *round)
	return nil
}

func (f *fakeRepo) GetRound(ctx context.Context, roundID uuid.UUID) (*roundtypes.Round, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.rounds {
		if f.rounds[i].ID == roundID {
			return &f.rounds[i], nil
		}
	}
	return nil, rounddb.ErrNotFound
}

func (f *fakeRepo) ListRoundsByUser(ctx context.Context, userID int64) ([]roundtypes.Round, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []roundtypes.Round
	for _, r := range f.rounds {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) DeleteRound(ctx context.Context, roundID uuid.UUID, userID int64) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.rounds {
		if f.rounds[i].ID == roundID && f.rounds[i].UserID == userID {
			f.rounds = append(f.rounds[:i], f.rounds[i+1:]...)
			return nil
		}
	}
	return rounddb.ErrNotFound
}

// fakeCourses answers course and tee box lookups from fixed sets of known IDs.
type fakeCourses struct {
	courseIDs map[uuid.UUID]bool
	teeBoxIDs map[uuid.UUID]bool
}

func (f *fakeCourses) SearchCourses(ctx context.Context, query string) ([]coursetypes.Course, error) {
	return nil, nil
}

func (f *fakeCourses) GetCourse(ctx context.Context, courseID uuid.UUID) (*coursetypes.Course, error) {
	if !f.courseIDs[courseID] {
		return nil, courseservice.ErrNotFound
	}
	return &coursetypes.Course{ID: courseID}, nil
}

func (f *fakeCourses) ListTeeBoxes(ctx context.Context, courseID uuid.UUID) ([]coursetypes.TeeBox, error) {
	return nil, nil
}

func (f *fakeCourses) ResolveHolePars(ctx context.Context, teeBoxID *uuid.UUID) ([scorecardtypes.HolesPerRound]int, error) {
	if teeBoxID == nil || !f.teeBoxIDs[*teeBoxID] {
		return [scorecardtypes.HolesPerRound]int{}, courseservice.ErrNotFound
	}
	var pars [scorecardtypes.HolesPerRound]int
	for i := range pars {
		pars[i] = scorecardtypes.DefaultPar
	}
	return pars, nil
}
