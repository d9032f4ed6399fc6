package roundhandlers

import (
	"context"

	"github.com/google/uuid"

	roundservice "github.com/greenside-labs/greenside/app/modules/round/application"
	roundtypes "github.com/greenside-labs/greenside/app/modules/round/domain/types"
	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
	"github.com/greenside-labs/greenside/app/shared/results"
)

// fakeService is a canned-response round service for handler tests.
type fakeService struct {
	saveResult results.OperationResult[roundtypes.Round, roundservice.SaveRoundFailure]
	saveErr    error
	rounds     []roundtypes.Round
	round      *roundtypes.Round
	stats      roundtypes.RoundStats
	export     []byte
	err        error

	deletedID uuid.UUID
}

func (f *fakeService) SaveRound(ctx context.Context, userID int64, payload scorecardtypes.ScorecardPayload) (results.OperationResult[roundtypes.Round, roundservice.SaveRoundFailure], error) {
	return f.saveResult, f.saveErr
}

func (f *fakeService) ListRounds(ctx context.Context, userID int64) ([]roundtypes.Round, error) {
	return f.rounds, f.err
}

func (f *fakeService) GetRound(ctx context.Context, userID int64, roundID uuid.UUID) (*roundtypes.Round, error) {
	if f.round == nil && f.err == nil {
		return nil, roundservice.ErrNotFound
	}
	return f.round, f.err
}

func (f *fakeService) DeleteRound(ctx context.Context, userID int64, roundID uuid.UUID) error {
	f.deletedID = roundID
	return f.err
}

func (f *fakeService) Stats(ctx context.Context, userID int64, window int) (roundtypes.RoundStats, error) {
	return f.stats, f.err
}

func (f *fakeService) ExportRounds(ctx context.Context, userID int64) ([]byte, error) {
	return f.export, f.err
}
