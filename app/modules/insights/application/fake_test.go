package insightsservice

import (
	"context"

	"github.com/google/uuid"

	roundservice "github.com/greenside-labs/greenside/app/modules/round/application"
	roundtypes "github.com/greenside-labs/greenside/app/modules/round/domain/types"
	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
	"github.com/greenside-labs/greenside/app/shared/results"
)

// fakeModel is a canned-response model client for service tests.
type fakeModel struct {
	response   string
	err        error
	lastPrompt string
	lastMime   string
	lastImage  []byte
	calls      int
}

func (f *fakeModel) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.response, f.err
}

func (f *fakeModel) GenerateFromImage(ctx context.Context, model, prompt, mimeType string, image []byte) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastMime = mimeType
	f.lastImage = image
	return f.response, f.err
}

// fakeRounds serves a fixed round history.
type fakeRounds struct {
	rounds []roundtypes.Round
	err    error
}

func (f *fakeRounds) SaveRound(ctx context.Context, userID int64, payload scorecardtypes.ScorecardPayload) (results.OperationResult[roundtypes.Round, roundservice.SaveRoundFailure], error) {
	return results.OperationResult[roundtypes.Round, roundservice.SaveRoundFailure]{}, nil
}

func (f *fakeRounds) ListRounds(ctx context.Context, userID int64) ([]roundtypes.Round, error) {
	return f.rounds, f.err
}

func (f *fakeRounds) GetRound(ctx context.Context, userID int64, roundID uuid.UUID) (*roundtypes.Round, error) {
	return nil, roundservice.ErrNotFound
}

func (f *fakeRounds) DeleteRound(ctx context.Context, userID int64, roundID uuid.UUID) error {
	return nil
}

func (f *fakeRounds) Stats(ctx context.Context, userID int64, window int) (roundtypes.RoundStats, error) {
	return roundtypes.RoundStats{}, nil
}

func (f *fakeRounds) ExportRounds(ctx context.Context, userID int64) ([]byte, error) {
	return nil, nil
}
