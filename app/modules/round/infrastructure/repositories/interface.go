package rounddb

import (
	"context"

	"github.com/google/uuid"

	roundtypes "github.com/greenside-labs/greenside/app/modules/round/domain/types"
)

// Repository defines the store operations for rounds. The surface is the
// generic one the application relies on: insert, query by owner, delete by
// id and owner. Rounds are never updated in place.
type Repository interface {
	CreateRound(ctx context.Context, round *roundtypes.Round) error
	GetRound(ctx context.Context, roundID uuid.UUID) (*roundtypes.Round, error)
	ListRoundsByUser(ctx context.Context, userID int64) ([]roundtypes.Round, error)
	DeleteRound(ctx context.Context, roundID uuid.UUID, userID int64) error
}
