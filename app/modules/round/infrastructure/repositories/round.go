package rounddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	roundtypes "github.com/greenside-labs/greenside/app/modules/round/domain/types"
	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
)

// ErrNotFound is returned when a round is absent or owned by someone else.
var ErrNotFound = errors.New("round not found")

// RoundDBImpl is the concrete implementation of the Repository interface
// using bun.
type RoundDBImpl struct {
	DB *bun.DB
}

// NewRoundDB creates a bun-backed round repository.
func NewRoundDB(db *bun.DB) *RoundDBImpl {
	return &RoundDBImpl{DB: db}
}

// CreateRound inserts a new round and fills in the generated ID.
func (db *RoundDBImpl) CreateRound(ctx context.Context, round *roundtypes.Round) error {
	model := toModel(round)
	err := db.DB.NewInsert().
		Model(model).
		ExcludeColumn("id").
		Returning("id").
		Scan(ctx, &model.ID)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to create round", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create round: %w", err)
	}
	round.ID = model.ID
	slog.InfoContext(ctx, "Round created successfully in DB", slog.String("round_id", round.ID.String()))
	return nil
}

// GetRound retrieves a specific round by ID.
func (db *RoundDBImpl) GetRound(ctx context.Context, roundID uuid.UUID) (*roundtypes.Round, error) {
	model := new(Round)
	err := db.DB.NewSelect().
		Model(model).
		Where("id = ?", roundID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch round: %w", err)
	}
	round := fromModel(model)
	return &round, nil
}

// ListRoundsByUser returns a user's rounds, most recent first.
func (db *RoundDBImpl) ListRoundsByUser(ctx context.Context, userID int64) ([]roundtypes.Round, error) {
	var models []Round
	err := db.DB.NewSelect().
		Model(&models).
		Where("user_id = ?", userID).
		Order("date_played DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rounds: %w", err)
	}

	rounds := make([]roundtypes.Round, 0, len(models))
	for i := range models {
		rounds = append(rounds, fromModel(&models[i]))
	}
	return rounds, nil
}

// DeleteRound removes a round, scoped to its owner so one user cannot delete
// another's data.
func (db *RoundDBImpl) DeleteRound(ctx context.Context, roundID uuid.UUID, userID int64) error {
	res, err := db.DB.NewDelete().
		Model((*Round)(nil)).
		Where("id = ?", roundID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete round: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	slog.InfoContext(ctx, "Round deleted", slog.String("round_id", roundID.String()), slog.Int64("user_id", userID))
	return nil
}

func toModel(r *roundtypes.Round) *Round {
	return &Round{
		ID:                r.ID,
		UserID:            r.UserID,
		CourseID:          r.CourseID,
		TeeBoxID:          r.TeeBoxID,
		DatePlayed:        r.DatePlayed,
		SubmissionType:    string(r.SubmissionType),
		FrontNineScores:   r.FrontNineScores,
		BackNineScores:    r.BackNineScores,
		FrontNinePutts:    r.FrontNinePutts,
		BackNinePutts:     r.BackNinePutts,
		FrontNineFairways: r.FrontNineFairways,
		BackNineFairways:  r.BackNineFairways,
		FrontNineGIR:      r.FrontNineGIR,
		BackNineGIR:       r.BackNineGIR,
		TotalScore:        r.TotalScore,
		TotalPutts:        r.TotalPutts,
		TotalFairwaysHit:  r.TotalFairwaysHit,
		TotalGIR:          r.TotalGIR,
		CreatedAt:         r.CreatedAt,
	}
}

func fromModel(m *Round) roundtypes.Round {
	return roundtypes.Round{
		ID:                m.ID,
		UserID:            m.UserID,
		CourseID:          m.CourseID,
		TeeBoxID:          m.TeeBoxID,
		DatePlayed:        m.DatePlayed,
		SubmissionType:    scorecardtypes.SubmissionType(m.SubmissionType),
		FrontNineScores:   m.FrontNineScores,
		BackNineScores:    m.BackNineScores,
		FrontNinePutts:    m.FrontNinePutts,
		BackNinePutts:     m.BackNinePutts,
		FrontNineFairways: m.FrontNineFairways,
		BackNineFairways:  m.BackNineFairways,
		FrontNineGIR:      m.FrontNineGIR,
		BackNineGIR:       m.BackNineGIR,
		TotalScore:        m.TotalScore,
		TotalPutts:        m.TotalPutts,
		TotalFairwaysHit:  m.TotalFairwaysHit,
		TotalGIR:          m.TotalGIR,
		CreatedAt:         m.CreatedAt,
	}
}
