package roundservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	courseservice "github.com/greenside-labs/greenside/app/modules/course/application"
	roundtypes "github.com/greenside-labs/greenside/app/modules/round/domain/types"
	rounddb "github.com/greenside-labs/greenside/app/modules/round/infrastructure/repositories"
	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
	"github.com/greenside-labs/greenside/app/shared/results"
	scorecardmetrics "github.com/greenside-labs/greenside/app/shared/scorecardmetrics"
)

// SaveRoundFailure describes why a confirmed scorecard was rejected before
// any row was written.
type SaveRoundFailure struct {
	Reason string `json:"reason"`
}

// Service owns the round lifecycle: persisting confirmed scorecards, listing
// and deleting a user's rounds, and the projections built on top of them.
type Service interface {
	SaveRound(ctx context.Context, userID int64, payload scorecardtypes.ScorecardPayload) (results.OperationResult[roundtypes.Round, SaveRoundFailure], error)
	ListRounds(ctx context.Context, userID int64) ([]roundtypes.Round, error)
	GetRound(ctx context.Context, userID int64, roundID uuid.UUID) (*roundtypes.Round, error)
	DeleteRound(ctx context.Context, userID int64, roundID uuid.UUID) error
	Stats(ctx context.Context, userID int64, window int) (roundtypes.RoundStats, error)
	ExportRounds(ctx context.Context, userID int64) ([]byte, error)
}

// RoundService implements the Service interface.
type RoundService struct {
	repo    rounddb.Repository
	courses courseservice.Service
	logger  *slog.Logger
	metrics scorecardmetrics.Metrics
}

// NewRoundService creates a new RoundService.
func NewRoundService(repo rounddb.Repository, courses courseservice.Service, logger *slog.Logger, metrics scorecardmetrics.Metrics) *RoundService {
	return &RoundService{
		repo:    repo,
		courses: courses,
		logger:  logger,
		metrics: metrics,
	}
}

// SaveRound persists a confirmed scorecard as a new round. The payload is
// checked against course reference data first; nothing is written unless the
// whole round can be written.
func (s *RoundService) SaveRound(ctx context.Context, userID int64, payload scorecardtypes.ScorecardPayload) (results.OperationResult[roundtypes.Round, SaveRoundFailure], error) {
	if err := checkPayloadArrays(payload); err != nil {
		return results.FailureResult[roundtypes.Round](SaveRoundFailure{Reason: err.Error()}), nil
	}

	courseID, err := uuid.Parse(payload.CourseID)
	if err != nil {
		return results.FailureResult[roundtypes.Round](SaveRoundFailure{Reason: "course is not resolved"}), nil
	}
	teeBoxID, err := uuid.Parse(payload.TeeBoxID)
	if err != nil {
		return results.FailureResult[roundtypes.Round](SaveRoundFailure{Reason: "tee box is not resolved"}), nil
	}

	if _, err := s.courses.GetCourse(ctx, courseID); err != nil {
		if errors.Is(err, courseservice.ErrNotFound) {
			return results.FailureResult[roundtypes.Round](SaveRoundFailure{Reason: "course does not exist"}), nil
		}
		return results.OperationResult[roundtypes.Round, SaveRoundFailure]{}, fmt.Errorf("verify course: %w", err)
	}
	if _, err := s.courses.ResolveHolePars(ctx, &teeBoxID); err != nil {
		if errors.Is(err, courseservice.ErrNotFound) {
			return results.FailureResult[roundtypes.Round](SaveRoundFailure{Reason: "tee box does not exist"}), nil
		}
		return results.OperationResult[roundtypes.Round, SaveRoundFailure]{}, fmt.Errorf("verify tee box: %w", err)
	}

	round := roundtypes.Round{
		UserID:            userID,
		CourseID:          courseID,
		TeeBoxID:          teeBoxID,
		DatePlayed:        payload.DatePlayed,
		SubmissionType:    scorecardtypes.SubmissionType(payload.SubmissionType),
		FrontNineScores:   payload.FrontNineScores,
		BackNineScores:    payload.BackNineScores,
		FrontNinePutts:    payload.FrontNinePutts,
		BackNinePutts:     payload.BackNinePutts,
		FrontNineFairways: payload.FrontNineFairways,
		BackNineFairways:  payload.BackNineFairways,
		FrontNineGIR:      payload.FrontNineGIR,
		BackNineGIR:       payload.BackNineGIR,
		TotalScore:        payload.TotalScore,
		TotalPutts:        payload.TotalPutts,
		TotalFairwaysHit:  payload.TotalFairwaysHit,
		TotalGIR:          payload.TotalGIR,
	}

	if err := s.repo.CreateRound(ctx, &round); err != nil {
		return results.OperationResult[roundtypes.Round, SaveRoundFailure]{}, fmt.Errorf("save round: %w", err)
	}

	s.metrics.RecordRoundSaved(payload.SubmissionType)
	s.logger.InfoContext(ctx, "Round saved",
		slog.String("round_id", round.ID.String()),
		slog.Int64("user_id", userID),
		slog.String("submission_type", payload.SubmissionType),
	)
	return results.SuccessResult[roundtypes.Round, SaveRoundFailure](round), nil
}

// ListRounds returns all of a user's rounds, most recent first.
func (s *RoundService) ListRounds(ctx context.Context, userID int64) ([]roundtypes.Round, error) {
	rounds, err := s.repo.ListRoundsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	return rounds, nil
}

// GetRound fetches a single round, scoped to its owner.
func (s *RoundService) GetRound(ctx context.Context, userID int64, roundID uuid.UUID) (*roundtypes.Round, error) {
	round, err := s.repo.GetRound(ctx, roundID)
	if errors.Is(err, rounddb.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get round: %w", err)
	}
	if round.UserID != userID {
		return nil, ErrNotFound
	}
	return round, nil
}

// DeleteRound removes a round owned by the user.
func (s *RoundService) DeleteRound(ctx context.Context, userID int64, roundID uuid.UUID) error {
	err := s.repo.DeleteRound(ctx, roundID, userID)
	if errors.Is(err, rounddb.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete round: %w", err)
	}
	s.metrics.RecordRoundDeleted()
	return nil
}

// Stats computes averages over the user's most recent rounds. A window of
// zero or less means all rounds.
func (s *RoundService) Stats(ctx context.Context, userID int64, window int) (roundtypes.RoundStats, error) {
	rounds, err := s.repo.ListRoundsByUser(ctx, userID)
	if err != nil {
		return roundtypes.RoundStats{}, fmt.Errorf("stats: %w", err)
	}
	if window > 0 && len(rounds) > window {
		rounds = rounds[:window]
	}
	return ComputeStats(rounds), nil
}

func checkPayloadArrays(p scorecardtypes.ScorecardPayload) error {
	lengths := map[string]int{
		"front_nine_scores":   len(p.FrontNineScores),
		"back_nine_scores":    len(p.BackNineScores),
		"front_nine_putts":    len(p.FrontNinePutts),
		"back_nine_putts":     len(p.BackNinePutts),
		"front_nine_fairways": len(p.FrontNineFairways),
		"back_nine_fairways":  len(p.BackNineFairways),
		"front_nine_gir":      len(p.FrontNineGIR),
		"back_nine_gir":       len(p.BackNineGIR),
	}
	for field, n := range lengths {
		if n != scorecardtypes.HolesPerNine {
			return fmt.Errorf("%w: %s has %d entries", ErrIncompletePayload, field, n)
		}
	}
	return nil
}
