package insightsservice

import (
	"context"
	"log/slog"

	geminiclient "github.com/greenside-labs/greenside/app/modules/insights/infrastructure/gemini"
	roundservice "github.com/greenside-labs/greenside/app/modules/round/application"
	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
	scorecardmetrics "github.com/greenside-labs/greenside/app/shared/scorecardmetrics"
)

// Service covers the model-backed features: scorecard extraction, chat, and
// the performance analysis narrative, plus the score-trend chart.
type Service interface {
	ScanScorecard(ctx context.Context, image []byte, mimeType string) (scorecardtypes.ScorecardPayload, error)
	Chat(ctx context.Context, userID int64, question string) (string, error)
	Analyze(ctx context.Context, userID int64) (string, error)
	ScoreTrendChart(ctx context.Context, userID int64) ([]byte, error)
}

// InsightsService implements the Service interface.
type InsightsService struct {
	client    geminiclient.Client
	rounds    roundservice.Service
	logger    *slog.Logger
	metrics   scorecardmetrics.Metrics
	scanModel string
	chatModel string
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(client geminiclient.Client, rounds roundservice.Service, logger *slog.Logger, metrics scorecardmetrics.Metrics, scanModel, chatModel string) *InsightsService {
	return &InsightsService{
		client:    client,
		rounds:    rounds,
		logger:    logger,
		metrics:   metrics,
		scanModel: scanModel,
		chatModel: chatModel,
	}
}
