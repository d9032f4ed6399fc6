package insightsservice

import (
	"context"
	"fmt"
	"strings"

	roundtypes "github.com/greenside-labs/greenside/app/modules/round/domain/types"
	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
)

// analysisWindow is how many rounds each comparison bucket holds.
const analysisWindow = 5

// PerformanceStats is the numeric core of the analysis narrative. Everything
// here is computed locally; the model only turns it into prose.
type PerformanceStats struct {
	RecentRounds     int     `json:"recent_rounds"`
	RecentAvgScore   float64 `json:"recent_avg_score"`
	PreviousRounds   int     `json:"previous_rounds"`
	PreviousAvgScore float64 `json:"previous_avg_score"`
	RecentAvgPutts   float64 `json:"recent_avg_putts"`
	RecentGIRPercent float64 `json:"recent_gir_percent"`
	Par3Average      float64 `json:"par3_average"`
	Par4Average      float64 `json:"par4_average"`
	Par5Average      float64 `json:"par5_average"`
	Trend            string  `json:"trend"`
}

// standardPar assumes the common layout when tee box data is not at hand:
// par 3 on holes 3, 6, 12, and 15, par 5 on holes 5, 9, 14, and 18.
func standardPar(hole int) int {
	switch hole {
	case 3, 6, 12, 15:
		return 3
	case 5, 9, 14, 18:
		return 5
	default:
		return scorecardtypes.DefaultPar
	}
}

// ComputePerformanceStats compares the most recent rounds against the bucket
// before them. Rounds are expected most recent first. Holes recorded as zero
// are skipped in the per-par averages.
func ComputePerformanceStats(rounds []roundtypes.Round) PerformanceStats {
	recent := rounds
	if len(recent) > analysisWindow {
		recent = recent[:analysisWindow]
	}
	var previous []roundtypes.Round
	if len(rounds) > analysisWindow {
		previous = rounds[analysisWindow:]
		if len(previous) > analysisWindow {
			previous = previous[:analysisWindow]
		}
	}

	stats := PerformanceStats{
		RecentRounds:   len(recent),
		PreviousRounds: len(previous),
		Trend:          "steady",
	}
	if len(recent) == 0 {
		return stats
	}

	var scoreSum, puttsSum, puttRounds, girSum int
	parSums := map[int]int{3: 0, 4: 0, 5: 0}
	parCounts := map[int]int{3: 0, 4: 0, 5: 0}
	for i := range recent {
		scoreSum += recent[i].TotalScore
		girSum += recent[i].TotalGIR
		if recent[i].TotalPutts > 0 {
			puttsSum += recent[i].TotalPutts
			puttRounds++
		}
		for hole, score := range recent[i].AllScores() {
			if score == 0 {
				continue
			}
			par := standardPar(hole + 1)
			parSums[par] += score
			parCounts[par]++
		}
	}

	stats.RecentAvgScore = float64(scoreSum) / float64(len(recent))
	if puttRounds > 0 {
		stats.RecentAvgPutts = float64(puttsSum) / float64(puttRounds)
	}
	stats.RecentGIRPercent = float64(girSum) * 100 / float64(len(recent)*scorecardtypes.HolesPerRound)
	if parCounts[3] > 0 {
		stats.Par3Average = float64(parSums[3]) / float64(parCounts[3])
	}
	if parCounts[4] > 0 {
		stats.Par4Average = float64(parSums[4]) / float64(parCounts[4])
	}
	if parCounts[5] > 0 {
		stats.Par5Average = float64(parSums[5]) / float64(parCounts[5])
	}

	if len(previous) > 0 {
		var prevSum int
		for i := range previous {
			prevSum += previous[i].TotalScore
		}
		stats.PreviousAvgScore = float64(prevSum) / float64(len(previous))

		switch {
		case stats.RecentAvgScore < stats.PreviousAvgScore-0.5:
			stats.Trend = "improving"
		case stats.RecentAvgScore > stats.PreviousAvgScore+0.5:
			stats.Trend = "declining"
		}
	}
	return stats
}

func buildAnalysisPrompt(stats PerformanceStats) string {
	var b strings.Builder
	b.WriteString("You are a golf coach reviewing a player's recent performance. Write a short, encouraging analysis (3-5 sentences) of these numbers. Mention the score trend and one concrete area to work on.\n\n")
	fmt.Fprintf(&b, "Recent rounds: %d, average score %.1f\n", stats.RecentRounds, stats.RecentAvgScore)
	if stats.PreviousRounds > 0 {
		fmt.Fprintf(&b, "Previous %d rounds averaged %.1f (trend: %s)\n", stats.PreviousRounds, stats.PreviousAvgScore, stats.Trend)
	}
	if stats.RecentAvgPutts > 0 {
		fmt.Fprintf(&b, "Average putts per round: %.1f\n", stats.RecentAvgPutts)
	}
	fmt.Fprintf(&b, "Greens in regulation: %.1f%%\n", stats.RecentGIRPercent)
	if stats.Par3Average > 0 {
		fmt.Fprintf(&b, "Par 3 scoring average: %.2f\n", stats.Par3Average)
	}
	if stats.Par4Average > 0 {
		fmt.Fprintf(&b, "Par 4 scoring average: %.2f\n", stats.Par4Average)
	}
	if stats.Par5Average > 0 {
		fmt.Fprintf(&b, "Par 5 scoring average: %.2f\n", stats.Par5Average)
	}
	return b.String()
}

// Analyze computes the performance numbers locally and asks the model for the
// narrative.
func (s *InsightsService) Analyze(ctx context.Context, userID int64) (string, error) {
	rounds, err := s.rounds.ListRounds(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("analyze: %w", err)
	}
	if len(rounds) == 0 {
		return "No rounds recorded yet. Play a round and come back for an analysis.", nil
	}

	answer, err := s.client.GenerateText(ctx, s.chatModel, buildAnalysisPrompt(ComputePerformanceStats(rounds)))
	if err != nil {
		return "", s.mapModelError(ctx, err)
	}
	return answer, nil
}
