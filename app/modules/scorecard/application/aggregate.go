package scorecardservice

import (
	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
)

// Summarize derives the round totals from the hole records. Unset scores and
// putts contribute zero so a partially entered round still shows a running
// total. The recompute is always total; with a fixed bound of 18 holes there
// is nothing to gain from incremental updates.
func Summarize(holes []scorecardtypes.HoleRecord) scorecardtypes.RoundSummary {
	var summary scorecardtypes.RoundSummary
	for _, h := range holes {
		if h.Score != nil {
			summary.TotalScore += *h.Score
		}
		if h.Putts != nil {
			summary.TotalPutts += *h.Putts
		}
		if h.Fairway == scorecardtypes.FairwayHit {
			summary.FairwaysHit++
		}
		if CalculateGIR(h.Score, h.Putts) == scorecardtypes.GIRMade {
			summary.GIRCount++
		}
	}
	return summary
}

// Percentage renders a count as a whole percentage of 18 holes. The
// denominator is always 18, not holes completed, so in-progress rounds
// understate performance; that presentation choice is carried intentionally.
func Percentage(count int) int {
	return int(float64(count) / float64(scorecardtypes.HolesPerRound) * 100)
}
