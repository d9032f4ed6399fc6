package roundservice

import (
	"math"

	roundtypes "github.com/greenside-labs/greenside/app/modules/round/domain/types"
	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
)

// ComputeStats aggregates a set of rounds into the recent-rounds view.
// Rounds with zero recorded putts are excluded from the putting average so a
// card entered without putt data does not drag the number down. The GIR
// percentage is taken over every hole of every round, eighteen per card.
// Averages are rounded to the nearest whole number.
func ComputeStats(rounds []roundtypes.Round) roundtypes.RoundStats {
	stats := roundtypes.RoundStats{Rounds: len(rounds)}
	if len(rounds) == 0 {
		return stats
	}

	var (
		scoreSum   int
		puttsSum   int
		puttRounds int
		girSum     int
	)
	for i := range rounds {
		scoreSum += rounds[i].TotalScore
		girSum += rounds[i].TotalGIR
		if rounds[i].TotalPutts > 0 {
			puttsSum += rounds[i].TotalPutts
			puttRounds++
		}
	}

	stats.AvgScore = roundNearest(scoreSum, len(rounds))
	if puttRounds > 0 {
		stats.AvgPutts = roundNearest(puttsSum, puttRounds)
	}
	stats.GIRPercentage = roundNearest(girSum*100, len(rounds)*scorecardtypes.HolesPerRound)
	return stats
}

func roundNearest(num, den int) int {
	return int(math.Round(float64(num) / float64(den)))
}
