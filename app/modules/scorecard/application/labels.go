package scorecardservice

import "fmt"

// ScoreLabel names a score relative to par, as shown on the tap-entry number
// grid. Outside the named range it falls back to a signed offset.
func ScoreLabel(score, par int) string {
	if par <= 0 {
		return fmt.Sprintf("%d", score)
	}
	switch score - par {
	case -4:
		return "Condor"
	case -3:
		return "Albatross"
	case -2:
		return "Eagle"
	case -1:
		return "Birdie"
	case 0:
		return "Par"
	case 1:
		return "Bogey"
	case 2:
		return "Double"
	case 3:
		return "Triple"
	case 4:
		return "Quad"
	}
	if diff := score - par; diff > 0 {
		return fmt.Sprintf("+%d", diff)
	}
	return fmt.Sprintf("%d", score-par)
}
