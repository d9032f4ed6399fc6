package scorecardservice

import (
	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
)

// CalculateGIR evaluates the green-in-regulation rule for one hole.
//
// The rule is score - putts <= 2: the player reached the green with enough
// strokes left for a standard two-putt. It is deliberately independent of the
// hole's actual par; the same threshold applies on a par 3 and a par 5.
// Unknown is returned while either value is still unset, and an unknown hole
// counts toward neither made nor missed.
func CalculateGIR(score, putts *int) scorecardtypes.GIRStatus {
	if score == nil || putts == nil {
		return scorecardtypes.GIRUnknown
	}
	if *score-*putts <= 2 {
		return scorecardtypes.GIRMade
	}
	return scorecardtypes.GIRMissed
}
