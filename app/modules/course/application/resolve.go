package courseservice

import (
	"fmt"

	coursetypes "github.com/greenside-labs/greenside/app/modules/course/domain/types"
	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
)

// DefaultPars returns the par array used before a tee box is selected: every
// hole at 4. The tap-entry grid uses this for its "equals par" highlighting.
func DefaultPars() [scorecardtypes.HolesPerRound]int {
	var pars [scorecardtypes.HolesPerRound]int
	for i := range pars {
		pars[i] = scorecardtypes.DefaultPar
	}
	return pars
}

// ResolvePars flattens a tee box's front and back nine par arrays into one
// 18-hole array. A nil tee box yields the defaults. Par is contextual
// metadata only; callers layer it onto a scorecard without touching entered
// values.
func ResolvePars(teeBox *coursetypes.TeeBox) ([scorecardtypes.HolesPerRound]int, error) {
	if teeBox == nil {
		return DefaultPars(), nil
	}

	var pars [scorecardtypes.HolesPerRound]int
	if len(teeBox.FrontNinePar) != scorecardtypes.HolesPerNine ||
		len(teeBox.BackNinePar) != scorecardtypes.HolesPerNine {
		return pars, fmt.Errorf("%w: tee box %s has %d/%d",
			ErrInvalidTeeBoxData, teeBox.ID, len(teeBox.FrontNinePar), len(teeBox.BackNinePar))
	}

	copy(pars[:scorecardtypes.HolesPerNine], teeBox.FrontNinePar)
	copy(pars[scorecardtypes.HolesPerNine:], teeBox.BackNinePar)
	return pars, nil
}
