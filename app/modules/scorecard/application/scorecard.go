package scorecardservice

import (
	"fmt"

	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
)

// Scorecard is the single canonical hole store for an in-progress round.
// All three entry surfaces write through it: manual typing and the tap picker
// via the single-field setters, the extraction import via ImportExtraction.
// The aggregator always reads the latest state, so an edit applied after an
// import is visible in the next summary.
//
// One Scorecard has one owner and is never shared between goroutines.
type Scorecard struct {
	holes [scorecardtypes.HolesPerRound]scorecardtypes.HoleRecord

	courseID   string
	teeBoxID   string
	datePlayed string
	submission scorecardtypes.SubmissionType
}

// NewScorecard returns an empty card: all scores and putts unset, every
// fairway unset, every hole at the default par of 4.
func NewScorecard() *Scorecard {
	card := &Scorecard{submission: scorecardtypes.SubmissionManual}
	for i := range card.holes {
		card.holes[i] = scorecardtypes.HoleRecord{
			HoleNumber: i + 1,
			Par:        scorecardtypes.DefaultPar,
		}
	}
	return card
}

// Holes returns a copy of the 18 hole records in order.
func (c *Scorecard) Holes() []scorecardtypes.HoleRecord {
	out := make([]scorecardtypes.HoleRecord, scorecardtypes.HolesPerRound)
	copy(out, c.holes[:])
	return out
}

// Hole returns a copy of one hole record.
func (c *Scorecard) Hole(idx int) (scorecardtypes.HoleRecord, error) {
	if idx < 0 || idx >= scorecardtypes.HolesPerRound {
		return scorecardtypes.HoleRecord{}, fmt.Errorf("%w: %d", ErrHoleOutOfRange, idx)
	}
	return c.holes[idx], nil
}

// SetScore sets the score on one hole. A nil value clears it. No sibling
// field is ever inferred or back-filled.
func (c *Scorecard) SetScore(idx int, score *int) error {
	if idx < 0 || idx >= scorecardtypes.HolesPerRound {
		return fmt.Errorf("%w: %d", ErrHoleOutOfRange, idx)
	}
	c.holes[idx].Score = cloneInt(score)
	return nil
}

// SetPutts sets the putt count on one hole. A nil value clears it.
func (c *Scorecard) SetPutts(idx int, putts *int) error {
	if idx < 0 || idx >= scorecardtypes.HolesPerRound {
		return fmt.Errorf("%w: %d", ErrHoleOutOfRange, idx)
	}
	c.holes[idx].Putts = cloneInt(putts)
	return nil
}

// SetFairway sets the fairway outcome on one hole.
func (c *Scorecard) SetFairway(idx int, outcome scorecardtypes.FairwayOutcome) error {
	if idx < 0 || idx >= scorecardtypes.HolesPerRound {
		return fmt.Errorf("%w: %d", ErrHoleOutOfRange, idx)
	}
	c.holes[idx].Fairway = outcome
	return nil
}

// FillAllPutts overwrites the putt count on all 18 holes. Convenience only;
// it does not consult par.
func (c *Scorecard) FillAllPutts(putts int) {
	for i := range c.holes {
		c.holes[i].Putts = cloneInt(&putts)
	}
}

// FillAllScores overwrites the score on all 18 holes. Like FillAllPutts it
// applies a flat value regardless of each hole's par.
func (c *Scorecard) FillAllScores(score int) {
	for i := range c.holes {
		c.holes[i].Score = cloneInt(&score)
	}
}

// ApplyPars layers per-hole par onto the card. Par is contextual metadata;
// re-applying pars, including after a tee-box change, never touches entered
// scores, putts, or fairway outcomes.
func (c *Scorecard) ApplyPars(pars [scorecardtypes.HolesPerRound]int) {
	for i := range c.holes {
		c.holes[i].Par = pars[i]
	}
}

// ImportExtraction replaces the card's hole data with a validated extraction
// payload. Front nine array position i maps to hole i, back nine position i
// to hole i+9. A zero score or putt count from the extraction means the
// service could not read the cell and stays unset. Boolean fairway flags map
// to hit/unset; the extraction has no miss direction to offer.
//
// The payload's own GIR flags are not copied onto the holes: GIR is always
// re-derived from score and putts so it stays consistent once the user edits
// a hole in review.
func (c *Scorecard) ImportExtraction(payload scorecardtypes.ScorecardPayload) {
	for i := 0; i < scorecardtypes.HolesPerRound; i++ {
		var score, putts int
		var fairway bool
		if i < scorecardtypes.HolesPerNine {
			score = payload.FrontNineScores[i]
			putts = payload.FrontNinePutts[i]
			fairway = payload.FrontNineFairways[i]
		} else {
			score = payload.BackNineScores[i-scorecardtypes.HolesPerNine]
			putts = payload.BackNinePutts[i-scorecardtypes.HolesPerNine]
			fairway = payload.BackNineFairways[i-scorecardtypes.HolesPerNine]
		}

		hole := &c.holes[i]
		hole.Score = nil
		hole.Putts = nil
		hole.Fairway = scorecardtypes.FairwayUnset
		if score > 0 {
			hole.Score = cloneInt(&score)
		}
		if putts > 0 {
			hole.Putts = cloneInt(&putts)
		}
		if fairway {
			hole.Fairway = scorecardtypes.FairwayHit
		}
	}

	c.courseID = payload.CourseID
	c.teeBoxID = payload.TeeBoxID
	c.datePlayed = payload.DatePlayed
	c.submission = scorecardtypes.SubmissionScanned
}

// ResolveCourse records the course and tee box chosen in the interactive
// resolution step (or confirmed from extraction metadata).
func (c *Scorecard) ResolveCourse(courseID, teeBoxID string) {
	c.courseID = courseID
	c.teeBoxID = teeBoxID
}

// ResolveDate records the played date, already normalized to YYYY-MM-DD.
func (c *Scorecard) ResolveDate(datePlayed string) {
	c.datePlayed = datePlayed
}

// CourseID returns the resolved course id, empty until resolved.
func (c *Scorecard) CourseID() string { return c.courseID }

// TeeBoxID returns the resolved tee box id, empty until resolved.
func (c *Scorecard) TeeBoxID() string { return c.teeBoxID }

// DatePlayed returns the resolved date, empty until resolved.
func (c *Scorecard) DatePlayed() string { return c.datePlayed }

// SubmissionType reports how the card was populated.
func (c *Scorecard) SubmissionType() scorecardtypes.SubmissionType { return c.submission }

// Summary recomputes the round totals from the current hole state.
func (c *Scorecard) Summary() scorecardtypes.RoundSummary {
	return Summarize(c.holes[:])
}

// Warnings reports soft inconsistencies the card tolerates but review should
// surface, currently holes where putts exceed the total score. Recording
// errors like this appear on real scorecards, so they warn instead of block.
func (c *Scorecard) Warnings() []string {
	var warnings []string
	for _, h := range c.holes {
		if h.Score != nil && h.Putts != nil && *h.Putts > *h.Score {
			warnings = append(warnings,
				fmt.Sprintf("hole %d: %d putts exceed a score of %d", h.HoleNumber, *h.Putts, *h.Score))
		}
	}
	return warnings
}

// Confirm freezes the card into the front/back arrays a Round carries.
// It fails while the course or tee box is unresolved; nothing is partially
// produced on failure.
func (c *Scorecard) Confirm() (scorecardtypes.ScorecardPayload, error) {
	if c.courseID == "" || c.teeBoxID == "" {
		return scorecardtypes.ScorecardPayload{}, ErrCourseUnresolved
	}

	payload := scorecardtypes.ScorecardPayload{
		FrontNineScores:   make([]int, scorecardtypes.HolesPerNine),
		BackNineScores:    make([]int, scorecardtypes.HolesPerNine),
		FrontNinePutts:    make([]int, scorecardtypes.HolesPerNine),
		BackNinePutts:     make([]int, scorecardtypes.HolesPerNine),
		FrontNineFairways: make([]bool, scorecardtypes.HolesPerNine),
		BackNineFairways:  make([]bool, scorecardtypes.HolesPerNine),
		FrontNineGIR:      make([]bool, scorecardtypes.HolesPerNine),
		BackNineGIR:       make([]bool, scorecardtypes.HolesPerNine),
		CourseID:          c.courseID,
		TeeBoxID:          c.teeBoxID,
		DatePlayed:        c.datePlayed,
		SubmissionType:    string(c.submission),
	}

	for i, h := range c.holes {
		score, putts := 0, 0
		if h.Score != nil {
			score = *h.Score
		}
		if h.Putts != nil {
			putts = *h.Putts
		}
		gir := CalculateGIR(h.Score, h.Putts) == scorecardtypes.GIRMade
		fairway := h.Fairway == scorecardtypes.FairwayHit

		if i < scorecardtypes.HolesPerNine {
			payload.FrontNineScores[i] = score
			payload.FrontNinePutts[i] = putts
			payload.FrontNineFairways[i] = fairway
			payload.FrontNineGIR[i] = gir
		} else {
			j := i - scorecardtypes.HolesPerNine
			payload.BackNineScores[j] = score
			payload.BackNinePutts[j] = putts
			payload.BackNineFairways[j] = fairway
			payload.BackNineGIR[j] = gir
		}
	}

	summary := c.Summary()
	payload.TotalScore = summary.TotalScore
	payload.TotalPutts = summary.TotalPutts
	payload.TotalFairwaysHit = summary.FairwaysHit
	payload.TotalGIR = summary.GIRCount

	return payload, nil
}

// Reset discards all in-progress state, as when the user switches entry mode
// or retries an upload. There is no draft persistence.
func (c *Scorecard) Reset() {
	*c = *NewScorecard()
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
