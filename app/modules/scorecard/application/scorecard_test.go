package scorecardservice

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
)

func validPayload() scorecardtypes.ScorecardPayload {
	payload := scorecardtypes.ScorecardPayload{
		FrontNineScores:   []int{4, 5, 3, 4, 6, 4, 3, 5, 4},
		BackNineScores:    []int{5, 4, 3, 4, 5, 4, 4, 3, 6},
		FrontNinePutts:    []int{2, 2, 1, 2, 3, 2, 1, 2, 2},
		BackNinePutts:     []int{2, 2, 2, 1, 2, 2, 2, 1, 3},
		FrontNineFairways: []bool{true, false, false, true, false, true, false, true, true},
		BackNineFairways:  []bool{false, true, false, true, true, false, true, false, false},
		FrontNineGIR:      make([]bool, 9),
		BackNineGIR:       make([]bool, 9),
		TotalScore:        76,
		TotalPutts:        35,
		TotalFairwaysHit:  9,
		TotalGIR:          10,
		CourseID:          "course-1",
		TeeBoxID:          "tee-1",
		DatePlayed:        "2026-05-04",
		SubmissionType:    "scanned",
	}
	return payload
}

func TestSetters_SingleFieldOnly(t *testing.T) {
	card := NewScorecard()
	require.NoError(t, card.SetScore(4, intp(7)))

	for i, h := range card.Holes() {
		if i == 4 {
			require.Equal(t, 7, *h.Score)
		} else {
			require.Nil(t, h.Score)
		}
		// A score edit never back-fills siblings.
		require.Nil(t, h.Putts)
		require.Equal(t, scorecardtypes.FairwayUnset, h.Fairway)
	}
}

func TestSetters_OutOfRange(t *testing.T) {
	card := NewScorecard()
	require.ErrorIs(t, card.SetScore(-1, intp(4)), ErrHoleOutOfRange)
	require.ErrorIs(t, card.SetScore(18, intp(4)), ErrHoleOutOfRange)
	require.ErrorIs(t, card.SetPutts(42, intp(2)), ErrHoleOutOfRange)
	require.ErrorIs(t, card.SetFairway(18, scorecardtypes.FairwayHit), ErrHoleOutOfRange)
}

func TestSetters_ClearValue(t *testing.T) {
	card := NewScorecard()
	require.NoError(t, card.SetScore(0, intp(4)))
	require.NoError(t, card.SetScore(0, nil))

	holes := card.Holes()
	require.Nil(t, holes[0].Score)
}

func TestImportExtraction_MapsNines(t *testing.T) {
	card := NewScorecard()
	payload := validPayload()
	card.ImportExtraction(payload)

	holes := card.Holes()
	for i := 0; i < 9; i++ {
		require.Equal(t, payload.FrontNineScores[i], *holes[i].Score, "front hole %d", i+1)
		require.Equal(t, payload.BackNineScores[i], *holes[i+9].Score, "back hole %d", i+10)
		require.Equal(t, payload.FrontNinePutts[i], *holes[i].Putts)
		require.Equal(t, payload.BackNinePutts[i], *holes[i+9].Putts)
	}
	require.Equal(t, scorecardtypes.SubmissionScanned, card.SubmissionType())
	require.Equal(t, "course-1", card.CourseID())
	require.Equal(t, "tee-1", card.TeeBoxID())
}

func TestImportExtraction_ZeroMeansUnset(t *testing.T) {
	payload := validPayload()
	payload.FrontNineScores[2] = 0
	payload.BackNinePutts[8] = 0

	card := NewScorecard()
	card.ImportExtraction(payload)

	holes := card.Holes()
	require.Nil(t, holes[2].Score)
	require.Nil(t, holes[17].Putts)
}

func TestImportExtraction_FairwayFlagMapping(t *testing.T) {
	card := NewScorecard()
	card.ImportExtraction(validPayload())

	holes := card.Holes()
	require.Equal(t, scorecardtypes.FairwayHit, holes[0].Fairway)
	require.Equal(t, scorecardtypes.FairwayUnset, holes[1].Fairway)
}

// GIR is re-derived from score and putts, never trusted from the extraction,
// so an edit in review keeps the totals consistent.
func TestImportExtraction_GIRRederivedAfterEdit(t *testing.T) {
	payload := validPayload()
	// The service claims GIR on hole 1 even though 4-2=2 already makes it.
	payload.FrontNineGIR[0] = true

	card := NewScorecard()
	card.ImportExtraction(payload)
	before := card.Summary().GIRCount

	// User corrects hole 1 to a three-putt seven; GIR must flip off.
	require.NoError(t, card.SetScore(0, intp(7)))
	require.NoError(t, card.SetPutts(0, intp(3)))

	require.Equal(t, before-1, card.Summary().GIRCount)
}

// Re-importing a card's own confirmed output must reproduce the same holes:
// reconciliation does not alter values it didn't receive from extraction.
func TestReconciliationIdempotence(t *testing.T) {
	card := NewScorecard()
	card.ImportExtraction(validPayload())
	first := card.Holes()

	confirmed, err := card.Confirm()
	require.NoError(t, err)

	second := NewScorecard()
	second.ImportExtraction(confirmed)

	if diff := cmp.Diff(first, second.Holes()); diff != "" {
		t.Fatalf("holes changed across reconcile round-trip (-want +got):\n%s", diff)
	}
}

func TestApplyPars_Idempotent(t *testing.T) {
	pars := [18]int{4, 3, 5, 4, 4, 3, 4, 5, 4, 4, 3, 5, 4, 4, 3, 4, 5, 4}

	card := NewScorecard()
	require.NoError(t, card.SetScore(6, intp(4)))
	require.NoError(t, card.SetPutts(6, intp(2)))
	require.NoError(t, card.SetFairway(6, scorecardtypes.FairwayLeft))

	card.ApplyPars(pars)
	once := card.Holes()
	card.ApplyPars(pars)
	twice := card.Holes()

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("second par application changed the card (-want +got):\n%s", diff)
	}
	// Entered values survive par assignment.
	require.Equal(t, 4, *twice[6].Score)
	require.Equal(t, 2, *twice[6].Putts)
	require.Equal(t, scorecardtypes.FairwayLeft, twice[6].Fairway)
	require.Equal(t, 3, twice[1].Par)
	require.Equal(t, 5, twice[2].Par)
}

func TestConfirm_RequiresResolvedCourse(t *testing.T) {
	card := NewScorecard()
	card.FillAllScores(5)
	card.FillAllPutts(2)

	_, err := card.Confirm()
	require.ErrorIs(t, err, ErrCourseUnresolved)

	card.ResolveCourse("course-1", "")
	_, err = card.Confirm()
	require.ErrorIs(t, err, ErrCourseUnresolved)

	card.ResolveCourse("course-1", "tee-1")
	card.ResolveDate("2026-05-04")
	payload, err := card.Confirm()
	require.NoError(t, err)
	require.Equal(t, 90, payload.TotalScore)
	require.Equal(t, 36, payload.TotalPutts)
	require.Equal(t, "2026-05-04", payload.DatePlayed)
	require.Equal(t, string(scorecardtypes.SubmissionManual), payload.SubmissionType)
}

func TestConfirm_DerivesGIRArrays(t *testing.T) {
	card := NewScorecard()
	card.ResolveCourse("course-1", "tee-1")
	require.NoError(t, card.SetScore(0, intp(4)))
	require.NoError(t, card.SetPutts(0, intp(2)))
	require.NoError(t, card.SetScore(9, intp(6)))
	require.NoError(t, card.SetPutts(9, intp(1)))

	payload, err := card.Confirm()
	require.NoError(t, err)
	require.True(t, payload.FrontNineGIR[0])
	require.False(t, payload.BackNineGIR[0])
	require.Equal(t, 1, payload.TotalGIR)
}

func TestWarnings_PuttsExceedScore(t *testing.T) {
	card := NewScorecard()
	require.NoError(t, card.SetScore(3, intp(2)))
	require.NoError(t, card.SetPutts(3, intp(4)))

	warnings := card.Warnings()
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0], "hole 4")

	// Soft invariant only: the card still aggregates and confirms.
	card.ResolveCourse("c", "t")
	_, err := card.Confirm()
	require.NoError(t, err)
}

func TestReset_DiscardsEverything(t *testing.T) {
	card := NewScorecard()
	card.ImportExtraction(validPayload())
	card.Reset()

	require.Equal(t, scorecardtypes.RoundSummary{}, card.Summary())
	require.Empty(t, card.CourseID())
	require.Equal(t, scorecardtypes.SubmissionManual, card.SubmissionType())
	for _, h := range card.Holes() {
		require.Nil(t, h.Score)
		require.Equal(t, scorecardtypes.DefaultPar, h.Par)
	}
}
