package scorecardservice

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func payloadJSON(t *testing.T, mutate func(m map[string]any)) string {
	t.Helper()
	m := map[string]any{
		"front_nine_scores":   []int{4, 5, 3, 4, 6, 4, 3, 5, 4},
		"back_nine_scores":    []int{5, 4, 3, 4, 5, 4, 4, 3, 6},
		"front_nine_putts":    []int{2, 2, 1, 2, 3, 2, 1, 2, 2},
		"back_nine_putts":     []int{2, 2, 2, 1, 2, 2, 2, 1, 3},
		"front_nine_fairways": []bool{true, false, false, true, false, true, false, true, true},
		"back_nine_fairways":  []bool{false, true, false, true, true, false, true, false, false},
		"front_nine_gir":      []bool{true, false, true, true, false, true, true, false, true},
		"back_nine_gir":       []bool{false, true, true, true, false, true, false, true, false},
		"total_score":         76,
		"total_putts":         35,
		"total_fairways_hit":  9,
		"total_gir":           10,
		"course_id":           "",
		"tee_box_id":          "",
		"date_played":         "",
		"submission_type":     "scanned",
	}
	if mutate != nil {
		mutate(m)
	}
	data, err := json.Marshal(m)
	require.NoError(t, err)
	return string(data)
}

func TestParseExtractionResponse_Accepts(t *testing.T) {
	// Empty course/tee/date strings are valid; they trigger interactive
	// resolution, not rejection.
	payload, err := ParseExtractionResponse(payloadJSON(t, nil))
	require.NoError(t, err)
	require.Equal(t, 76, payload.TotalScore)
	require.Empty(t, payload.CourseID)
	require.Len(t, payload.FrontNineScores, 9)
}

func TestParseExtractionResponse_ProseWrapped(t *testing.T) {
	text := "Here is the extracted scorecard data:\n```json\n" + payloadJSON(t, nil) + "\n```\nLet me know if anything looks off."
	payload, err := ParseExtractionResponse(text)
	require.NoError(t, err)
	require.Equal(t, 35, payload.TotalPutts)
}

func TestParseExtractionResponse_MissingKeys(t *testing.T) {
	for _, field := range append(append([]string{}, requiredArrayFields...), requiredScalarFields...) {
		t.Run("missing "+field, func(t *testing.T) {
			text := payloadJSON(t, func(m map[string]any) { delete(m, field) })
			_, err := ParseExtractionResponse(text)
			require.ErrorIs(t, err, ErrInvalidShape)
		})
	}
}

func TestParseExtractionResponse_WrongLengthArrays(t *testing.T) {
	for _, n := range []int{8, 10} {
		t.Run(fmt.Sprintf("back nine of %d", n), func(t *testing.T) {
			text := payloadJSON(t, func(m map[string]any) {
				scores := make([]int, n)
				for i := range scores {
					scores[i] = 4
				}
				m["back_nine_scores"] = scores
			})
			_, err := ParseExtractionResponse(text)
			require.ErrorIs(t, err, ErrInvalidShape)
		})
	}
}

func TestParseExtractionResponse_NotAnArray(t *testing.T) {
	text := payloadJSON(t, func(m map[string]any) { m["front_nine_putts"] = "2,2,2" })
	_, err := ParseExtractionResponse(text)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestParseExtractionResponse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "no json at all", text: "I could not read this scorecard, sorry."},
		{name: "unbalanced braces", text: `{"front_nine_scores": [1,2,3`},
		{name: "empty", text: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExtractionResponse(tt.text)
			require.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestExtractJSONObject_BraceInString(t *testing.T) {
	text := `noise {"course_id": "The {Back} Nine Club", "x": 1} trailing`
	object, err := ExtractJSONObject(text)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(object), &m))
	require.Equal(t, "The {Back} Nine Club", m["course_id"])
}

func TestExtractJSONObject_QuotedBraceInProse(t *testing.T) {
	// A brace inside the leading prose must not anchor the match.
	text := `I was asked to respond with "{" followed by the data: {"a": 1} done`
	object, err := ExtractJSONObject(text)
	require.NoError(t, err)
	require.JSONEq(t, `{"a": 1}`, object)
}

func TestExtractJSONObject_SkipsInvalidCandidate(t *testing.T) {
	text := `{not json} but {"a": 1} is`
	object, err := ExtractJSONObject(text)
	require.NoError(t, err)
	require.JSONEq(t, `{"a": 1}`, object)
}

// Out-of-range values pass validation untouched; human review is the range
// check by design.
func TestParseExtractionResponse_NoRangeChecks(t *testing.T) {
	text := payloadJSON(t, func(m map[string]any) {
		m["front_nine_scores"] = []int{99, 5, 3, 4, 6, 4, 3, 5, 4}
	})
	payload, err := ParseExtractionResponse(text)
	require.NoError(t, err)
	require.Equal(t, 99, payload.FrontNineScores[0])
}
