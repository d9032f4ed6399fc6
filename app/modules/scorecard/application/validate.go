package scorecardservice

import (
	"encoding/json"
	"fmt"
	"strings"

	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
)

var requiredArrayFields = []string{
	"front_nine_scores",
	"back_nine_scores",
	"front_nine_putts",
	"back_nine_putts",
	"front_nine_fairways",
	"back_nine_fairways",
	"front_nine_gir",
	"back_nine_gir",
}

var requiredScalarFields = []string{
	"total_score",
	"total_putts",
	"total_fairways_hit",
	"total_gir",
	"course_id",
	"tee_box_id",
	"date_played",
	"submission_type",
}

// ExtractJSONObject isolates the first valid top-level {...} object from the
// raw extraction response, which may wrap the JSON in prose. Every opening
// brace is a candidate anchor, so a quoted brace in the surrounding prose
// cannot mis-anchor the match; the first candidate that balances and parses
// as JSON wins.
func ExtractJSONObject(text string) (string, error) {
	for offset := 0; offset < len(text); {
		idx := strings.IndexByte(text[offset:], '{')
		if idx < 0 {
			break
		}
		start := offset + idx
		if candidate, ok := matchBraces(text[start:]); ok && json.Valid([]byte(candidate)) {
			return candidate, nil
		}
		offset = start + 1
	}

	return "", fmt.Errorf("%w: no JSON object found in response", ErrMalformedResponse)
}

// matchBraces returns the balanced {...} prefix of s. String literals are
// honored so braces inside values do not unbalance the match.
func matchBraces(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false

	for i, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}

	return "", false
}

// ParseExtractionResponse turns the raw extraction response text into a
// validated ScorecardPayload. Parse failures are malformed responses; shape
// failures are invalid shapes. Value ranges are deliberately not checked,
// out-of-range values are left for human review.
func ParseExtractionResponse(text string) (scorecardtypes.ScorecardPayload, error) {
	var payload scorecardtypes.ScorecardPayload

	object, err := ExtractJSONObject(text)
	if err != nil {
		return payload, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(object), &raw); err != nil {
		return payload, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if err := validateShape(raw); err != nil {
		return payload, err
	}

	if err := json.Unmarshal([]byte(object), &payload); err != nil {
		return payload, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	return payload, nil
}

// validateShape checks field presence and nine-array lengths. The key must
// exist for every required scalar; empty strings for course/tee/date are
// acceptable and trigger the interactive resolution step downstream.
func validateShape(raw map[string]json.RawMessage) error {
	for _, field := range requiredArrayFields {
		msg, ok := raw[field]
		if !ok {
			return fmt.Errorf("%w: missing array %q", ErrInvalidShape, field)
		}
		var arr []json.RawMessage
		if err := json.Unmarshal(msg, &arr); err != nil {
			return fmt.Errorf("%w: field %q is not an array", ErrInvalidShape, field)
		}
		if len(arr) != scorecardtypes.HolesPerNine {
			return fmt.Errorf("%w: array %q has length %d, want %d",
				ErrInvalidShape, field, len(arr), scorecardtypes.HolesPerNine)
		}
	}

	for _, field := range requiredScalarFields {
		if _, ok := raw[field]; !ok {
			return fmt.Errorf("%w: missing field %q", ErrInvalidShape, field)
		}
	}

	return nil
}
