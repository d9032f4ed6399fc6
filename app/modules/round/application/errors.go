package roundservice

import "errors"

var (
	// ErrNotFound is returned when a round does not exist or belongs to a
	// different user.
	ErrNotFound = errors.New("round not found")

	// ErrIncompletePayload is returned when a scorecard payload is missing
	// its per-nine arrays.
	ErrIncompletePayload = errors.New("scorecard payload is incomplete")
)
