package courseservice

import "errors"

var (
	// ErrInvalidTeeBoxData is returned when a tee box's par arrays are not
	// exactly nine entries each. Bad reference data is a fetch error, never
	// silently padded.
	ErrInvalidTeeBoxData = errors.New("tee box par arrays must have exactly nine entries")

	// ErrNotFound is returned when a referenced course or tee box is absent
	// from the store.
	ErrNotFound = errors.New("course or tee box not found")
)
