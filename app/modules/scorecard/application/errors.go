package scorecardservice

import "errors"

var (
	// ErrInvalidShape is returned when an extraction payload is missing a
	// required field or carries a wrong-length nine array.
	ErrInvalidShape = errors.New("extraction payload has invalid shape")

	// ErrMalformedResponse is returned when the extraction service response
	// cannot be parsed as JSON at all.
	ErrMalformedResponse = errors.New("extraction response is not parseable")

	// ErrHoleOutOfRange is returned for a hole index outside 0..17.
	ErrHoleOutOfRange = errors.New("hole index out of range")

	// ErrCourseUnresolved is returned when a round is confirmed before both
	// a course and a tee box are known.
	ErrCourseUnresolved = errors.New("course and tee box must be resolved before confirming")
)
