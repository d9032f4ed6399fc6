package geminiclient

import "errors"

var (
	// ErrTimeout is returned when the model does not answer within the
	// configured deadline.
	ErrTimeout = errors.New("model request timed out")

	// ErrUnavailable is returned when the model endpoint answers with a
	// server error or cannot be reached.
	ErrUnavailable = errors.New("model service unavailable")

	// ErrEmptyResponse is returned when the model answers without any text.
	ErrEmptyResponse = errors.New("model returned no content")
)
