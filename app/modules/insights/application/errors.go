package insightsservice

import "errors"

var (
	// ErrUnsupportedImage is returned when the uploaded scorecard is not a
	// jpeg, png, or gif.
	ErrUnsupportedImage = errors.New("unsupported image type")

	// ErrImageTooLarge is returned when the decoded image exceeds the upload
	// limit.
	ErrImageTooLarge = errors.New("image exceeds size limit")

	// ErrTimeout is returned when the extraction service does not answer
	// within the deadline. There is no automatic retry.
	ErrTimeout = errors.New("extraction timed out")

	// ErrServiceUnavailable is returned when the extraction service cannot
	// be reached.
	ErrServiceUnavailable = errors.New("extraction service unavailable")
)
