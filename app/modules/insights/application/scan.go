package insightsservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	geminiclient "github.com/greenside-labs/greenside/app/modules/insights/infrastructure/gemini"
	scorecardservice "github.com/greenside-labs/greenside/app/modules/scorecard/application"
	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
)

// maxImageBytes is the decoded upload limit for scorecard photos.
const maxImageBytes = 10 << 20

var supportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

const scanPrompt = `You are reading a photo of a golf scorecard. Extract the data and respond with a single JSON object and nothing else, using exactly these keys:
"front_nine_scores", "back_nine_scores", "front_nine_putts", "back_nine_putts", "front_nine_fairways", "back_nine_fairways", "front_nine_gir", "back_nine_gir", "course_id", "tee_box_id", "course_name", "tee_box_name", "date_played", "submission_type", "total_score", "total_putts", "total_fairways_hit", "total_gir".
Each of the eight nine-hole keys must be an array of exactly 9 entries, front nine first. Scores and putts are integers; use 0 for any hole you cannot read. Fairways and greens-in-regulation are booleans; use false when unreadable. Use "" for course_id and tee_box_id, the printed course name for course_name if visible, the date on the card for date_played, and "scanned" for submission_type. Compute the four totals from the values you extracted.`

// ScanScorecard runs the uploaded image through the extraction model and
// validates the response into a scorecard payload. A payload coming back from
// here still carries model-derived values only; GIR is re-derived locally
// when the payload is imported into a working scorecard.
func (s *InsightsService) ScanScorecard(ctx context.Context, image []byte, mimeType string) (scorecardtypes.ScorecardPayload, error) {
	s.metrics.RecordScanAttempt()

	if !supportedImageTypes[mimeType] {
		s.metrics.RecordScanFailure("unsupported_image")
		return scorecardtypes.ScorecardPayload{}, fmt.Errorf("%w: %s", ErrUnsupportedImage, mimeType)
	}
	if len(image) > maxImageBytes {
		s.metrics.RecordScanFailure("image_too_large")
		return scorecardtypes.ScorecardPayload{}, ErrImageTooLarge
	}

	start := time.Now()
	text, err := s.client.GenerateFromImage(ctx, s.scanModel, scanPrompt, mimeType, image)
	s.metrics.RecordScanDuration(time.Since(start))
	if err != nil {
		return scorecardtypes.ScorecardPayload{}, s.mapModelError(ctx, err)
	}

	payload, err := scorecardservice.ParseExtractionResponse(text)
	if err != nil {
		reason := "malformed_response"
		if errors.Is(err, scorecardservice.ErrInvalidShape) {
			reason = "invalid_shape"
		}
		s.metrics.RecordScanFailure(reason)
		s.logger.ErrorContext(ctx, "Extraction response rejected",
			slog.String("reason", reason),
			slog.Any("error", err),
		)
		return scorecardtypes.ScorecardPayload{}, err
	}

	// The model writes dates in whatever format the card shows. Sorting and
	// charting downstream assume YYYY-MM-DD, so canonicalize here; an empty
	// date stays empty and triggers interactive resolution.
	if payload.DatePlayed != "" {
		payload.DatePlayed = scorecardservice.NormalizeDatePlayed(payload.DatePlayed, time.Now())
	}

	s.logger.InfoContext(ctx, "Scorecard extracted",
		slog.String("course_name", payload.CourseName),
		slog.String("date_played", payload.DatePlayed),
	)
	return payload, nil
}

func (s *InsightsService) mapModelError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, geminiclient.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		s.metrics.RecordScanFailure("timeout")
		return ErrTimeout
	case errors.Is(err, geminiclient.ErrUnavailable):
		s.metrics.RecordScanFailure("unavailable")
		return ErrServiceUnavailable
	default:
		s.metrics.RecordScanFailure("model_error")
		s.logger.ErrorContext(ctx, "Extraction request failed", slog.Any("error", err))
		return fmt.Errorf("extraction failed: %w", err)
	}
}
