package roundtypes

import (
	"time"

	"github.com/google/uuid"

	scorecardtypes "github.com/greenside-labs/greenside/app/modules/scorecard/domain/types"
)

// Round is a persisted, fully reconciled round. It is created once at
// confirm time and never edited in place; the only lifecycle events are
// insert and delete.
type Round struct {
	ID             uuid.UUID                     `json:"id"`
	UserID         int64                         `json:"user_id"`
	CourseID       uuid.UUID                     `json:"course_id"`
	TeeBoxID       uuid.UUID                     `json:"tee_box_id"`
	DatePlayed     string                        `json:"date_played"`
	SubmissionType scorecardtypes.SubmissionType `json:"submission_type"`

	FrontNineScores   []int  `json:"front_nine_scores"`
	BackNineScores    []int  `json:"back_nine_scores"`
	FrontNinePutts    []int  `json:"front_nine_putts"`
	BackNinePutts     []int  `json:"back_nine_putts"`
	FrontNineFairways []bool `json:"front_nine_fairways"`
	BackNineFairways  []bool `json:"back_nine_fairways"`
	FrontNineGIR      []bool `json:"front_nine_gir"`
	BackNineGIR       []bool `json:"back_nine_gir"`

	TotalScore       int `json:"total_score"`
	TotalPutts       int `json:"total_putts"`
	TotalFairwaysHit int `json:"total_fairways_hit"`
	TotalGIR         int `json:"total_gir"`

	CreatedAt time.Time `json:"created_at"`
}

// AllScores concatenates the front and back nine score arrays.
func (r *Round) AllScores() []int {
	out := make([]int, 0, len(r.FrontNineScores)+len(r.BackNineScores))
	out = append(out, r.FrontNineScores...)
	out = append(out, r.BackNineScores...)
	return out
}

// RoundStats summarizes a set of rounds for the recent-rounds view.
type RoundStats struct {
	Rounds        int `json:"rounds"`
	AvgScore      int `json:"avg_score"`
	AvgPutts      int `json:"avg_putts"`
	GIRPercentage int `json:"gir_percentage"`
}
