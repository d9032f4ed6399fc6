package rounddb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Round is the bun model for the rounds table. The per-nine arrays are
// stored as jsonb, the four totals as plain integers, all computed before
// the single insert.
type Round struct {
	bun.BaseModel `bun:"table:rounds,alias:r"`

	ID             uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	UserID         int64     `bun:"user_id,notnull"`
	CourseID       uuid.UUID `bun:"course_id,notnull,type:uuid"`
	TeeBoxID       uuid.UUID `bun:"tee_box_id,notnull,type:uuid"`
	DatePlayed     string    `bun:"date_played,notnull"`
	SubmissionType string    `bun:"submission_type,notnull"`

	FrontNineScores   []int  `bun:"front_nine_scores,type:jsonb"`
	BackNineScores    []int  `bun:"back_nine_scores,type:jsonb"`
	FrontNinePutts    []int  `bun:"front_nine_putts,type:jsonb"`
	BackNinePutts     []int  `bun:"back_nine_putts,type:jsonb"`
	FrontNineFairways []bool `bun:"front_nine_fairways,type:jsonb"`
	BackNineFairways  []bool `bun:"back_nine_fairways,type:jsonb"`
	FrontNineGIR      []bool `bun:"front_nine_gir,type:jsonb"`
	BackNineGIR       []bool `bun:"back_nine_gir,type:jsonb"`

	TotalScore       int `bun:"total_score,notnull"`
	TotalPutts       int `bun:"total_putts,notnull"`
	TotalFairwaysHit int `bun:"total_fairways_hit,notnull"`
	TotalGIR         int `bun:"total_gir,notnull"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
