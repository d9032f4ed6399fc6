package coursedb

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Course is the bun model for the golf_courses table.
type Course struct {
	bun.BaseModel `bun:"table:golf_courses,alias:c"`

	ID    uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name  string    `bun:"name,notnull"`
	City  string    `bun:"city,nullzero"`
	State string    `bun:"state,nullzero"`
}

// TeeBox is the bun model for the tee_boxes table. The nine arrays are
// stored as jsonb.
type TeeBox struct {
	bun.BaseModel `bun:"table:tee_boxes,alias:tb"`

	ID                uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	CourseID          uuid.UUID `bun:"course_id,notnull,type:uuid"`
	TeeName           string    `bun:"tee_name,notnull"`
	FrontNinePar      []int     `bun:"front_nine_par,type:jsonb"`
	BackNinePar       []int     `bun:"back_nine_par,type:jsonb"`
	FrontNineDistance []int     `bun:"front_nine_distance,type:jsonb"`
	BackNineDistance  []int     `bun:"back_nine_distance,type:jsonb"`
	Slope             int       `bun:"slope,nullzero"`
	Rating            float64   `bun:"rating,nullzero"`
	TotalDistance     int       `bun:"total_distance,nullzero"`
}
