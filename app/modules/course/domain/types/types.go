package coursetypes

import "github.com/google/uuid"

// Course is read-only reference data describing a golf course.
type Course struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	City  string    `json:"city"`
	State string    `json:"state"`
}

// TeeBox is one playable configuration of a course. Every nine array must
// have exactly nine entries; anything else is bad reference data and is
// rejected at fetch time, never padded.
type TeeBox struct {
	ID                uuid.UUID `json:"id"`
	CourseID          uuid.UUID `json:"course_id"`
	TeeName           string    `json:"tee_name"`
	FrontNinePar      []int     `json:"front_nine_par"`
	BackNinePar       []int     `json:"back_nine_par"`
	FrontNineDistance []int     `json:"front_nine_distance"`
	BackNineDistance  []int     `json:"back_nine_distance"`
	Slope             int       `json:"slope"`
	Rating            float64   `json:"rating"`
	TotalDistance     int       `json:"total_distance"`
}
