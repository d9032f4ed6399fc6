package scorecardtypes

// HolesPerRound is the fixed number of holes in a tracked round.
const HolesPerRound = 18

// HolesPerNine is the fixed length of every front/back nine array.
const HolesPerNine = 9

// DefaultPar is assumed for every hole until a tee box is selected.
const DefaultPar = 4

// FairwayOutcome records where the tee shot landed relative to the fairway.
// It is tracked for every hole; par 3s carry it too, the layer above decides
// whether to show it.
type FairwayOutcome string

const (
	FairwayUnset FairwayOutcome = ""
	FairwayHit   FairwayOutcome = "hit"
	FairwayLeft  FairwayOutcome = "left"
	FairwayRight FairwayOutcome = "right"
)

// GIRStatus is the tri-state result of the green-in-regulation rule.
type GIRStatus int8

const (
	GIRUnknown GIRStatus = iota
	GIRMissed
	GIRMade
)

func (g GIRStatus) String() string {
	switch g {
	case GIRMade:
		return "made"
	case GIRMissed:
		return "missed"
	default:
		return "unknown"
	}
}

// HoleRecord is one hole of an in-progress round. Score and Putts are nil
// until the player enters them.
type HoleRecord struct {
	HoleNumber int            `json:"hole_number"`
	Score      *int           `json:"score"`
	Putts      *int           `json:"putts"`
	Fairway    FairwayOutcome `json:"fairway"`
	Par        int            `json:"par"`
}

// RoundSummary is a pure projection over the 18 hole records; it is
// recomputed on every change and never stored.
type RoundSummary struct {
	TotalScore  int `json:"total_score"`
	TotalPutts  int `json:"total_putts"`
	FairwaysHit int `json:"fairways_hit"`
	GIRCount    int `json:"gir_count"`
}

// SubmissionType distinguishes how a round entered the system.
type SubmissionType string

const (
	SubmissionManual  SubmissionType = "manual"
	SubmissionScanned SubmissionType = "scanned"
)

// ScorecardPayload is the shape the extraction service must return. It is
// only constructed after the validator accepts the raw response.
type ScorecardPayload struct {
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

	// The extraction service leaves these empty when it cannot read them;
	// empty values trigger the interactive resolution step.
	CourseID       string `json:"course_id"`
	TeeBoxID       string `json:"tee_box_id"`
	CourseName     string `json:"course_name,omitempty"`
	TeeBoxName     string `json:"tee_box_name,omitempty"`
	DatePlayed     string `json:"date_played"`
	SubmissionType string `json:"submission_type"`
}
