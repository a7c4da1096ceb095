package dto

type ItemOutput struct {
	PCID        int64
	CourseID    int64
	TermID      int64
	TermCode    string
	CourseCode  string
	Title       string
	Credits     float64
	Recommended bool
}

type PlanOutput struct {
	PlanID       int64
	TotalCredits float64
	Terms        []string
	Items        []ItemOutput
}

type CourseOutput struct {
	ID      int64
	Code    string
	Title   string
	Credits float64
}

type MissingPrereqOutput struct {
	CourseID int64
	Code     string
	Title    string
}

// AddCourseInput leaves TermID zero to use the configured default term.
type AddCourseInput struct {
	PlanID   int64 `json:"plan_id" validate:"gt=0"`
	CourseID int64 `json:"course_id" validate:"gt=0"`
	TermID   int64 `json:"term_id" validate:"gte=0"`
}

type AddCourseOutput struct {
	PCID   int64
	TermID int64
}

type RemoveInput struct {
	PCID int64 `json:"pc_id" validate:"gt=0"`
}

type RecommendationsInput struct {
	StudentID int64
	PlanID    int64
}

type MissingPrereqsInput struct {
	StudentID int64 `json:"stu_id" validate:"gt=0"`
	CourseID  int64 `json:"course_id" validate:"gt=0"`
}
