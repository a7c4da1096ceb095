package dto

type CompletedCourseOutput struct {
	EnrollID int64
	CourseID int64
	Code     string
	Title    string
	Credits  float64
	Grade    string
	TermCode string
	ClassNum string
}

type SummaryOutput struct {
	TotalCredits float64
	GPA          float64
	GPAText      string
	Standing     string
}

type UpdateGradeInput struct {
	StudentID int64  `json:"stu_id" validate:"gt=0"`
	EnrollID  int64  `json:"enroll_id" validate:"gt=0"`
	Grade     string `json:"grade" validate:"required,oneof=A A- B+ B B- C+ C C- D F P NP"`
}

type RemoveInput struct {
	StudentID int64 `json:"stu_id" validate:"gt=0"`
	EnrollID  int64 `json:"enroll_id" validate:"gt=0"`
}

type AddCompletedInput struct {
	StudentID int64  `json:"stu_id" validate:"gt=0"`
	CourseID  int64  `json:"course_id" validate:"gt=0"`
	Grade     string `json:"grade" validate:"required,oneof=A A- B+ B B- C+ C C- D F P NP"`
}

type ImportTranscriptInput struct {
	StudentID int64  `json:"stu_id" validate:"gt=0"`
	Path      string `json:"path" validate:"required"`
	DryRun    bool   `json:"dry_run"`
}

type ImportedCourse struct {
	Code     string
	CourseID int64
	Grade    string
}

type SkippedCourse struct {
	Code   string
	Reason string
}

type ImportTranscriptOutput struct {
	Imported []ImportedCourse
	Skipped  []SkippedCourse
}
