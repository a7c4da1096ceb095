package dto

type SectionOutput struct {
	SectionID  int64
	CourseCode string
	Title      string
	Location   string
	Days       []string
	DaysText   string
	TimeText   string
}

// ScheduleOutput carries aggregated sections plus any rows that disagreed with
// their section's first row.
type ScheduleOutput struct {
	Sections []SectionOutput
	Warnings []string
}

type SectionInput struct {
	StudentID int64 `json:"stu_id" validate:"gt=0"`
	SectionID int64 `json:"section_id" validate:"gt=0"`
}

type EnrollOutput struct {
	EnrollID int64
}

type ConflictOutput struct {
	SectionA  int64
	SectionB  int64
	Day       string
	ATimeText string
	BTimeText string
}
