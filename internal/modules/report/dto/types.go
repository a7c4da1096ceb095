package dto

import "time"

type BuildInput struct {
	StudentID int64
	PlanID    int64
	LoginID   string
	Name      string
}

type ExportInput struct {
	BuildInput
	Dir string
}

type ReportOutput struct {
	StudentID   int64
	PlanID      int64
	FileName    string
	Markdown    string
	Credits     float64
	GPAText     string
	Standing    string
	PlanItems   int
	Sections    int
	Unavailable []string
	GeneratedAt time.Time
}

type ExportOutput struct {
	Path   string
	Report ReportOutput
}
