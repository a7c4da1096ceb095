package dto

import "time"

type SignInInput struct {
	LoginID   string
	ProgramID int64
}

type SignInOutput struct {
	StudentID  int64
	PlanID     int64
	Name       string
	Email      string
	MajorSaved bool
}

type StateOutput struct {
	StudentID int64
	PlanID    int64
}

type ProfileOutput struct {
	StudentID        int64
	PlanID           int64
	LoginID          string
	Name             string
	Email            string
	AdvisorName      string
	CatalogYearID    int64
	ExpectedGradTerm int64
	SignedInAt       time.Time
}
