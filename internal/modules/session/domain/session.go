package domain

import (
	"strings"
	"time"
)

// State is the signed-in student and their active plan. Zero means absent.
type State struct {
	StudentID int64
	PlanID    int64
}

func (s State) SignedIn() bool { return s.StudentID > 0 }

func (s State) HasPlan() bool { return s.PlanID > 0 }

type Student struct {
	ID               int64  `json:"stu_id"`
	LoginID          string `json:"login_id"`
	FirstName        string `json:"f_name"`
	LastName         string `json:"l_name"`
	Email            string `json:"email"`
	ExpectedGradTerm int64  `json:"expected_grad_term"`
	CatalogYearID    int64  `json:"catalog_year_id"`
	AdvisorID        int64  `json:"advisor_id"`
	AdvisorFirst     string `json:"adv_first"`
	AdvisorLast      string `json:"adv_last"`
}

func (s Student) Name() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

func (s Student) AdvisorName() string {
	return strings.TrimSpace(s.AdvisorFirst + " " + s.AdvisorLast)
}

// Profile is the last successful sign-in, kept next to the state.
type Profile struct {
	Student    Student   `json:"student"`
	PlanID     int64     `json:"plan_id"`
	SignedInAt time.Time `json:"signed_in_at"`
}
