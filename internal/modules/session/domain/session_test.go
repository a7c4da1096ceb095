package domain

import "testing"

func TestStateFlags(t *testing.T) {
	t.Parallel()
	if (State{}).SignedIn() || (State{}).HasPlan() {
		t.Fatalf("zero state should be empty")
	}
	s := State{StudentID: 4, PlanID: 0}
	if !s.SignedIn() || s.HasPlan() {
		t.Fatalf("unexpected flags for %+v", s)
	}
}

func TestStudentNames(t *testing.T) {
	t.Parallel()
	s := Student{FirstName: "New", LastName: "Student", AdvisorLast: "Hopper"}
	if s.Name() != "New Student" || s.AdvisorName() != "Hopper" {
		t.Fatalf("unexpected names: %q %q", s.Name(), s.AdvisorName())
	}
}
