package domain

import "strings"

// Item is one course placed in a plan term.
type Item struct {
	PCID        int64
	CourseID    int64
	TermID      int64
	TermCode    string
	CourseCode  string
	Title       string
	Credits     float64
	Recommended bool
}

type Plan struct {
	ID           int64
	TotalCredits float64
	Items        []Item
}

// Course is a catalog course offered as a recommendation.
type Course struct {
	ID      int64
	Subject string
	CataNum string
	Title   string
	Credits float64
}

func (c Course) Code() string {
	return strings.TrimSpace(c.Subject + " " + c.CataNum)
}

// MissingPrereq is a prerequisite the student has not passed yet.
type MissingPrereq struct {
	CourseID int64
	Subject  string
	CataNum  string
	Title    string
}

func (m MissingPrereq) Code() string {
	return strings.TrimSpace(m.Subject + " " + m.CataNum)
}

// Terms returns the distinct term codes in first-seen order.
func (p Plan) Terms() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, item := range p.Items {
		if seen[item.TermCode] {
			continue
		}
		seen[item.TermCode] = true
		out = append(out, item.TermCode)
	}
	return out
}

// ItemCredits sums the item credits; the backend total is preferred when set.
func (p Plan) ItemCredits() float64 {
	total := 0.0
	for _, item := range p.Items {
		total += item.Credits
	}
	return total
}
