package domain

import (
	"fmt"
	"strings"
)

type Program struct {
	ID            int64
	Name          string
	Type          string
	CatalogYearID int64
}

type Course struct {
	ID      int64
	Subject string
	CataNum string
	Title   string
	Credits float64
}

func (c Course) Code() string {
	return c.Subject + " " + c.CataNum
}

// Matches reports whether the course is exactly subject + catalog number.
func (c Course) Matches(subject, cataNum string) bool {
	return strings.EqualFold(strings.TrimSpace(c.Subject), strings.TrimSpace(subject)) &&
		strings.EqualFold(strings.TrimSpace(c.CataNum), strings.TrimSpace(cataNum))
}

type Advisor struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

func (a Advisor) Name() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// SearchQuery holds free text plus optional subject and level filters.
// Level is a course level such as 100 or 400.
type SearchQuery struct {
	Text    string
	Subject string
	Level   string
}

func (q SearchQuery) Normalize() SearchQuery {
	return SearchQuery{
		Text:    strings.TrimSpace(q.Text),
		Subject: strings.TrimSpace(q.Subject),
		Level:   strings.TrimSpace(q.Level),
	}
}

func (q SearchQuery) Empty() bool {
	n := q.Normalize()
	return n.Text == "" && n.Subject == "" && n.Level == ""
}

func (q SearchQuery) Validate() error {
	if q.Empty() {
		return fmt.Errorf("enter a query or choose a filter")
	}
	return nil
}
