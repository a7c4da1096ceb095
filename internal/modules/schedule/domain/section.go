package domain

import (
	"strconv"
	"strings"
)

// MeetingRow is one weekly meeting of a section. Day is 1 (Mon) through 7 (Sun).
type MeetingRow struct {
	SectionID  int64
	CourseCode string
	Title      string
	Location   string
	Start      string
	End        string
	Day        int
}

// Section is every meeting of one section collapsed into a single row.
type Section struct {
	SectionID  int64
	CourseCode string
	Title      string
	Location   string
	Start      string
	End        string
	Days       []string
}

func (s Section) DaysText() string {
	return strings.Join(s.Days, ", ")
}

func (s Section) TimeText() string {
	return ClockText(s.Start) + "–" + ClockText(s.End)
}

var dayLabels = map[int]string{1: "Mon", 2: "Tue", 3: "Wed", 4: "Thu", 5: "Fri", 6: "Sat", 7: "Sun"}

// DayLabel maps 1..7 to Mon..Sun; any other code is returned as its number.
func DayLabel(code int) string {
	if label, ok := dayLabels[code]; ok {
		return label
	}
	return strconv.Itoa(code)
}

// ClockText keeps the HH:MM prefix of a stored time.
func ClockText(t string) string {
	if len(t) <= 5 {
		return t
	}
	return t[:5]
}

// Aggregate groups rows by section id in first-seen order.
//
// Rows of one section are expected to share course code, title, location and
// times; only the first row's values are kept and the rest contribute their
// day label. Use CheckConsistency to verify that expectation.
func Aggregate(rows []MeetingRow) []Section {
	index := map[int64]int{}
	out := make([]Section, 0, len(rows))
	for _, row := range rows {
		i, ok := index[row.SectionID]
		if !ok {
			index[row.SectionID] = len(out)
			out = append(out, Section{
				SectionID:  row.SectionID,
				CourseCode: row.CourseCode,
				Title:      row.Title,
				Location:   row.Location,
				Start:      row.Start,
				End:        row.End,
				Days:       []string{DayLabel(row.Day)},
			})
			continue
		}
		out[i].Days = append(out[i].Days, DayLabel(row.Day))
	}
	return out
}
