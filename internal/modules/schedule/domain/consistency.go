package domain

// Inconsistency reports a meeting row whose metadata differs from the first
// row seen for the same section.
type Inconsistency struct {
	SectionID int64
	Row       int
	Field     string
	Want      string
	Got       string
}

// CheckConsistency is a separate validation pass over meeting rows; Aggregate
// never calls it.
func CheckConsistency(rows []MeetingRow) []Inconsistency {
	first := map[int64]MeetingRow{}
	var out []Inconsistency
	for i, row := range rows {
		ref, ok := first[row.SectionID]
		if !ok {
			first[row.SectionID] = row
			continue
		}
		for _, f := range []struct{ name, want, got string }{
			{"course_code", ref.CourseCode, row.CourseCode},
			{"title", ref.Title, row.Title},
			{"location", ref.Location, row.Location},
			{"start", ref.Start, row.Start},
			{"end", ref.End, row.End},
		} {
			if f.want != f.got {
				out = append(out, Inconsistency{SectionID: row.SectionID, Row: i, Field: f.name, Want: f.want, Got: f.got})
			}
		}
	}
	return out
}
