package final

import (
	"errors"
	"strings"
	"testing"

	scheduledto "planwise/internal/modules/schedule/dto"
)

func TestRender(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		out  scheduledto.ScheduleOutput
		err  error
		want []string
	}{
		{name: "error", err: errors.New("HTTP 502"), want: []string{"Final schedule", "Error loading final schedule: HTTP 502"}},
		{name: "empty", want: []string{"No classes chosen yet."}},
		{
			name: "sections",
			out: scheduledto.ScheduleOutput{Sections: []scheduledto.SectionOutput{{
				SectionID: 31, CourseCode: "MATH 140", Title: "Calculus", Location: "Thomas 102",
				DaysText: "Mon, Wed, Fri", TimeText: "09:05–09:55",
			}}},
			want: []string{"Section", "31", "MATH 140", "Mon, Wed, Fri", "09:05–09:55", "Thomas 102"},
		},
	}
	for _, tc := range cases {
		out := Render(tc.out, tc.err, 0)
		for _, want := range tc.want {
			if !strings.Contains(out, want) {
				t.Fatalf("%s: missing %q in:\n%s", tc.name, want, out)
			}
		}
	}
}
