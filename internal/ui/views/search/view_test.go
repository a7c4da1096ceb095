package search

import (
	"errors"
	"strings"
	"testing"

	catalogdto "planwise/internal/modules/catalog/dto"
)

func TestRenderBeforeFirstSearch(t *testing.T) {
	t.Parallel()
	if out := Render("", nil, nil); out != "" {
		t.Fatalf("expected nothing before a search, got %q", out)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		query string
		items []catalogdto.CourseOutput
		err   error
		want  []string
	}{
		{name: "error", query: "calc", err: errors.New("HTTP 500"), want: []string{"Search", "HTTP 500"}},
		{name: "no match", query: "zzz", want: []string{"zzz", "No courses match."}},
		{
			name:  "results",
			query: "calc",
			items: []catalogdto.CourseOutput{{ID: 12, Code: "MATH 140", Title: "Calculus I", Credits: 4}},
			want:  []string{"MATH 140", "Calculus I", "id 12", "4 credits"},
		},
	}
	for _, tc := range cases {
		out := Render(tc.query, tc.items, tc.err)
		for _, want := range tc.want {
			if !strings.Contains(out, want) {
				t.Fatalf("%s: missing %q in:\n%s", tc.name, want, out)
			}
		}
	}
}
