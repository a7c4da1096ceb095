package home

import (
	"strings"
	"testing"

	catalogdto "planwise/internal/modules/catalog/dto"
	sessiondto "planwise/internal/modules/session/dto"
)

func TestMarkdownSignedOut(t *testing.T) {
	t.Parallel()
	md := Markdown(Data{})
	if !strings.Contains(md, "`signin <login_id> [program_id]`") {
		t.Fatalf("expected sign-in hint:\n%s", md)
	}
	if Render(Data{}, nil) != md {
		t.Fatalf("nil renderer should return raw markdown")
	}
}

func TestMarkdownProfile(t *testing.T) {
	t.Parallel()
	md := Markdown(Data{
		Profile:  sessiondto.ProfileOutput{StudentID: 5, LoginID: "jdoe", Name: "Jane Doe", Email: "jdoe@example.edu", AdvisorName: "Ada Lovelace", CatalogYearID: 2024},
		Major:    catalogdto.MajorOutput{ID: 3, Name: "Computer Science", Type: "Major"},
		Programs: []catalogdto.ProgramOutput{{ID: 3, Name: "Computer Science", Type: "Major"}},
	})
	for _, want := range []string{
		"**Jane Doe** · jdoe@example.edu",
		"Advisor: Ada Lovelace",
		"Catalog Year: 2024 · Expected Grad Term: -",
		"Computer Science (Major)",
		"| 3 | Computer Science | Major |",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("missing %q in:\n%s", want, md)
		}
	}
}
