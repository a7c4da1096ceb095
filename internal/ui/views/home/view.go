package home

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	catalogdto "planwise/internal/modules/catalog/dto"
	sessiondto "planwise/internal/modules/session/dto"
)

// Data is everything the home page shows.
type Data struct {
	Profile    sessiondto.ProfileOutput
	ProfileErr error
	Major      catalogdto.MajorOutput
	Programs   []catalogdto.ProgramOutput
}

func (d Data) SignedIn() bool { return d.Profile.StudentID > 0 }

// Markdown builds the page source before styling.
func Markdown(d Data) string {
	var b strings.Builder
	b.WriteString("# Planwise\n\n")
	if d.ProfileErr != nil {
		fmt.Fprintf(&b, "Could not load your profile: %s\n\n", d.ProfileErr)
	}
	if !d.SignedIn() {
		b.WriteString("You are not signed in. Open the palette with `:` and run `signin <login_id> [program_id]`.\n")
		return b.String()
	}

	p := d.Profile
	name := p.Name
	if name == "" {
		name = p.LoginID
	}
	fmt.Fprintf(&b, "**%s**", name)
	if p.Email != "" {
		fmt.Fprintf(&b, " · %s", p.Email)
	}
	b.WriteString("\n\n")
	if p.AdvisorName != "" {
		fmt.Fprintf(&b, "Advisor: %s\n\n", p.AdvisorName)
	}
	fmt.Fprintf(&b, "Catalog Year: %s · Expected Grad Term: %s\n\n", orDash(p.CatalogYearID), orDash(p.ExpectedGradTerm))

	b.WriteString("## Major\n\n")
	if d.Major.ID > 0 {
		fmt.Fprintf(&b, "%s (%s)\n\n", d.Major.Name, d.Major.Type)
	} else {
		b.WriteString("Pick a major with `major <program_id>`.\n\n")
	}
	if len(d.Programs) > 0 {
		b.WriteString("| ID | Program | Type |\n|---|---|---|\n")
		for _, prog := range d.Programs {
			fmt.Fprintf(&b, "| %d | %s | %s |\n", prog.ID, prog.Name, prog.Type)
		}
	}
	return b.String()
}

// Render styles the page with r, falling back to raw markdown.
func Render(d Data, r *glamour.TermRenderer) string {
	md := Markdown(d)
	if r == nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func orDash(v int64) string {
	if v <= 0 {
		return "-"
	}
	return fmt.Sprint(v)
}
