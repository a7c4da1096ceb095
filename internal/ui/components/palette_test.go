package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func submit(t *testing.T, p Palette, text string) Palette {
	t.Helper()
	p.Open()
	p.input.SetValue(text)
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter produced no command")
	}
	if msg, ok := cmd().(PaletteSubmitMsg); !ok || msg.Input != text {
		t.Fatalf("unexpected submit message: %#v", msg)
	}
	return p
}

func TestPaletteRecallsSubmittedCommands(t *testing.T) {
	t.Parallel()
	p := NewPalette([]string{"add", "grade"})
	p = submit(t, p, "add 7")
	p = submit(t, p, "grade 4 A")
	p = submit(t, p, "grade 4 A")

	p.Open()
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	if p.Value() != "grade 4 A" {
		t.Fatalf("expected newest command first, got %q", p.Value())
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	if p.Value() != "add 7" {
		t.Fatalf("expected older command, got %q", p.Value())
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	if p.Value() != "add 7" {
		t.Fatalf("recall moved past the oldest entry: %q", p.Value())
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	if p.Value() != "" {
		t.Fatalf("expected empty input after recall, got %q", p.Value())
	}
}

func TestPaletteHintsMatchFirstWord(t *testing.T) {
	t.Parallel()
	p := NewPalette([]string{"add <course_id> [term_id]", "audit <plugin> <command>", "grade <enroll_id> <grade>"})
	p.Open()
	p.input.SetValue("add 12")
	view := p.View()
	if !strings.Contains(view, "add <course_id>") || strings.Contains(view, "grade <enroll_id>") {
		t.Fatalf("unexpected hints:\n%s", view)
	}
}
