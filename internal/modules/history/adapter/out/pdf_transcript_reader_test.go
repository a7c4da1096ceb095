package out

import (
	"context"
	"path/filepath"
	"testing"

	"rsc.io/pdf"
)

func TestPageLinesGroupsRunsByBaseline(t *testing.T) {
	t.Parallel()
	texts := []pdf.Text{
		{X: 200, Y: 700, W: 10, FontSize: 10, S: "A-"},
		{X: 50, Y: 700, W: 30, FontSize: 10, S: "CMPSC"},
		{X: 84, Y: 700.5, W: 18, FontSize: 10, S: "221"},
		{X: 50, Y: 680, W: 24, FontSize: 10, S: "MATH"},
		{X: 78, Y: 680, W: 6, FontSize: 10, S: "1"},
		{X: 80, Y: 680, W: 12, FontSize: 10, S: "40"},
		{X: 50, Y: 760, W: 60, FontSize: 12, S: "Transcript"},
	}
	lines := pageLines(texts)
	want := []string{"Transcript", "CMPSC 221 A-", "MATH 140"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q want %q", i, lines[i], want[i])
		}
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	t.Parallel()
	reader := NewPDFTranscriptReader()
	if _, err := reader.ReadLines(context.Background(), filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Fatalf("expected open error")
	}
}
