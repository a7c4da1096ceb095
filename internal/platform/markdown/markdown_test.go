package markdown

import (
	"strings"
	"testing"
)

func TestReplaceManagedBlockKeepsSurroundingText(t *testing.T) {
	t.Parallel()
	body := "intro\n<!-- s -->\nold\n<!-- e -->\nnotes\n"

	got := ReplaceManagedBlock(body, "<!-- s -->", "<!-- e -->", "new")
	want := "intro\n<!-- s -->\nnew\n<!-- e -->\nnotes\n"
	if got != want {
		t.Fatalf("unexpected body:\n%q\nwant\n%q", got, want)
	}
}

func TestReplaceManagedBlockAppendsWhenMissing(t *testing.T) {
	t.Parallel()
	got := ReplaceManagedBlock("## Notes\n", "<!-- s -->", "<!-- e -->", "gen")
	if got != "## Notes\n\n<!-- s -->\ngen\n<!-- e -->\n" {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestFrontmatterRoundTripWithCRLF(t *testing.T) {
	t.Parallel()
	meta, body, err := SplitFrontmatter("---\r\ngpa: \"3.60\"\r\n---\r\nhello\r\n")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if meta["gpa"] != "3.60" || body != "hello\n" {
		t.Fatalf("unexpected split: %v %q", meta, body)
	}

	out, err := RenderFrontmatter(meta, body)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, "---\ngpa: \"3.60\"\n---\n") || !strings.HasSuffix(out, "hello\n") {
		t.Fatalf("unexpected render: %q", out)
	}
}

func TestSplitFrontmatterMissingClose(t *testing.T) {
	t.Parallel()
	if _, _, err := SplitFrontmatter("---\nfoo: 1\n"); err == nil {
		t.Fatalf("expected error for unterminated frontmatter")
	}
}
