package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"planwise/internal/modules/report/domain"
	reportout "planwise/internal/modules/report/port/out"
	"planwise/internal/platform/markdown"
)

// MarkdownReportStore writes the report as a note. Text the student added
// outside the generated block survives re-export.
type MarkdownReportStore struct{}

func NewMarkdownReportStore() reportout.Store {
	return MarkdownReportStore{}
}

func (MarkdownReportStore) Save(_ context.Context, dir string, report domain.Report) (string, error) {
	path := filepath.Join(dir, report.FileName())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	body := "## Notes\n"
	if existing, err := os.ReadFile(path); err == nil {
		_, existingBody, splitErr := markdown.SplitFrontmatter(string(existing))
		if splitErr == nil && strings.TrimSpace(existingBody) != "" {
			body = existingBody
		}
	}
	body = markdown.ReplaceManagedBlock(body, domain.ManagedStart, domain.ManagedEnd, strings.TrimRight(report.Body(), "\n"))

	rendered, err := markdown.RenderFrontmatter(report.Frontmatter(), body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write report markdown: %w", err)
	}
	return path, nil
}
