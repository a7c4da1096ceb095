package out

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	historyout "planwise/internal/modules/history/port/out"
	"rsc.io/pdf"
)

// lineTolerance is the vertical distance, in points, under which text runs
// are treated as one line.
const lineTolerance = 2.0

type PDFTranscriptReader struct{}

func NewPDFTranscriptReader() historyout.TranscriptReader {
	return &PDFTranscriptReader{}
}

func (r *PDFTranscriptReader) ReadLines(ctx context.Context, path string) ([]string, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	lines := []string{}
	for n := 1; n <= doc.NumPage(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := doc.Page(n)
		if page.V.IsNull() {
			continue
		}
		lines = append(lines, pageLines(page.Content().Text)...)
	}
	return lines, nil
}

type textRun struct {
	x, y, w, size float64
	s             string
}

// pageLines groups positioned text into top-to-bottom, left-to-right lines.
func pageLines(texts []pdf.Text) []string {
	runs := make([]textRun, 0, len(texts))
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		runs = append(runs, textRun{x: t.X, y: t.Y, w: t.W, size: t.FontSize, s: t.S})
	}
	sort.SliceStable(runs, func(i, j int) bool {
		if math.Abs(runs[i].y-runs[j].y) > lineTolerance {
			return runs[i].y > runs[j].y
		}
		return runs[i].x < runs[j].x
	})

	lines := []string{}
	var current strings.Builder
	lastY := math.NaN()
	lastEnd := 0.0
	for _, run := range runs {
		if !math.IsNaN(lastY) && math.Abs(run.y-lastY) > lineTolerance {
			if s := strings.TrimSpace(current.String()); s != "" {
				lines = append(lines, s)
			}
			current.Reset()
		} else if current.Len() > 0 && run.x-lastEnd > run.size*0.2 {
			current.WriteString(" ")
		}
		current.WriteString(run.s)
		lastY = run.y
		lastEnd = run.x + run.w
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		lines = append(lines, s)
	}
	return lines
}
