package domain

import (
	"regexp"
	"strings"
)

// transcriptLine matches "SUBJ 123 [title words] GRADE [credits]".
var transcriptLine = regexp.MustCompile(`^([A-Z]{2,6})\s+(\d{1,3}[A-Z]?)\s+(?:.*?\s)?(A-|A|B\+|B-|B|C\+|C-|C|D|F|P|NP)(?:\s+\d+(?:\.\d+)?)?$`)

type TranscriptEntry struct {
	Subject string
	CataNum string
	Grade   string
}

func (e TranscriptEntry) Code() string {
	return e.Subject + " " + e.CataNum
}

// ParseTranscript keeps the lines that look like graded course rows, in order.
func ParseTranscript(lines []string) []TranscriptEntry {
	out := make([]TranscriptEntry, 0, len(lines))
	for _, line := range lines {
		normalized := strings.Join(strings.Fields(strings.ToUpper(line)), " ")
		match := transcriptLine.FindStringSubmatch(normalized)
		if match == nil {
			continue
		}
		out = append(out, TranscriptEntry{Subject: match[1], CataNum: match[2], Grade: match[3]})
	}
	return out
}
