package contact

import (
	"strings"
	"unicode/utf8"
)

// Line is one trimmed, non-empty line of recognized text. Index is its
// position among the normalized lines.
type Line struct {
	Content string `json:"content"`
	Index   int    `json:"index"`
}

// Len returns the length of the line in runes.
func (l Line) Len() int { return utf8.RuneCountInString(l.Content) }

// NormalizeLines splits raw into trimmed lines, dropping blank ones and
// keeping the original order.
func NormalizeLines(raw string) []Line {
	var lines []Line
	for _, part := range strings.Split(raw, "\n") {
		content := strings.TrimSpace(part)
		if content == "" {
			continue
		}
		lines = append(lines, Line{Content: content, Index: len(lines)})
	}
	return lines
}

// CandidatePool returns the lines eligible for company, job title and name
// detection: everything that is not itself a structured token and is at
// least three runes long. The address line is not removed.
func CandidatePool(lines []Line) []Line {
	pool := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.Len() < minPoolLineLen || isTokenLine(l.Content) {
			continue
		}
		pool = append(pool, l)
	}
	return pool
}

func isTokenLine(s string) bool {
	return findEmail(s) != "" || findPhone(s) != "" || findWebsite(s) != ""
}
