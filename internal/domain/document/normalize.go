package document

import (
	"regexp"
	"strings"
)

var (
	lineSpaceRe  = regexp.MustCompile(`[ \t]+`)
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
	controlRe    = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]")
	nonBreakRe   = regexp.MustCompile(" ")
	softArtifact = regexp.MustCompile(`(?m)^\s*Page \d+ of \d+\s*$`)
)

// Normalize collapses repeated whitespace and strips extraction artifacts
// (page-break markers, control characters) while preserving line breaks
// between sections. It is a pure function and idempotent:
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\f", "\n")
	text = nonBreakRe.ReplaceAllString(text, " ")
	text = controlRe.ReplaceAllString(text, "")
	text = softArtifact.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = lineSpaceRe.ReplaceAllString(line, " ")
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")

	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
