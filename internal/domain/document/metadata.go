package document

import (
	"regexp"
	"strings"

	"github.com/abadojack/whatlanggo"
)

const LanguageUnknown = "unknown"

type Metadata struct {
	PageCount int             `json:"page_count"`
	WordCount int             `json:"word_count"`
	CharCount int             `json:"char_count"`
	LineCount int             `json:"line_count"`
	Language  string          `json:"language"`
	Sections  map[string]bool `json:"sections"`
}

var sectionPatterns = map[string]*regexp.Regexp{
	"experience":     regexp.MustCompile(`(?i)\b(experience|work\s+history|employment|professional\s+experience)\b`),
	"education":      regexp.MustCompile(`(?i)\b(education|academic|qualifications|degrees?)\b`),
	"skills":         regexp.MustCompile(`(?i)\b(skills|technical\s+skills|competencies|abilities)\b`),
	"projects":       regexp.MustCompile(`(?i)\b(projects|portfolio|work\s+samples)\b`),
	"certifications": regexp.MustCompile(`(?i)\b(certifications?|certificates?|licenses?)\b`),
}

// BuildMetadata derives counts, section flags and a best-effort language tag
// from normalized text.
func BuildMetadata(text string, pageCount int) Metadata {
	md := Metadata{
		PageCount: pageCount,
		CharCount: len(text),
		Language:  LanguageUnknown,
		Sections:  make(map[string]bool, len(sectionPatterns)),
	}
	if text == "" {
		return md
	}

	md.WordCount = len(strings.Fields(text))
	md.LineCount = len(strings.Split(text, "\n"))
	if md.PageCount <= 0 {
		md.PageCount = 1
	}

	for name, re := range sectionPatterns {
		md.Sections[name] = re.MatchString(text)
	}

	info := whatlanggo.Detect(text)
	if info.IsReliable() {
		md.Language = whatlanggo.LangToString(info.Lang)
	}

	return md
}
