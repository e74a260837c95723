package document

import "regexp"

// ContactField is a single extracted contact value. Confidence reflects the
// specificity of the pattern that produced it.
type ContactField struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

type ContactInfo struct {
	Email    *ContactField `json:"email,omitempty"`
	Phone    *ContactField `json:"phone,omitempty"`
	LinkedIn *ContactField `json:"linkedin,omitempty"`
	GitHub   *ContactField `json:"github,omitempty"`
	Website  *ContactField `json:"website,omitempty"`
}

type contactPattern struct {
	re         *regexp.Regexp
	confidence float64
}

// Patterns per field, most specific first. The first pattern that matches
// wins, so ties between candidates are broken by pattern specificity rather
// than input order.
var (
	emailPatterns = []contactPattern{
		{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), 0.95},
	}
	phonePatterns = []contactPattern{
		{regexp.MustCompile(`\+\d{1,3}[-.\s]?\(?\d{2,3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`), 0.9},
		{regexp.MustCompile(`\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}\b`), 0.75},
		{regexp.MustCompile(`\b\d{10}\b`), 0.5},
	}
	linkedinPatterns = []contactPattern{
		{regexp.MustCompile(`(?i)linkedin\.com/in/[A-Za-z0-9_-]+`), 0.95},
		{regexp.MustCompile(`(?i)linkedin\.com/[A-Za-z0-9/_-]+`), 0.7},
	}
	githubPatterns = []contactPattern{
		{regexp.MustCompile(`(?i)github\.com/[A-Za-z0-9_-]+`), 0.95},
	}
	websitePatterns = []contactPattern{
		{regexp.MustCompile(`(?i)\bhttps?://(?:www\.)?[A-Za-z0-9-]+\.[A-Za-z]{2,}(?:/[A-Za-z0-9./_-]*)?`), 0.8},
		{regexp.MustCompile(`(?i)\bwww\.[A-Za-z0-9-]+\.[A-Za-z]{2,}(?:/[A-Za-z0-9./_-]*)?`), 0.6},
	}

	excludedWebsiteHosts = regexp.MustCompile(`(?i)linkedin\.com|github\.com`)
)

// ExtractContact pulls at most one best match per contact field from
// normalized text.
func ExtractContact(text string) ContactInfo {
	info := ContactInfo{
		Email:    matchFirst(text, emailPatterns, nil),
		Phone:    matchFirst(text, phonePatterns, nil),
		LinkedIn: matchFirst(text, linkedinPatterns, nil),
		GitHub:   matchFirst(text, githubPatterns, nil),
		Website:  matchFirst(text, websitePatterns, excludedWebsiteHosts),
	}
	return info
}

func matchFirst(text string, patterns []contactPattern, exclude *regexp.Regexp) *ContactField {
	for _, p := range patterns {
		for _, m := range p.re.FindAllString(text, -1) {
			if exclude != nil && exclude.MatchString(m) {
				continue
			}
			return &ContactField{Value: m, Confidence: p.confidence}
		}
	}
	return nil
}
