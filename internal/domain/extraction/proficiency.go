package extraction

import (
	"regexp"
	"strconv"
)

// Proficiency heuristics: detected years of experience map through a
// staircase into 0-100, seniority keywords bump the estimate, and any bare
// mention gets a nonzero floor so "mentioned" stays distinguishable from
// "unknown".
const (
	proficiencyFloor = 20

	profUnderOneYear = 40
	profOneYear      = 50
	profThreeYears   = 65
	profFiveYears    = 80
	profEightYears   = 90

	seniorityBump  = 10
	proficiencyMax = 100
)

var (
	yearsRe     = regexp.MustCompile(`(?i)(\d{1,2})\+?\s*(?:years?|yrs?)`)
	seniorityRe = regexp.MustCompile(`(?i)\b(senior|sr\.?|lead|principal|staff|architect|expert)\b`)
)

func proficiencyFromYears(years float64) float64 {
	switch {
	case years >= 8:
		return profEightYears
	case years >= 5:
		return profFiveYears
	case years >= 3:
		return profThreeYears
	case years >= 1:
		return profOneYear
	case years > 0:
		return profUnderOneYear
	default:
		return proficiencyFloor
	}
}

func inferProficiency(years float64, senior bool) float64 {
	p := proficiencyFromYears(years)
	if senior {
		p += seniorityBump
	}
	if p > proficiencyMax {
		p = proficiencyMax
	}
	return p
}

// yearsNear scans a window of text around a mention for a duration phrase and
// returns the detected years, or 0 when none is present.
func yearsNear(window string) float64 {
	m := yearsRe.FindStringSubmatch(window)
	if m == nil {
		return 0
	}
	v, err := strconv.Atoi(m[1])
	if err != nil || v <= 0 {
		return 0
	}
	return float64(v)
}

func seniorityNear(window string) bool {
	return seniorityRe.MatchString(window)
}
