package learning

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"skill-gap/internal/domain/taxonomy"
)

// Resource is one learning suggestion attached to a skill gap.
type Resource struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Provider string `json:"provider"`
	URL      string `json:"url"`
}

// Estimated-time model: base hours per skill class scaled by the proficiency
// deficit ratio, floored so a genuine gap never rounds to zero.
const (
	hoursProgrammingLanguage = 80
	hoursFramework           = 40
	hoursDatabase            = 20
	hoursHardDefault         = 40
	hoursSoftDefault         = 15

	MinimumHours = 4
)

var categoryBaseHours = map[string]float64{
	"programming language": hoursProgrammingLanguage,
	"framework":            hoursFramework,
	"database":             hoursDatabase,
}

// Recommender maps skill gaps to learning resources and time estimates. The
// catalog is built once against the taxonomy and read-only afterwards.
type Recommender struct {
	bySkillID  map[uuid.UUID][]Resource
	byCategory map[string][]Resource
}

// Curated entries keyed by canonical skill name; resolved to skill ids
// through the taxonomy at construction.
var curated = map[string][]Resource{
	"python": {
		{Type: "course", Title: "Python Programming Fundamentals", Provider: "Coursera", URL: "https://www.coursera.org/learn/python"},
	},
	"javascript": {
		{Type: "course", Title: "JavaScript Essentials", Provider: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/"},
	},
	"react": {
		{Type: "tutorial", Title: "React Official Tutorial", Provider: "React", URL: "https://react.dev/learn"},
	},
}

var categoryResources = map[string][]Resource{
	"programming language": {
		{Type: "practice", Title: "Exercism Language Tracks", Provider: "Exercism", URL: "https://exercism.org/tracks"},
	},
	"database": {
		{Type: "course", Title: "Databases and SQL", Provider: "Khan Academy", URL: "https://www.khanacademy.org/computing/computer-programming/sql"},
	},
}

func NewRecommender(tax *taxonomy.Taxonomy) *Recommender {
	r := &Recommender{
		bySkillID:  make(map[uuid.UUID][]Resource),
		byCategory: make(map[string][]Resource, len(categoryResources)),
	}
	for name, resources := range curated {
		if s, ok := tax.Resolve(name); ok {
			r.bySkillID[s.ID] = resources
		}
	}
	for cat, resources := range categoryResources {
		r.byCategory[strings.ToLower(cat)] = resources
	}
	return r
}

// Resources looks up by exact skill id, then skill category, then skill type.
// A generic search resource is always appended so the list is never empty.
func (r *Recommender) Resources(s taxonomy.Skill) []Resource {
	var out []Resource
	if rs, ok := r.bySkillID[s.ID]; ok {
		out = append(out, rs...)
	} else if rs, ok := r.byCategory[strings.ToLower(s.Category)]; ok {
		out = append(out, rs...)
	} else if s.Type == taxonomy.TypeSoft {
		out = append(out, Resource{
			Type:     "course",
			Title:    s.Name + " Development",
			Provider: "LinkedIn Learning",
			URL:      "https://www.linkedin.com/learning/search?keywords=" + url.QueryEscape(s.Name),
		})
	}

	out = append(out, Resource{
		Type:     "search",
		Title:    fmt.Sprintf("Learn %s", s.Name),
		Provider: "Search",
		URL:      "https://www.google.com/search?q=" + url.QueryEscape("learn "+s.Name),
	})
	return out
}

// EstimateHours scales the base hours for the skill class by the proficiency
// deficit ratio (required-user)/required. Soft skills cost less structured
// time than deep technical ones. Any genuine gap gets at least MinimumHours.
func (r *Recommender) EstimateHours(s taxonomy.Skill, userProficiency, requiredProficiency float64) float64 {
	base := baseHours(s)

	ratio := 1.0
	if requiredProficiency > 0 {
		ratio = (requiredProficiency - userProficiency) / requiredProficiency
	}
	if ratio <= 0 {
		return 0
	}
	if ratio > 1 {
		ratio = 1
	}

	hours := base * ratio
	if hours < MinimumHours {
		hours = MinimumHours
	}
	return hours
}

func baseHours(s taxonomy.Skill) float64 {
	if h, ok := categoryBaseHours[strings.ToLower(s.Category)]; ok {
		return h
	}
	if s.Type == taxonomy.TypeSoft {
		return hoursSoftDefault
	}
	return hoursHardDefault
}
