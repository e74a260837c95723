package extraction

import "skill-gap/internal/domain/taxonomy"

// Method says how a skill mention was found. Base confidence decreases from
// exact down to contextual.
type Method string

const (
	MethodExact      Method = "exact"
	MethodAlias      Method = "alias"
	MethodFuzzy      Method = "fuzzy"
	MethodContextual Method = "contextual"
)

// Record is one extracted skill, deduplicated per document pass. It feeds the
// persisted user-skill profile and is not stored on its own.
type Record struct {
	Skill       taxonomy.Skill
	Confidence  float64
	Method      Method
	Context     string
	Proficiency float64
}

var methodBaseConfidence = map[Method]float64{
	MethodExact:      0.9,
	MethodAlias:      0.8,
	MethodFuzzy:      0.6,
	MethodContextual: 0.5,
}

const (
	repetitionBoostStep = 0.05
	repetitionBoostMax  = 0.15
	durationBoost       = 0.1
)

// confidenceFor combines the method base score with a repetition boost and a
// boost for a nearby experience-duration phrase, capped at 1.0.
func confidenceFor(method Method, mentions int, hasDuration bool) float64 {
	score := methodBaseConfidence[method]
	if mentions > 1 {
		boost := float64(mentions-1) * repetitionBoostStep
		if boost > repetitionBoostMax {
			boost = repetitionBoostMax
		}
		score += boost
	}
	if hasDuration {
		score += durationBoost
	}
	if score > 1 {
		score = 1
	}
	return score
}

func methodRank(m Method) int {
	switch m {
	case MethodExact:
		return 3
	case MethodAlias:
		return 2
	case MethodFuzzy:
		return 1
	default:
		return 0
	}
}
