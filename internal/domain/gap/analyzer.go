package gap

import (
	"sort"

	"github.com/google/uuid"

	"skill-gap/internal/domain/learning"
	"skill-gap/internal/domain/matching"
	"skill-gap/internal/domain/taxonomy"
)

type Type string

const (
	TypeMissing Type = "missing"
	TypePartial Type = "partial"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priority thresholds. Explicit configuration constants, applied the same
// way regardless of skill category; pinned by tests.
const (
	HighImportanceThreshold   = 0.8
	MediumImportanceThreshold = 0.5
	LargeDeficitThreshold     = 40.0
	ModerateDeficitThreshold  = 20.0
)

// Gap is one job-required skill the user lacks or under-meets.
// UserProficiency is nil for missing skills.
type Gap struct {
	Skill               taxonomy.Skill
	GapType             Type
	Priority            Priority
	Importance          float64
	UserProficiency     *float64
	RequiredProficiency float64
	Resources           []learning.Resource
	EstimatedHours      *float64
}

// Analysis groups gaps by skill category. The aggregate counts always equal
// the sums over the per-category lists.
type Analysis struct {
	JobID            uuid.UUID
	UserID           uuid.UUID
	GapsByCategory   map[string][]Gap
	TotalGaps        int
	HighPriorityGaps int
	MedPriorityGaps  int
	LowPriorityGaps  int
}

// Recommender attaches learning resources and a time estimate to a gap.
type Recommender interface {
	Resources(s taxonomy.Skill) []learning.Resource
	EstimateHours(s taxonomy.Skill, userProficiency, requiredProficiency float64) float64
}

// Analyze derives per-skill gaps from the same two skill sets the similarity
// engine saw. Fully met skills never produce a gap record. Job skills whose
// id is absent from the taxonomy are skipped; the caller decides whether to
// log them.
func Analyze(userSkills []matching.UserSkill, jobSkills []matching.JobSkill, res matching.Result, tax *taxonomy.Taxonomy, rec Recommender) Analysis {
	out := Analysis{
		JobID:          res.JobID,
		UserID:         res.UserID,
		GapsByCategory: make(map[string][]Gap),
	}

	user := make(map[uuid.UUID]float64, len(userSkills))
	for _, us := range userSkills {
		if us.SkillID == uuid.Nil {
			continue
		}
		if cur, ok := user[us.SkillID]; !ok || us.Proficiency > cur {
			user[us.SkillID] = us.Proficiency
		}
	}

	for _, js := range jobSkills {
		if js.SkillID == uuid.Nil || js.Importance <= 0 {
			continue
		}
		skill, ok := tax.ByID(js.SkillID)
		if !ok {
			continue
		}

		g := Gap{
			Skill:               skill,
			Importance:          js.Importance,
			RequiredProficiency: js.RequiredProficiency,
		}

		prof, present := user[js.SkillID]
		switch {
		case present && prof >= js.RequiredProficiency:
			// Fully met; no gap record. Holds at requirement 0 too.
			continue
		case !present || prof == 0:
			g.GapType = TypeMissing
			if present {
				p := prof
				g.UserProficiency = &p
			}
		default:
			p := prof
			g.GapType = TypePartial
			g.UserProficiency = &p
		}

		deficit := js.RequiredProficiency
		if g.UserProficiency != nil {
			deficit = js.RequiredProficiency - *g.UserProficiency
		}
		g.Priority = classify(js.Importance, deficit)

		if rec != nil {
			g.Resources = rec.Resources(skill)
			userProf := 0.0
			if g.UserProficiency != nil {
				userProf = *g.UserProficiency
			}
			h := rec.EstimateHours(skill, userProf, js.RequiredProficiency)
			g.EstimatedHours = &h
		}

		out.GapsByCategory[skill.Category] = append(out.GapsByCategory[skill.Category], g)
	}

	for cat := range out.GapsByCategory {
		gaps := out.GapsByCategory[cat]
		sort.Slice(gaps, func(i, j int) bool {
			if gaps[i].Importance != gaps[j].Importance {
				return gaps[i].Importance > gaps[j].Importance
			}
			return gaps[i].Skill.Name < gaps[j].Skill.Name
		})
		for _, g := range gaps {
			out.TotalGaps++
			switch g.Priority {
			case PriorityHigh:
				out.HighPriorityGaps++
			case PriorityMedium:
				out.MedPriorityGaps++
			default:
				out.LowPriorityGaps++
			}
		}
	}

	return out
}

func classify(importance, deficit float64) Priority {
	switch {
	case importance >= HighImportanceThreshold || deficit >= LargeDeficitThreshold:
		return PriorityHigh
	case importance >= MediumImportanceThreshold || deficit >= ModerateDeficitThreshold:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
