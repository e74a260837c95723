package matching

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// Ensemble weights for the overall score. Tunable configuration, not derived
// values; pinned by tests.
const (
	WeightJaccard  = 0.2
	WeightCosine   = 0.3
	WeightWeighted = 0.5
)

// UserSkill is one entry of a user's skill profile as the engine sees it.
// Proficiency is 0-100.
type UserSkill struct {
	SkillID     uuid.UUID
	Proficiency float64
}

// JobSkill is one required skill of a job posting. Importance must be
// strictly positive; zero-importance entries are excluded from scoring.
type JobSkill struct {
	SkillID             uuid.UUID
	Importance          float64
	RequiredProficiency float64
}

// Result holds the full similarity breakdown for one user/job pair. All
// scores are in [0,1]. The engine is stateless per call.
type Result struct {
	JobID          uuid.UUID
	UserID         uuid.UUID
	Jaccard        float64
	Cosine         float64
	Weighted       float64
	Overall        float64
	SkillCoverage  float64
	MatchingSkills []uuid.UUID
	MissingSkills  []uuid.UUID
}

// Compute scores a user skill set against a job skill set. Both sets empty is
// degenerate input: every score is 0, not an error. Matching and missing
// skill ids are ordered by job importance descending, ties broken by skill id
// ascending, so output is deterministic.
func Compute(userID, jobID uuid.UUID, userSkills []UserSkill, jobSkills []JobSkill) Result {
	res := Result{
		JobID:          jobID,
		UserID:         userID,
		MatchingSkills: make([]uuid.UUID, 0, len(jobSkills)),
		MissingSkills:  make([]uuid.UUID, 0, len(jobSkills)),
	}

	user := make(map[uuid.UUID]float64, len(userSkills))
	for _, us := range userSkills {
		if us.SkillID == uuid.Nil {
			continue
		}
		p := clamp(us.Proficiency, 0, 100)
		if cur, ok := user[us.SkillID]; !ok || p > cur {
			user[us.SkillID] = p
		}
	}

	job := make(map[uuid.UUID]JobSkill, len(jobSkills))
	for _, js := range jobSkills {
		if js.SkillID == uuid.Nil || js.Importance <= 0 {
			continue
		}
		js.Importance = clamp(js.Importance, 0, 1)
		js.RequiredProficiency = clamp(js.RequiredProficiency, 0, 100)
		job[js.SkillID] = js
	}

	if len(user) == 0 && len(job) == 0 {
		return res
	}

	union := make(map[uuid.UUID]struct{}, len(user)+len(job))
	for id := range user {
		union[id] = struct{}{}
	}
	for id := range job {
		union[id] = struct{}{}
	}

	intersection := 0
	for id := range job {
		if _, ok := user[id]; ok {
			intersection++
			res.MatchingSkills = append(res.MatchingSkills, id)
		} else {
			res.MissingSkills = append(res.MissingSkills, id)
		}
	}
	sortByImportance(res.MatchingSkills, job)
	sortByImportance(res.MissingSkills, job)

	if len(union) > 0 {
		res.Jaccard = float64(intersection) / float64(len(union))
	}

	res.Cosine = cosine(user, job, union)
	res.Weighted = weighted(user, job)
	res.SkillCoverage = coverage(user, job)
	res.Overall = WeightJaccard*res.Jaccard + WeightCosine*res.Cosine + WeightWeighted*res.Weighted

	return res
}

// cosine is the normalized dot product of the proficiency vector and the
// importance vector over the union of skill ids. Zero when either magnitude
// is zero.
func cosine(user map[uuid.UUID]float64, job map[uuid.UUID]JobSkill, union map[uuid.UUID]struct{}) float64 {
	var dot, userMag, jobMag float64
	for id := range union {
		u := user[id] / 100
		j := 0.0
		if js, ok := job[id]; ok {
			j = js.Importance
		}
		dot += u * j
		userMag += u * u
		jobMag += j * j
	}
	if userMag == 0 || jobMag == 0 {
		return 0
	}
	return dot / (math.Sqrt(userMag) * math.Sqrt(jobMag))
}

// weighted gives each job skill partial credit min(user/required, 1) scaled
// by importance. Skills the user lacks contribute 0; under-meeting is capped
// at full credit and never penalized below zero.
func weighted(user map[uuid.UUID]float64, job map[uuid.UUID]JobSkill) float64 {
	var sum, total float64
	for id, js := range job {
		total += js.Importance
		p, ok := user[id]
		if !ok {
			continue
		}
		credit := 1.0
		if js.RequiredProficiency > 0 {
			credit = math.Min(p/js.RequiredProficiency, 1)
		}
		sum += js.Importance * credit
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

// coverage is the importance-weighted fraction of job skills present in the
// user set. Unlike Jaccard it ignores user-only skills and weighs by
// importance.
func coverage(user map[uuid.UUID]float64, job map[uuid.UUID]JobSkill) float64 {
	var present, total float64
	for id, js := range job {
		total += js.Importance
		if _, ok := user[id]; ok {
			present += js.Importance
		}
	}
	if total == 0 {
		return 0
	}
	return present / total
}

func sortByImportance(ids []uuid.UUID, job map[uuid.UUID]JobSkill) {
	sort.Slice(ids, func(i, j int) bool {
		a, b := job[ids[i]], job[ids[j]]
		if a.Importance != b.Importance {
			return a.Importance > b.Importance
		}
		return ids[i].String() < ids[j].String()
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
