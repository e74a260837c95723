package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"skill-gap/internal/domain/matching"
	"skill-gap/internal/domain/taxonomy"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInternal              = errors.New("internal error")
	ErrJobNotFound           = errors.New("job not found")
	ErrUserSkillProfileEmpty = errors.New("user skill profile is empty")
)

const matchCacheTTL = 10 * time.Minute

type MatchingUsecase interface {
	CalculateMatch(ctx context.Context, userID, jobID uuid.UUID) (matching.Result, error)
}

type Matching struct {
	jobs       repository.JobRepository
	jobSkills  repository.JobSkillRepository
	userSkills repository.UserSkillRepository
	matches    repository.JobMatchRepository
	tax        *taxonomy.Taxonomy
	cache      ResultCache
	logger     *log.Logger
}

func NewMatchingUsecase(
	jobs repository.JobRepository,
	jobSkills repository.JobSkillRepository,
	userSkills repository.UserSkillRepository,
	matches repository.JobMatchRepository,
	tax *taxonomy.Taxonomy,
	cache ResultCache,
	logger *log.Logger,
) *Matching {
	return &Matching{
		jobs:       jobs,
		jobSkills:  jobSkills,
		userSkills: userSkills,
		matches:    matches,
		tax:        tax,
		cache:      cache,
		logger:     logger,
	}
}

func (u *Matching) CalculateMatch(ctx context.Context, userID, jobID uuid.UUID) (matching.Result, error) {
	if userID == uuid.Nil || jobID == uuid.Nil {
		return matching.Result{}, ErrJobNotFound
	}

	key := MatchCacheKey(userID, jobID)
	if u.cache != nil {
		var cached matching.Result
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return matching.Result{}, ErrInternal
	}
	if !exists {
		return matching.Result{}, ErrJobNotFound
	}

	us, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return matching.Result{}, ErrInternal
	}
	if len(us) == 0 {
		return matching.Result{}, ErrUserSkillProfileEmpty
	}

	reqs, err := u.jobSkills.FindByJobID(ctx, jobID)
	if err != nil {
		return matching.Result{}, ErrInternal
	}

	engineUser := u.toEngineUserSkills(us)
	if len(engineUser) == 0 {
		return matching.Result{}, ErrUserSkillProfileEmpty
	}
	engineJob := u.toEngineJobSkills(reqs)

	res := matching.Compute(userID, jobID, engineUser, engineJob)

	if err := u.matches.Upsert(ctx, repository.JobMatchRecord{
		UserID:        userID,
		JobID:         jobID,
		Jaccard:       res.Jaccard,
		Cosine:        res.Cosine,
		Weighted:      res.Weighted,
		Overall:       res.Overall,
		SkillCoverage: res.SkillCoverage,
	}); err != nil && u.logger != nil {
		u.logger.Printf("[Matching] persist failed user=%s job=%s err=%v", userID, jobID, err)
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, res, matchCacheTTL)
	}
	return res, nil
}

// toEngineUserSkills drops skill ids the loaded taxonomy does not know.
func (u *Matching) toEngineUserSkills(us []repository.UserSkill) []matching.UserSkill {
	out := make([]matching.UserSkill, 0, len(us))
	for _, it := range us {
		if u.tax != nil {
			if _, ok := u.tax.ByID(it.SkillID); !ok {
				if u.logger != nil {
					u.logger.Printf("[Matching] skipping unknown user skill id=%s", it.SkillID)
				}
				continue
			}
		}
		out = append(out, matching.UserSkill{
			SkillID:     it.SkillID,
			Proficiency: it.Proficiency,
		})
	}
	return out
}

func (u *Matching) toEngineJobSkills(reqs []repository.JobSkillRequirement) []matching.JobSkill {
	out := make([]matching.JobSkill, 0, len(reqs))
	for _, r := range reqs {
		if u.tax != nil {
			if _, ok := u.tax.ByID(r.SkillID); !ok {
				if u.logger != nil {
					u.logger.Printf("[Matching] skipping unknown job skill id=%s", r.SkillID)
				}
				continue
			}
		}
		out = append(out, matching.JobSkill{
			SkillID:             r.SkillID,
			Importance:          r.Importance,
			RequiredProficiency: r.RequiredProficiency,
		})
	}
	return out
}
