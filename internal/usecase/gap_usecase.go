package usecase

import (
	"context"
	"log"
	"time"

	"skill-gap/internal/domain/gap"
	"skill-gap/internal/domain/learning"
	"skill-gap/internal/domain/matching"
	"skill-gap/internal/domain/taxonomy"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

const gapsCacheTTL = 10 * time.Minute

type GapUsecase interface {
	AnalyzeGaps(ctx context.Context, userID, jobID uuid.UUID) (gap.Analysis, error)
}

type GapAnalysis struct {
	jobs       repository.JobRepository
	jobSkills  repository.JobSkillRepository
	userSkills repository.UserSkillRepository
	tax        *taxonomy.Taxonomy
	rec        *learning.Recommender
	cache      ResultCache
	logger     *log.Logger
}

func NewGapUsecase(
	jobs repository.JobRepository,
	jobSkills repository.JobSkillRepository,
	userSkills repository.UserSkillRepository,
	tax *taxonomy.Taxonomy,
	rec *learning.Recommender,
	cache ResultCache,
	logger *log.Logger,
) *GapAnalysis {
	return &GapAnalysis{
		jobs:       jobs,
		jobSkills:  jobSkills,
		userSkills: userSkills,
		tax:        tax,
		rec:        rec,
		cache:      cache,
		logger:     logger,
	}
}

func (u *GapAnalysis) AnalyzeGaps(ctx context.Context, userID, jobID uuid.UUID) (gap.Analysis, error) {
	if userID == uuid.Nil || jobID == uuid.Nil {
		return gap.Analysis{}, ErrJobNotFound
	}
	if u.tax == nil || u.tax.Len() == 0 {
		return gap.Analysis{}, taxonomy.ErrUnavailable
	}

	key := GapsCacheKey(userID, jobID)
	if u.cache != nil {
		var cached gap.Analysis
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return gap.Analysis{}, ErrInternal
	}
	if !exists {
		return gap.Analysis{}, ErrJobNotFound
	}

	us, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return gap.Analysis{}, ErrInternal
	}
	reqs, err := u.jobSkills.FindByJobID(ctx, jobID)
	if err != nil {
		return gap.Analysis{}, ErrInternal
	}

	engineUser := make([]matching.UserSkill, 0, len(us))
	for _, it := range us {
		engineUser = append(engineUser, matching.UserSkill{
			SkillID:     it.SkillID,
			Proficiency: it.Proficiency,
		})
	}
	engineJob := make([]matching.JobSkill, 0, len(reqs))
	for _, r := range reqs {
		engineJob = append(engineJob, matching.JobSkill{
			SkillID:             r.SkillID,
			Importance:          r.Importance,
			RequiredProficiency: r.RequiredProficiency,
		})
	}

	res := matching.Compute(userID, jobID, engineUser, engineJob)
	analysis := gap.Analyze(engineUser, engineJob, res, u.tax, u.rec)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, analysis, gapsCacheTTL)
	}
	return analysis, nil
}
