package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"skill-gap/internal/domain/matching"
	"skill-gap/internal/domain/taxonomy"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoJobsFound = errors.New("no jobs found")
)

const (
	recommendationsCacheTTL = 10 * time.Minute
	rankingConcurrency      = 8
)

type JobRecommendationParams struct {
	Limit    int
	MinScore float64
}

type JobRecommendationItem struct {
	JobID         uuid.UUID   `json:"job_id"`
	Title         string      `json:"title"`
	Company       string      `json:"company"`
	Location      string      `json:"location"`
	Overall       float64     `json:"overall"`
	SkillCoverage float64     `json:"skill_coverage"`
	MissingSkills []uuid.UUID `json:"missing_skills"`
}

type JobRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, params JobRecommendationParams) ([]JobRecommendationItem, error)
}

type JobRecommendation struct {
	jobs         repository.JobRepository
	jobSkills    repository.JobSkillRepository
	userSkills   repository.UserSkillRepository
	tax          *taxonomy.Taxonomy
	catalogLimit int
	cache        ResultCache
	logger       *log.Logger
}

// catalogLimit bounds how many jobs a single ranking pass scores.
func NewJobRecommendationUsecase(
	jobs repository.JobRepository,
	jobSkills repository.JobSkillRepository,
	userSkills repository.UserSkillRepository,
	tax *taxonomy.Taxonomy,
	catalogLimit int,
	cache ResultCache,
	logger *log.Logger,
) *JobRecommendation {
	if catalogLimit <= 0 {
		catalogLimit = 50
	}
	return &JobRecommendation{
		jobs:         jobs,
		jobSkills:    jobSkills,
		userSkills:   userSkills,
		tax:          tax,
		catalogLimit: catalogLimit,
		cache:        cache,
		logger:       logger,
	}
}

func (u *JobRecommendation) GetRecommendations(ctx context.Context, userID uuid.UUID, params JobRecommendationParams) ([]JobRecommendationItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUserSkillProfileEmpty
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	minScore := params.MinScore
	if minScore < 0 {
		minScore = 0
	}

	key := RecommendationsCacheKey(userID, limit)
	if u.cache != nil && minScore == 0 {
		var cached []JobRecommendationItem
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	us, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	if len(us) == 0 {
		return nil, ErrUserSkillProfileEmpty
	}

	jobs, err := u.jobs.ListJobs(ctx, u.catalogLimit, 0)
	if err != nil {
		return nil, ErrInternal
	}
	if len(jobs) == 0 {
		return nil, ErrNoJobsFound
	}

	jobIDs := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		if j.ID == uuid.Nil {
			continue
		}
		jobIDs = append(jobIDs, j.ID)
	}

	reqsByJobID, err := u.jobSkills.FindByJobIDs(ctx, jobIDs)
	if err != nil {
		return nil, ErrInternal
	}

	engineUser := make([]matching.UserSkill, 0, len(us))
	for _, it := range us {
		if u.tax != nil {
			if _, ok := u.tax.ByID(it.SkillID); !ok {
				if u.logger != nil {
					u.logger.Printf("[Recommendations] skipping unknown user skill id=%s", it.SkillID)
				}
				continue
			}
		}
		engineUser = append(engineUser, matching.UserSkill{
			SkillID:     it.SkillID,
			Proficiency: it.Proficiency,
		})
	}
	if len(engineUser) == 0 {
		return nil, ErrUserSkillProfileEmpty
	}

	var mu sync.Mutex
	out := make([]JobRecommendationItem, 0, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rankingConcurrency)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			reqs := reqsByJobID[j.ID]
			engineJob := make([]matching.JobSkill, 0, len(reqs))
			for _, r := range reqs {
				if u.tax != nil {
					if _, ok := u.tax.ByID(r.SkillID); !ok {
						if u.logger != nil {
							u.logger.Printf("[Recommendations] skipping unknown job skill id=%s job=%s", r.SkillID, j.ID)
						}
						continue
					}
				}
				engineJob = append(engineJob, matching.JobSkill{
					SkillID:             r.SkillID,
					Importance:          r.Importance,
					RequiredProficiency: r.RequiredProficiency,
				})
			}

			res := matching.Compute(userID, j.ID, engineUser, engineJob)
			if res.Overall < minScore {
				return nil
			}

			mu.Lock()
			out = append(out, JobRecommendationItem{
				JobID:         j.ID,
				Title:         j.Title,
				Company:       j.Company,
				Location:      j.Location,
				Overall:       res.Overall,
				SkillCoverage: res.SkillCoverage,
				MissingSkills: res.MissingSkills,
			})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, ErrInternal
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Overall != out[j].Overall {
			return out[i].Overall > out[j].Overall
		}
		return out[i].JobID.String() < out[j].JobID.String()
	})

	if len(out) > limit {
		out = out[:limit]
	}
	if len(out) == 0 {
		return nil, ErrNoJobsFound
	}

	if u.cache != nil && minScore == 0 {
		_ = u.cache.SetJSON(ctx, key, out, recommendationsCacheTTL)
	}
	return out, nil
}
