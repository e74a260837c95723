package usecase

import (
	"context"

	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

type JobListParams struct {
	Limit  int
	Offset int
}

type JobRequirementItem struct {
	SkillID             uuid.UUID `json:"skill_id"`
	SkillName           string    `json:"skill_name"`
	Importance          float64   `json:"importance"`
	RequiredProficiency float64   `json:"required_proficiency"`
}

type JobListItem struct {
	JobID        uuid.UUID            `json:"job_id"`
	Title        string               `json:"title"`
	Company      string               `json:"company"`
	Location     string               `json:"location"`
	Requirements []JobRequirementItem `json:"requirements"`
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]JobListItem, error)
}

type JobList struct {
	jobs      repository.JobRepository
	jobSkills repository.JobSkillRepository
}

func NewJobListUsecase(jobs repository.JobRepository, jobSkills repository.JobSkillRepository) *JobList {
	return &JobList{jobs: jobs, jobSkills: jobSkills}
}

func (u *JobList) ListJobs(ctx context.Context, params JobListParams) ([]JobListItem, error) {
	jobs, err := u.jobs.ListJobs(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, ErrInternal
	}

	ids := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	reqsByJobID, err := u.jobSkills.FindByJobIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]JobListItem, 0, len(jobs))
	for _, j := range jobs {
		reqs := reqsByJobID[j.ID]
		items := make([]JobRequirementItem, 0, len(reqs))
		for _, r := range reqs {
			items = append(items, JobRequirementItem{
				SkillID:             r.SkillID,
				SkillName:           r.SkillName,
				Importance:          r.Importance,
				RequiredProficiency: r.RequiredProficiency,
			})
		}
		out = append(out, JobListItem{
			JobID:        j.ID,
			Title:        j.Title,
			Company:      j.Company,
			Location:     j.Location,
			Requirements: items,
		})
	}
	return out, nil
}
