package repository

import (
	"context"

	"skill-gap/internal/database"

	"github.com/google/uuid"
)

type JobSkillRequirement struct {
	JobID               uuid.UUID
	SkillID             uuid.UUID
	SkillName           string
	Importance          float64
	RequiredProficiency float64
}

type JobSkillRepository interface {
	FindByJobID(ctx context.Context, jobID uuid.UUID) ([]JobSkillRequirement, error)
	FindByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID][]JobSkillRequirement, error)
}

type PostgresJobSkillRepository struct {
	db database.DB
}

func NewPostgresJobSkillRepository(db database.DB) *PostgresJobSkillRepository {
	return &PostgresJobSkillRepository{db: db}
}

func (r *PostgresJobSkillRepository) FindByJobID(ctx context.Context, jobID uuid.UUID) ([]JobSkillRequirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT js.job_id, js.skill_id, s.name, COALESCE(js.importance, 0), COALESCE(js.required_proficiency, 0)
		 FROM job_skills js
		 JOIN skills s ON s.id = js.skill_id
		 WHERE js.job_id = $1
		 ORDER BY js.importance DESC, s.name ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobSkillRows(rows)
}

func (r *PostgresJobSkillRepository) FindByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID][]JobSkillRequirement, error) {
	out := make(map[uuid.UUID][]JobSkillRequirement, len(jobIDs))
	if len(jobIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT js.job_id, js.skill_id, s.name, COALESCE(js.importance, 0), COALESCE(js.required_proficiency, 0)
		 FROM job_skills js
		 JOIN skills s ON s.id = js.skill_id
		 WHERE js.job_id = ANY($1)
		 ORDER BY js.job_id, js.importance DESC, s.name ASC`,
		jobIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all, err := scanJobSkillRows(rows)
	if err != nil {
		return nil, err
	}
	for _, it := range all {
		out[it.JobID] = append(out[it.JobID], it)
	}
	return out, nil
}

func scanJobSkillRows(rows database.Rows) ([]JobSkillRequirement, error) {
	out := make([]JobSkillRequirement, 0)
	for rows.Next() {
		var it JobSkillRequirement
		if err := rows.Scan(&it.JobID, &it.SkillID, &it.SkillName, &it.Importance, &it.RequiredProficiency); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
