package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"skill-gap/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobMatchNotFound = errors.New("match result not found")
)

type JobMatchRecord struct {
	UserID        uuid.UUID
	JobID         uuid.UUID
	Jaccard       float64
	Cosine        float64
	Weighted      float64
	Overall       float64
	SkillCoverage float64
	MatchedAt     time.Time
}

type JobMatchRepository interface {
	Upsert(ctx context.Context, m JobMatchRecord) error
	FindByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (JobMatchRecord, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]JobMatchRecord, error)
}

type PostgresJobMatchRepository struct {
	db database.DB
}

func NewPostgresJobMatchRepository(db database.DB) *PostgresJobMatchRepository {
	return &PostgresJobMatchRepository{db: db}
}

func (r *PostgresJobMatchRepository) Upsert(ctx context.Context, m JobMatchRecord) error {
	if m.UserID == uuid.Nil || m.JobID == uuid.Nil {
		return nil
	}
	if m.MatchedAt.IsZero() {
		m.MatchedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO job_matches (id, user_id, job_id, jaccard_score, cosine_score, weighted_score, overall_score, skill_coverage, matched_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 ON CONFLICT (user_id, job_id) DO UPDATE SET
			jaccard_score = EXCLUDED.jaccard_score,
			cosine_score = EXCLUDED.cosine_score,
			weighted_score = EXCLUDED.weighted_score,
			overall_score = EXCLUDED.overall_score,
			skill_coverage = EXCLUDED.skill_coverage,
			matched_at = EXCLUDED.matched_at`,
		uuid.New(),
		m.UserID,
		m.JobID,
		m.Jaccard,
		m.Cosine,
		m.Weighted,
		m.Overall,
		m.SkillCoverage,
		m.MatchedAt,
	)
	return err
}

func (r *PostgresJobMatchRepository) FindByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (JobMatchRecord, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, job_id, jaccard_score, cosine_score, weighted_score, overall_score, skill_coverage, matched_at
		 FROM job_matches
		 WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	)

	var m JobMatchRecord
	if err := row.Scan(&m.UserID, &m.JobID, &m.Jaccard, &m.Cosine, &m.Weighted, &m.Overall, &m.SkillCoverage, &m.MatchedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return JobMatchRecord{}, ErrJobMatchNotFound
		}
		return JobMatchRecord{}, err
	}
	return m, nil
}

func (r *PostgresJobMatchRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]JobMatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(ctx,
		`SELECT user_id, job_id, jaccard_score, cosine_score, weighted_score, overall_score, skill_coverage, matched_at
		 FROM job_matches
		 WHERE user_id = $1
		 ORDER BY overall_score DESC, job_id ASC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobMatchRecord, 0)
	for rows.Next() {
		var m JobMatchRecord
		if err := rows.Scan(&m.UserID, &m.JobID, &m.Jaccard, &m.Cosine, &m.Weighted, &m.Overall, &m.SkillCoverage, &m.MatchedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
