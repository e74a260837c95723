package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-gap/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrUserSkillNotFound = errors.New("skill not found")
)

type SkillSource string

const (
	SourceResume   SkillSource = "resume"
	SourceManual   SkillSource = "manual"
	SourceVerified SkillSource = "verified"
)

type UserSkill struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	SkillID         uuid.UUID
	Proficiency     float64
	Confidence      float64
	Source          SkillSource
	Verified        bool
	YearsExperience *float64
}

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
	FindByUserAndSkill(ctx context.Context, userID, skillID uuid.UUID) (UserSkill, error)
	Upsert(ctx context.Context, us UserSkill) (UserSkill, error)
	Delete(ctx context.Context, userID, skillID uuid.UUID) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, skill_id, COALESCE(proficiency, 0), COALESCE(confidence, 0),
		        COALESCE(source, 'manual'), COALESCE(verified, false), years_experience
		 FROM user_skills
		 WHERE user_id = $1
		 ORDER BY skill_id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserSkill, 0)
	for rows.Next() {
		var us UserSkill
		if err := rows.Scan(&us.ID, &us.UserID, &us.SkillID, &us.Proficiency, &us.Confidence, &us.Source, &us.Verified, &us.YearsExperience); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) FindByUserAndSkill(ctx context.Context, userID, skillID uuid.UUID) (UserSkill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, skill_id, COALESCE(proficiency, 0), COALESCE(confidence, 0),
		        COALESCE(source, 'manual'), COALESCE(verified, false), years_experience
		 FROM user_skills
		 WHERE user_id = $1 AND skill_id = $2`,
		userID, skillID,
	)

	var us UserSkill
	if err := row.Scan(&us.ID, &us.UserID, &us.SkillID, &us.Proficiency, &us.Confidence, &us.Source, &us.Verified, &us.YearsExperience); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return UserSkill{}, ErrUserSkillNotFound
		}
		return UserSkill{}, err
	}
	return us, nil
}

// Upsert applies the profile merge policy: an existing row is only replaced
// by a higher-confidence record, and explicitly verified rows are never
// overwritten by resume extraction.
func (r *PostgresUserSkillRepository) Upsert(ctx context.Context, us UserSkill) (UserSkill, error) {
	if us.ID == uuid.Nil {
		us.ID = uuid.New()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO user_skills (id, user_id, skill_id, proficiency, confidence, source, verified, years_experience)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 ON CONFLICT (user_id, skill_id) DO UPDATE SET
			proficiency = EXCLUDED.proficiency,
			confidence = EXCLUDED.confidence,
			source = EXCLUDED.source,
			verified = EXCLUDED.verified,
			years_experience = EXCLUDED.years_experience
		 WHERE user_skills.verified = false
		   AND user_skills.confidence <= EXCLUDED.confidence`,
		us.ID, us.UserID, us.SkillID, us.Proficiency, us.Confidence, us.Source, us.Verified, us.YearsExperience,
	)
	if err != nil {
		return UserSkill{}, err
	}

	return r.FindByUserAndSkill(ctx, us.UserID, us.SkillID)
}

func (r *PostgresUserSkillRepository) Delete(ctx context.Context, userID, skillID uuid.UUID) error {
	rowsAffected, err := r.db.Exec(ctx,
		`DELETE FROM user_skills WHERE user_id = $1 AND skill_id = $2`,
		userID, skillID,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserSkillNotFound
	}
	return nil
}
