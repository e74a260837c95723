package repository

import (
	"context"

	"skill-gap/internal/database"
	"skill-gap/internal/domain/taxonomy"

	"github.com/google/uuid"
)

// TaxonomyRepository supplies the skill reference data loaded once at
// startup.
type TaxonomyRepository interface {
	LoadSkills(ctx context.Context) ([]taxonomy.Skill, error)
}

type PostgresTaxonomyRepository struct {
	db database.DB
}

func NewPostgresTaxonomyRepository(db database.DB) *PostgresTaxonomyRepository {
	return &PostgresTaxonomyRepository{db: db}
}

func (r *PostgresTaxonomyRepository) LoadSkills(ctx context.Context) ([]taxonomy.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, COALESCE(skill_type, 'hard'), COALESCE(category, '')
		 FROM skills
		 ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]taxonomy.Skill, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			s  taxonomy.Skill
			st string
		)
		if err := rows.Scan(&s.ID, &s.Name, &st, &s.Category); err != nil {
			return nil, err
		}
		s.Type = taxonomy.SkillType(st)
		index[s.ID] = len(out)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	aliasRows, err := r.db.Query(ctx, `SELECT skill_id, alias FROM skill_aliases`)
	if err != nil {
		return nil, err
	}
	defer aliasRows.Close()

	for aliasRows.Next() {
		var (
			id    uuid.UUID
			alias string
		)
		if err := aliasRows.Scan(&id, &alias); err != nil {
			return nil, err
		}
		if i, ok := index[id]; ok {
			out[i].Aliases = append(out[i].Aliases, alias)
		}
	}
	if err := aliasRows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
