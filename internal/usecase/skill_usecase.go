package usecase

import (
	"context"
	"strings"

	"skill-gap/internal/domain/taxonomy"

	"github.com/google/uuid"
)

type SkillItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Category string    `json:"category"`
	Aliases  []string  `json:"aliases,omitempty"`
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
	ResolveSkill(ctx context.Context, name string) (SkillItem, error)
}

type Skill struct {
	tax *taxonomy.Taxonomy
}

func NewSkillUsecase(tax *taxonomy.Taxonomy) *Skill {
	return &Skill{tax: tax}
}

func (u *Skill) ListSkills(_ context.Context) ([]SkillItem, error) {
	if u.tax == nil || u.tax.Len() == 0 {
		return nil, taxonomy.ErrUnavailable
	}

	skills := u.tax.Skills()
	out := make([]SkillItem, 0, len(skills))
	for _, s := range skills {
		out = append(out, toSkillItem(s))
	}
	return out, nil
}

// ResolveSkill looks a name up by canonical name first, then by alias.
func (u *Skill) ResolveSkill(_ context.Context, name string) (SkillItem, error) {
	if u.tax == nil || u.tax.Len() == 0 {
		return SkillItem{}, taxonomy.ErrUnavailable
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return SkillItem{}, ErrInvalidInput
	}

	s, ok := u.tax.Resolve(name)
	if !ok {
		return SkillItem{}, ErrSkillNotFound
	}
	return toSkillItem(s), nil
}

func toSkillItem(s taxonomy.Skill) SkillItem {
	return SkillItem{
		ID:       s.ID,
		Name:     s.Name,
		Type:     string(s.Type),
		Category: s.Category,
		Aliases:  s.Aliases,
	}
}
