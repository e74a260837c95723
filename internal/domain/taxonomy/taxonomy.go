package taxonomy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type SkillType string

const (
	TypeHard SkillType = "hard"
	TypeSoft SkillType = "soft"
)

// Skill is immutable reference data. Loaded once at startup and shared
// read-only by every component.
type Skill struct {
	ID       uuid.UUID
	Name     string
	Type     SkillType
	Category string
	Aliases  []string
}

var (
	ErrUnavailable      = errors.New("skill taxonomy not loaded")
	ErrDuplicateSkillID = errors.New("duplicate skill id")
	ErrEmptySkillName   = errors.New("empty skill name")
)

// Taxonomy indexes the skill reference set by id, canonical name and alias.
// It is never mutated after New returns, so concurrent reads need no locking.
type Taxonomy struct {
	skills  []Skill
	byID    map[uuid.UUID]Skill
	byName  map[string]uuid.UUID
	byAlias map[string]uuid.UUID
}

func New(skills []Skill) (*Taxonomy, error) {
	if len(skills) == 0 {
		return nil, ErrUnavailable
	}

	t := &Taxonomy{
		skills:  make([]Skill, 0, len(skills)),
		byID:    make(map[uuid.UUID]Skill, len(skills)),
		byName:  make(map[string]uuid.UUID, len(skills)),
		byAlias: make(map[string]uuid.UUID),
	}

	for _, s := range skills {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, ErrEmptySkillName
		}
		if _, exists := t.byID[s.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSkillID, s.ID)
		}
		if s.Type != TypeSoft {
			s.Type = TypeHard
		}
		s.Name = name

		t.byID[s.ID] = s
		t.byName[fold(name)] = s.ID
		for _, a := range s.Aliases {
			a = strings.TrimSpace(a)
			if a == "" {
				continue
			}
			t.byAlias[fold(a)] = s.ID
		}
		t.skills = append(t.skills, s)
	}

	return t, nil
}

func (t *Taxonomy) Len() int {
	if t == nil {
		return 0
	}
	return len(t.skills)
}

// Skills returns the full reference set. Callers must treat the slice as
// read-only.
func (t *Taxonomy) Skills() []Skill {
	if t == nil {
		return nil
	}
	return t.skills
}

func (t *Taxonomy) ByID(id uuid.UUID) (Skill, bool) {
	if t == nil {
		return Skill{}, false
	}
	s, ok := t.byID[id]
	return s, ok
}

// ByName resolves a canonical skill name, case-insensitively.
func (t *Taxonomy) ByName(name string) (Skill, bool) {
	if t == nil {
		return Skill{}, false
	}
	id, ok := t.byName[fold(name)]
	if !ok {
		return Skill{}, false
	}
	return t.byID[id], true
}

// ByAlias resolves a synonym or abbreviation from the alias table.
func (t *Taxonomy) ByAlias(alias string) (Skill, bool) {
	if t == nil {
		return Skill{}, false
	}
	id, ok := t.byAlias[fold(alias)]
	if !ok {
		return Skill{}, false
	}
	return t.byID[id], true
}

// Resolve tries the canonical name first, then the alias table.
func (t *Taxonomy) Resolve(term string) (Skill, bool) {
	if s, ok := t.ByName(term); ok {
		return s, true
	}
	return t.ByAlias(term)
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
