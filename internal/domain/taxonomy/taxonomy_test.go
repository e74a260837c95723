package taxonomy

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func testSkills() []Skill {
	return []Skill{
		{ID: uuid.New(), Name: "Go", Type: TypeHard, Category: "programming language", Aliases: []string{"golang"}},
		{ID: uuid.New(), Name: "PostgreSQL", Type: TypeHard, Category: "database", Aliases: []string{"postgres", "psql"}},
		{ID: uuid.New(), Name: "Communication", Type: TypeSoft, Category: "interpersonal"},
	}
}

func TestNew_Empty(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestNew_DuplicateID(t *testing.T) {
	id := uuid.New()
	_, err := New([]Skill{
		{ID: id, Name: "Go", Type: TypeHard},
		{ID: id, Name: "Rust", Type: TypeHard},
	})
	if !errors.Is(err, ErrDuplicateSkillID) {
		t.Fatalf("expected ErrDuplicateSkillID, got %v", err)
	}
}

func TestNew_EmptyName(t *testing.T) {
	_, err := New([]Skill{{ID: uuid.New(), Name: "  ", Type: TypeHard}})
	if !errors.Is(err, ErrEmptySkillName) {
		t.Fatalf("expected ErrEmptySkillName, got %v", err)
	}
}

func TestResolve_NameAliasAndCase(t *testing.T) {
	tax, err := New(testSkills())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	s, ok := tax.Resolve("GO")
	if !ok || s.Name != "Go" {
		t.Fatalf("expected Go by name, got %+v ok=%v", s, ok)
	}

	s, ok = tax.Resolve("Golang")
	if !ok || s.Name != "Go" {
		t.Fatalf("expected Go by alias, got %+v ok=%v", s, ok)
	}

	s, ok = tax.Resolve("psql")
	if !ok || s.Name != "PostgreSQL" {
		t.Fatalf("expected PostgreSQL by alias, got %+v ok=%v", s, ok)
	}

	if _, ok := tax.Resolve("cobol"); ok {
		t.Fatalf("expected miss for unknown skill")
	}
}

func TestByID(t *testing.T) {
	skills := testSkills()
	tax, err := New(skills)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	s, ok := tax.ByID(skills[1].ID)
	if !ok || s.Name != "PostgreSQL" {
		t.Fatalf("expected PostgreSQL, got %+v ok=%v", s, ok)
	}
	if _, ok := tax.ByID(uuid.New()); ok {
		t.Fatalf("expected miss for unknown id")
	}
	if tax.Len() != 3 {
		t.Fatalf("expected 3 skills, got %d", tax.Len())
	}
}
