package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-gap/internal/domain/taxonomy"
)

func TestListSkills(t *testing.T) {
	tax, _ := usecaseTaxonomy(t)
	uc := NewSkillUsecase(tax)

	items, err := uc.ListSkills(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != tax.Len() {
		t.Fatalf("expected %d skills, got %d", tax.Len(), len(items))
	}
}

func TestListSkills_Unavailable(t *testing.T) {
	uc := NewSkillUsecase(nil)
	if _, err := uc.ListSkills(context.Background()); !errors.Is(err, taxonomy.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestResolveSkill(t *testing.T) {
	tax, _ := usecaseTaxonomy(t)
	uc := NewSkillUsecase(tax)
	ctx := context.Background()

	byName, err := uc.ResolveSkill(ctx, "go")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if byName.Name != "Go" {
		t.Fatalf("expected canonical Go, got %+v", byName)
	}

	byAlias, err := uc.ResolveSkill(ctx, "golang")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if byAlias.ID != byName.ID {
		t.Fatalf("alias resolved to a different skill: %+v", byAlias)
	}

	if _, err := uc.ResolveSkill(ctx, "cobol"); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
	if _, err := uc.ResolveSkill(ctx, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
}
