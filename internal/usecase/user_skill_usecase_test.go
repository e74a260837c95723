package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-gap/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestAddUserSkill_Manual(t *testing.T) {
	tax, byName := usecaseTaxonomy(t)
	repo := &mockUserSkillRepo{}
	cache := newMockResultCache()
	uc := NewUserSkillUsecase(repo, tax, cache, nil)

	userID := uuid.New()
	item, err := uc.AddUserSkill(context.Background(), userID, AddUserSkillInput{
		SkillID:     byName["Go"].ID,
		Proficiency: 75,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.SkillName != "Go" || item.Category != "programming language" {
		t.Fatalf("expected taxonomy enrichment, got %+v", item)
	}
	if item.Source != string(repository.SourceManual) {
		t.Fatalf("expected manual source, got %s", item.Source)
	}
	if len(repo.upserted) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(repo.upserted))
	}
	if repo.upserted[0].Confidence != 1.0 {
		t.Fatalf("manual entries carry full confidence, got %v", repo.upserted[0].Confidence)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != userID.String() {
		t.Fatalf("expected cache invalidation for the user, got %v", cache.invalidated)
	}
}

func TestAddUserSkill_Verified(t *testing.T) {
	tax, byName := usecaseTaxonomy(t)
	repo := &mockUserSkillRepo{}
	uc := NewUserSkillUsecase(repo, tax, nil, nil)

	item, err := uc.AddUserSkill(context.Background(), uuid.New(), AddUserSkillInput{
		SkillID:     byName["Python"].ID,
		Proficiency: 90,
		Verified:    true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.Source != string(repository.SourceVerified) || !item.Verified {
		t.Fatalf("expected verified entry, got %+v", item)
	}
}

func TestAddUserSkill_Validation(t *testing.T) {
	tax, byName := usecaseTaxonomy(t)
	uc := NewUserSkillUsecase(&mockUserSkillRepo{}, tax, nil, nil)
	ctx := context.Background()
	goID := byName["Go"].ID

	if _, err := uc.AddUserSkill(ctx, uuid.New(), AddUserSkillInput{SkillID: uuid.Nil, Proficiency: 50}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("nil skill id: expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.AddUserSkill(ctx, uuid.New(), AddUserSkillInput{SkillID: goID, Proficiency: 101}); !errors.Is(err, ErrInvalidProficiency) {
		t.Fatalf("proficiency 101: expected ErrInvalidProficiency, got %v", err)
	}
	if _, err := uc.AddUserSkill(ctx, uuid.New(), AddUserSkillInput{SkillID: goID, Proficiency: -1}); !errors.Is(err, ErrInvalidProficiency) {
		t.Fatalf("proficiency -1: expected ErrInvalidProficiency, got %v", err)
	}
	neg := -2.0
	if _, err := uc.AddUserSkill(ctx, uuid.New(), AddUserSkillInput{SkillID: goID, Proficiency: 50, YearsExperience: &neg}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative years: expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.AddUserSkill(ctx, uuid.New(), AddUserSkillInput{SkillID: uuid.New(), Proficiency: 50}); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("unknown skill: expected ErrSkillNotFound, got %v", err)
	}
}

func TestAddUserSkill_ForeignKeyViolation(t *testing.T) {
	tax, byName := usecaseTaxonomy(t)
	repo := &mockUserSkillRepo{upsertErr: &pgconn.PgError{Code: "23503"}}
	uc := NewUserSkillUsecase(repo, tax, nil, nil)

	if _, err := uc.AddUserSkill(context.Background(), uuid.New(), AddUserSkillInput{SkillID: byName["Go"].ID, Proficiency: 50}); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound on fk violation, got %v", err)
	}
}

func TestRemoveUserSkill(t *testing.T) {
	tax, byName := usecaseTaxonomy(t)
	repo := &mockUserSkillRepo{}
	cache := newMockResultCache()
	uc := NewUserSkillUsecase(repo, tax, cache, nil)

	userID, goID := uuid.New(), byName["Go"].ID
	if err := uc.RemoveUserSkill(context.Background(), userID, goID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != goID {
		t.Fatalf("expected delete of %s, got %v", goID, repo.deleted)
	}
	if len(cache.invalidated) != 1 {
		t.Fatalf("expected cache invalidation, got %v", cache.invalidated)
	}
}

func TestRemoveUserSkill_NotFound(t *testing.T) {
	tax, _ := usecaseTaxonomy(t)
	repo := &mockUserSkillRepo{deleteErr: repository.ErrUserSkillNotFound}
	uc := NewUserSkillUsecase(repo, tax, nil, nil)

	if err := uc.RemoveUserSkill(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestListUserSkills(t *testing.T) {
	tax, byName := usecaseTaxonomy(t)
	userID := uuid.New()
	repo := &mockUserSkillRepo{skills: []repository.UserSkill{
		{UserID: userID, SkillID: byName["Go"].ID, Proficiency: 70, Confidence: 0.9, Source: repository.SourceResume},
		{UserID: userID, SkillID: byName["PostgreSQL"].ID, Proficiency: 60, Confidence: 1.0, Source: repository.SourceManual},
	}}
	uc := NewUserSkillUsecase(repo, tax, nil, nil)

	items, err := uc.ListUserSkills(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].SkillName != "Go" || items[1].SkillName != "PostgreSQL" {
		t.Fatalf("expected taxonomy names, got %+v", items)
	}
}
