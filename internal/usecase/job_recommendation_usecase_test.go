package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

func recommendationFixture(userID uuid.UUID) (*mockJobRepo, *mockJobSkillRepo, *mockUserSkillRepo, uuid.UUID, uuid.UUID) {
	skillID := uuid.New()
	strongJob, weakJob := uuid.New(), uuid.New()

	jobs := &mockJobRepo{jobs: []repository.Job{
		{ID: weakJob, Title: "Data Engineer", Company: "Nordstack"},
		{ID: strongJob, Title: "Backend Engineer", Company: "Gapline Labs"},
	}}
	jobSkills := &mockJobSkillRepo{byJob: map[uuid.UUID][]repository.JobSkillRequirement{
		strongJob: {{JobID: strongJob, SkillID: skillID, Importance: 1, RequiredProficiency: 50}},
		weakJob: {
			{JobID: weakJob, SkillID: skillID, Importance: 0.2, RequiredProficiency: 90},
			{JobID: weakJob, SkillID: uuid.New(), Importance: 0.8, RequiredProficiency: 80},
		},
	}}
	userSkills := &mockUserSkillRepo{skills: []repository.UserSkill{
		{UserID: userID, SkillID: skillID, Proficiency: 90},
	}}
	return jobs, jobSkills, userSkills, strongJob, weakJob
}

func TestGetRecommendations_RankedByScore(t *testing.T) {
	userID := uuid.New()
	jobs, jobSkills, userSkills, strongJob, weakJob := recommendationFixture(userID)
	cache := newMockResultCache()

	uc := NewJobRecommendationUsecase(jobs, jobSkills, userSkills, nil, 0, cache, nil)

	out, err := uc.GetRecommendations(context.Background(), userID, JobRecommendationParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(out))
	}
	if out[0].JobID != strongJob || out[1].JobID != weakJob {
		t.Fatalf("expected the fully matched job first, got %v then %v", out[0].JobID, out[1].JobID)
	}
	if out[0].Overall <= out[1].Overall {
		t.Fatalf("ordering does not follow score: %v vs %v", out[0].Overall, out[1].Overall)
	}
	if len(out[1].MissingSkills) != 1 {
		t.Fatalf("expected one missing skill on the weak job, got %v", out[1].MissingSkills)
	}
	if _, ok := cache.store[RecommendationsCacheKey(userID, 20)]; !ok {
		t.Fatalf("expected the default-limit result to be cached")
	}
}

func TestGetRecommendations_MinScoreFilters(t *testing.T) {
	userID := uuid.New()
	jobs, jobSkills, userSkills, strongJob, _ := recommendationFixture(userID)
	cache := newMockResultCache()

	uc := NewJobRecommendationUsecase(jobs, jobSkills, userSkills, nil, 0, cache, nil)

	out, err := uc.GetRecommendations(context.Background(), userID, JobRecommendationParams{MinScore: 0.9})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0].JobID != strongJob {
		t.Fatalf("expected only the strong match, got %+v", out)
	}
	// Filtered result sets are not cached.
	if len(cache.store) != 0 {
		t.Fatalf("min-score queries must bypass the cache, got %v", cache.store)
	}
}

func TestGetRecommendations_AllFilteredOut(t *testing.T) {
	userID := uuid.New()
	jobs, jobSkills, userSkills, _, _ := recommendationFixture(userID)

	uc := NewJobRecommendationUsecase(jobs, jobSkills, userSkills, nil, 0, nil, nil)

	if _, err := uc.GetRecommendations(context.Background(), userID, JobRecommendationParams{MinScore: 1.1}); !errors.Is(err, ErrNoJobsFound) {
		t.Fatalf("expected ErrNoJobsFound, got %v", err)
	}
}

func TestGetRecommendations_LimitTruncates(t *testing.T) {
	userID := uuid.New()
	jobs, jobSkills, userSkills, strongJob, _ := recommendationFixture(userID)

	uc := NewJobRecommendationUsecase(jobs, jobSkills, userSkills, nil, 0, nil, nil)

	out, err := uc.GetRecommendations(context.Background(), userID, JobRecommendationParams{Limit: 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0].JobID != strongJob {
		t.Fatalf("expected the top job only, got %+v", out)
	}
}

func TestGetRecommendations_UnknownSkillReferenceSkipped(t *testing.T) {
	tax, byName := usecaseTaxonomy(t)
	userID, jobID := uuid.New(), uuid.New()
	goID := byName["Go"].ID

	jobs := &mockJobRepo{jobs: []repository.Job{{ID: jobID, Title: "Backend Engineer"}}}
	jobSkills := &mockJobSkillRepo{byJob: map[uuid.UUID][]repository.JobSkillRequirement{
		jobID: {
			{JobID: jobID, SkillID: goID, Importance: 1, RequiredProficiency: 50},
			{JobID: jobID, SkillID: uuid.New(), Importance: 1, RequiredProficiency: 50}, // not in the taxonomy
		},
	}}
	userSkills := &mockUserSkillRepo{skills: []repository.UserSkill{
		{UserID: userID, SkillID: goID, Proficiency: 80},
		{UserID: userID, SkillID: uuid.New(), Proficiency: 50}, // not in the taxonomy
	}}
	uc := NewJobRecommendationUsecase(jobs, jobSkills, userSkills, tax, 0, nil, nil)

	out, err := uc.GetRecommendations(context.Background(), userID, JobRecommendationParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected one recommendation, got %d", len(out))
	}
	if math.Abs(out[0].Overall-1) > 1e-9 {
		t.Fatalf("expected unknown ids dropped on both sides and a perfect score, got %+v", out[0])
	}
	if len(out[0].MissingSkills) != 0 {
		t.Fatalf("expected no missing skills after dropping unknown ids, got %v", out[0].MissingSkills)
	}
}

func TestGetRecommendations_EmptyProfile(t *testing.T) {
	jobs := &mockJobRepo{jobs: []repository.Job{{ID: uuid.New()}}}
	uc := NewJobRecommendationUsecase(jobs, &mockJobSkillRepo{}, &mockUserSkillRepo{}, nil, 0, nil, nil)

	if _, err := uc.GetRecommendations(context.Background(), uuid.New(), JobRecommendationParams{}); !errors.Is(err, ErrUserSkillProfileEmpty) {
		t.Fatalf("expected ErrUserSkillProfileEmpty, got %v", err)
	}
}

func TestGetRecommendations_NoJobs(t *testing.T) {
	userID := uuid.New()
	userSkills := &mockUserSkillRepo{skills: []repository.UserSkill{
		{UserID: userID, SkillID: uuid.New(), Proficiency: 50},
	}}
	uc := NewJobRecommendationUsecase(&mockJobRepo{}, &mockJobSkillRepo{}, userSkills, nil, 0, nil, nil)

	if _, err := uc.GetRecommendations(context.Background(), userID, JobRecommendationParams{}); !errors.Is(err, ErrNoJobsFound) {
		t.Fatalf("expected ErrNoJobsFound, got %v", err)
	}
}

func TestGetRecommendations_CacheHit(t *testing.T) {
	userID := uuid.New()
	cache := newMockResultCache()
	seeded := []JobRecommendationItem{{JobID: uuid.New(), Title: "Cached Job", Overall: 0.7}}
	if err := cache.SetJSON(context.Background(), RecommendationsCacheKey(userID, 20), seeded, recommendationsCacheTTL); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	userSkills := &mockUserSkillRepo{findErr: errors.New("db down")}
	uc := NewJobRecommendationUsecase(&mockJobRepo{listErr: errors.New("db down")}, &mockJobSkillRepo{}, userSkills, nil, 0, cache, nil)

	out, err := uc.GetRecommendations(context.Background(), userID, JobRecommendationParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0].Title != "Cached Job" {
		t.Fatalf("expected cached recommendations, got %+v", out)
	}
}
