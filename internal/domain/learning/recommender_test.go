package learning

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"skill-gap/internal/domain/taxonomy"
)

func newTestRecommender(t *testing.T) (*Recommender, map[string]taxonomy.Skill) {
	t.Helper()

	skills := []taxonomy.Skill{
		{ID: uuid.New(), Name: "Python", Type: taxonomy.TypeHard, Category: "programming language"},
		{ID: uuid.New(), Name: "Go", Type: taxonomy.TypeHard, Category: "programming language"},
		{ID: uuid.New(), Name: "PostgreSQL", Type: taxonomy.TypeHard, Category: "database"},
		{ID: uuid.New(), Name: "Docker", Type: taxonomy.TypeHard, Category: "devops"},
		{ID: uuid.New(), Name: "Leadership", Type: taxonomy.TypeSoft, Category: "soft skill"},
	}
	tax, err := taxonomy.New(skills)
	if err != nil {
		t.Fatalf("taxonomy.New: %v", err)
	}
	byName := make(map[string]taxonomy.Skill, len(skills))
	for _, s := range skills {
		byName[s.Name] = s
	}
	return NewRecommender(tax), byName
}

func TestResources_CuratedSkill(t *testing.T) {
	rec, byName := newTestRecommender(t)

	out := rec.Resources(byName["Python"])
	if len(out) < 2 {
		t.Fatalf("expected curated entry plus search fallback, got %+v", out)
	}
	if out[0].Provider != "Coursera" {
		t.Fatalf("expected the curated Coursera entry first, got %+v", out[0])
	}
	last := out[len(out)-1]
	if last.Type != "search" {
		t.Fatalf("expected trailing search resource, got %+v", last)
	}
}

func TestResources_CategoryFallback(t *testing.T) {
	rec, byName := newTestRecommender(t)

	// Go has no curated entry; the category catalog answers instead.
	out := rec.Resources(byName["Go"])
	if len(out) != 2 {
		t.Fatalf("expected category entry plus search fallback, got %+v", out)
	}
	if out[0].Provider != "Exercism" {
		t.Fatalf("expected the language-track entry, got %+v", out[0])
	}

	out = rec.Resources(byName["PostgreSQL"])
	if out[0].Provider != "Khan Academy" {
		t.Fatalf("expected the database course, got %+v", out[0])
	}
}

func TestResources_SoftSkillFallback(t *testing.T) {
	rec, byName := newTestRecommender(t)

	out := rec.Resources(byName["Leadership"])
	if len(out) != 2 {
		t.Fatalf("expected soft-skill entry plus search fallback, got %+v", out)
	}
	if out[0].Provider != "LinkedIn Learning" {
		t.Fatalf("expected the soft-skill course, got %+v", out[0])
	}
	if !strings.Contains(out[0].URL, "Leadership") {
		t.Fatalf("expected the skill name in the URL, got %s", out[0].URL)
	}
}

func TestResources_GenericFallbackOnly(t *testing.T) {
	rec, byName := newTestRecommender(t)

	// Docker: no curated entry, no category catalog, hard skill.
	out := rec.Resources(byName["Docker"])
	if len(out) != 1 {
		t.Fatalf("expected only the search fallback, got %+v", out)
	}
	if out[0].Type != "search" || !strings.Contains(out[0].URL, "google.com") {
		t.Fatalf("unexpected fallback resource: %+v", out[0])
	}
	if out[0].Title != "Learn Docker" {
		t.Fatalf("unexpected fallback title: %s", out[0].Title)
	}
}

func TestEstimateHours(t *testing.T) {
	rec, byName := newTestRecommender(t)

	cases := []struct {
		name     string
		skill    taxonomy.Skill
		user     float64
		required float64
		want     float64
	}{
		{"full language gap", byName["Go"], 0, 80, 80},
		{"half language gap", byName["Go"], 40, 80, 40},
		{"full database gap", byName["PostgreSQL"], 0, 60, 20},
		{"soft skill gap", byName["Leadership"], 0, 50, 15},
		{"uncatalogued hard skill", byName["Docker"], 0, 70, 40},
		{"no deficit", byName["Go"], 90, 80, 0},
		{"exact match", byName["Go"], 80, 80, 0},
	}
	for _, c := range cases {
		if got := rec.EstimateHours(c.skill, c.user, c.required); got != c.want {
			t.Fatalf("%s: expected %v hours, got %v", c.name, c.want, got)
		}
	}
}

func TestEstimateHours_MinimumFloor(t *testing.T) {
	rec, byName := newTestRecommender(t)

	// Deficit ratio 2/80 of the 80-hour base is under the floor.
	if got := rec.EstimateHours(byName["Go"], 78, 80); got != MinimumHours {
		t.Fatalf("expected floor of %v hours, got %v", float64(MinimumHours), got)
	}
}

func TestEstimateHours_ZeroRequired(t *testing.T) {
	rec, byName := newTestRecommender(t)

	// Required proficiency 0 means the full base applies.
	if got := rec.EstimateHours(byName["Go"], 0, 0); got != 80 {
		t.Fatalf("expected full base hours, got %v", got)
	}
}
