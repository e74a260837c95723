package seeder

import (
	"context"
	"fmt"

	"skill-gap/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

type seedSkill struct {
	Name     string
	Type     string
	Category string
	Aliases  []string
}

var seedSkills = []seedSkill{
	{Name: "Python", Type: "hard", Category: "programming language", Aliases: []string{"python3", "py"}},
	{Name: "JavaScript", Type: "hard", Category: "programming language", Aliases: []string{"js", "ecmascript"}},
	{Name: "TypeScript", Type: "hard", Category: "programming language", Aliases: []string{"ts"}},
	{Name: "Go", Type: "hard", Category: "programming language", Aliases: []string{"golang"}},
	{Name: "Java", Type: "hard", Category: "programming language"},
	{Name: "C++", Type: "hard", Category: "programming language", Aliases: []string{"cpp"}},
	{Name: "C#", Type: "hard", Category: "programming language", Aliases: []string{"csharp", ".net"}},
	{Name: "SQL", Type: "hard", Category: "programming language"},
	{Name: "React", Type: "hard", Category: "framework", Aliases: []string{"reactjs", "react.js"}},
	{Name: "Node.js", Type: "hard", Category: "framework", Aliases: []string{"node", "nodejs"}},
	{Name: "Django", Type: "hard", Category: "framework"},
	{Name: "Spring Boot", Type: "hard", Category: "framework", Aliases: []string{"spring"}},
	{Name: "PostgreSQL", Type: "hard", Category: "database", Aliases: []string{"postgres", "psql"}},
	{Name: "MySQL", Type: "hard", Category: "database"},
	{Name: "MongoDB", Type: "hard", Category: "database", Aliases: []string{"mongo"}},
	{Name: "Redis", Type: "hard", Category: "database"},
	{Name: "Docker", Type: "hard", Category: "devops", Aliases: []string{"containers"}},
	{Name: "Kubernetes", Type: "hard", Category: "devops", Aliases: []string{"k8s"}},
	{Name: "AWS", Type: "hard", Category: "cloud", Aliases: []string{"amazon web services"}},
	{Name: "GCP", Type: "hard", Category: "cloud", Aliases: []string{"google cloud"}},
	{Name: "Machine Learning", Type: "hard", Category: "data", Aliases: []string{"ml"}},
	{Name: "Communication", Type: "soft", Category: "interpersonal"},
	{Name: "Leadership", Type: "soft", Category: "interpersonal", Aliases: []string{"team leadership"}},
	{Name: "Problem Solving", Type: "soft", Category: "cognitive"},
	{Name: "Teamwork", Type: "soft", Category: "interpersonal", Aliases: []string{"collaboration"}},
}

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "skill_type", "category", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "skill_aliases", "id", "skill_id", "alias"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range seedSkills {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, skill_type, category) VALUES (gen_random_uuid(), $1, $2, $3) ON CONFLICT (name) DO NOTHING`,
			it.Name, it.Type, it.Category,
		); err != nil {
			return err
		}

		for _, alias := range it.Aliases {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO skill_aliases (id, skill_id, alias)
				 SELECT gen_random_uuid(), s.id, $2 FROM skills s WHERE s.name = $1
				 ON CONFLICT (skill_id, alias) DO NOTHING`,
				it.Name, alias,
			); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
