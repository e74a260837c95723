package seeder

import (
	"context"
	"fmt"

	"skill-gap/internal/database"
)

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

type seedJobSkill struct {
	Skill               string
	Importance          float64
	RequiredProficiency float64
}

type seedJob struct {
	Title       string
	Company     string
	Location    string
	Description string
	Skills      []seedJobSkill
}

var seedJobs = []seedJob{
	{
		Title:       "Backend Engineer (Go)",
		Company:     "Gapline Labs",
		Location:    "Remote",
		Description: "Build and maintain Go services, REST APIs and PostgreSQL-backed systems.",
		Skills: []seedJobSkill{
			{Skill: "Go", Importance: 0.9, RequiredProficiency: 70},
			{Skill: "PostgreSQL", Importance: 0.7, RequiredProficiency: 60},
			{Skill: "Docker", Importance: 0.5, RequiredProficiency: 50},
			{Skill: "Communication", Importance: 0.4, RequiredProficiency: 50},
		},
	},
	{
		Title:       "Full Stack Developer",
		Company:     "Brightquery",
		Location:    "Berlin, DE",
		Description: "React frontend with a Node.js API layer over MongoDB.",
		Skills: []seedJobSkill{
			{Skill: "JavaScript", Importance: 0.9, RequiredProficiency: 70},
			{Skill: "React", Importance: 0.8, RequiredProficiency: 65},
			{Skill: "Node.js", Importance: 0.7, RequiredProficiency: 60},
			{Skill: "MongoDB", Importance: 0.5, RequiredProficiency: 50},
		},
	},
	{
		Title:       "Data Engineer",
		Company:     "Nordstack",
		Location:    "Oslo, NO",
		Description: "Python pipelines feeding analytical stores on AWS.",
		Skills: []seedJobSkill{
			{Skill: "Python", Importance: 0.9, RequiredProficiency: 75},
			{Skill: "SQL", Importance: 0.8, RequiredProficiency: 70},
			{Skill: "AWS", Importance: 0.6, RequiredProficiency: 55},
			{Skill: "Machine Learning", Importance: 0.3, RequiredProficiency: 40},
		},
	},
}

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "title", "company", "location", "description", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "job_skills", "id", "job_id", "skill_id", "importance", "required_proficiency"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, j := range seedJobs {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO jobs (id, title, company, location, description)
			 SELECT gen_random_uuid(), $1, $2, $3, $4
			 WHERE NOT EXISTS (SELECT 1 FROM jobs WHERE title = $1 AND company = $2)`,
			j.Title, j.Company, j.Location, j.Description,
		); err != nil {
			return err
		}

		for _, req := range j.Skills {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO job_skills (id, job_id, skill_id, importance, required_proficiency)
				 SELECT gen_random_uuid(), j.id, s.id, $3, $4
				 FROM jobs j, skills s
				 WHERE j.title = $1 AND s.name = $2
				 ON CONFLICT (job_id, skill_id) DO NOTHING`,
				j.Title, req.Skill, req.Importance, req.RequiredProficiency,
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
