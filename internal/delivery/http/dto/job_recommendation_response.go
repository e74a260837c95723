package dto

import "github.com/google/uuid"

type JobRecommendationResponse struct {
	JobID         uuid.UUID   `json:"job_id"`
	Title         string      `json:"title"`
	Company       string      `json:"company"`
	Location      string      `json:"location"`
	Overall       float64     `json:"overall"`
	SkillCoverage float64     `json:"skill_coverage"`
	MissingSkills []uuid.UUID `json:"missing_skills"`
}
