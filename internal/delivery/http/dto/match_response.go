package dto

import "github.com/google/uuid"

type MatchResultResponse struct {
	JobID          uuid.UUID   `json:"job_id"`
	UserID         uuid.UUID   `json:"user_id"`
	Jaccard        float64     `json:"jaccard"`
	Cosine         float64     `json:"cosine"`
	Weighted       float64     `json:"weighted"`
	Overall        float64     `json:"overall"`
	SkillCoverage  float64     `json:"skill_coverage"`
	MatchingSkills []uuid.UUID `json:"matching_skills"`
	MissingSkills  []uuid.UUID `json:"missing_skills"`
}
