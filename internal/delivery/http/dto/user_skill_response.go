package dto

import "github.com/google/uuid"

type UserSkillResponse struct {
	SkillID         uuid.UUID `json:"skill_id"`
	SkillName       string    `json:"skill_name"`
	Category        string    `json:"category"`
	Proficiency     float64   `json:"proficiency"`
	Confidence      float64   `json:"confidence"`
	Source          string    `json:"source"`
	Verified        bool      `json:"verified"`
	YearsExperience *float64  `json:"years_experience,omitempty"`
}
