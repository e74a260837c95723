package dto

import "github.com/google/uuid"

type LearningResourceResponse struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Provider string `json:"provider"`
	URL      string `json:"url"`
}

type SkillGapResponse struct {
	SkillID             uuid.UUID                  `json:"skill_id"`
	SkillName           string                     `json:"skill_name"`
	GapType             string                     `json:"gap_type"`
	Priority            string                     `json:"priority"`
	Importance          float64                    `json:"importance"`
	UserProficiency     *float64                   `json:"user_proficiency,omitempty"`
	RequiredProficiency float64                    `json:"required_proficiency"`
	EstimatedHours      *float64                   `json:"estimated_hours,omitempty"`
	Resources           []LearningResourceResponse `json:"resources"`
}

type GapAnalysisResponse struct {
	JobID            uuid.UUID                     `json:"job_id"`
	UserID           uuid.UUID                     `json:"user_id"`
	GapsByCategory   map[string][]SkillGapResponse `json:"gaps_by_category"`
	TotalGaps        int                           `json:"total_gaps"`
	HighPriorityGaps int                           `json:"high_priority_gaps"`
	MedPriorityGaps  int                           `json:"medium_priority_gaps"`
	LowPriorityGaps  int                           `json:"low_priority_gaps"`
}
