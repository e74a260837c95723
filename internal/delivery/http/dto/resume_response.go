package dto

import (
	"time"

	"github.com/google/uuid"
)

type ContactFieldResponse struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

type ContactResponse struct {
	Email    *ContactFieldResponse `json:"email,omitempty"`
	Phone    *ContactFieldResponse `json:"phone,omitempty"`
	LinkedIn *ContactFieldResponse `json:"linkedin,omitempty"`
	GitHub   *ContactFieldResponse `json:"github,omitempty"`
	Website  *ContactFieldResponse `json:"website,omitempty"`
}

type ExtractedSkillResponse struct {
	SkillID     uuid.UUID `json:"skill_id"`
	SkillName   string    `json:"skill_name"`
	Category    string    `json:"category"`
	Method      string    `json:"method"`
	Confidence  float64   `json:"confidence"`
	Proficiency float64   `json:"proficiency"`
	Context     string    `json:"context,omitempty"`
}

type ResumeProcessResponse struct {
	DocumentID uuid.UUID                `json:"document_id"`
	Status     string                   `json:"status"`
	Language   string                   `json:"language"`
	WordCount  int                      `json:"word_count"`
	PageCount  int                      `json:"page_count"`
	Sections   map[string]bool          `json:"sections"`
	Contact    ContactResponse          `json:"contact"`
	Skills     []ExtractedSkillResponse `json:"skills"`
	Warnings   []string                 `json:"warnings,omitempty"`
}

type ResumeFailureResponse struct {
	DocumentID uuid.UUID `json:"document_id"`
	Status     string    `json:"status"`
}

type DocumentResponse struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Status      string    `json:"status"`
	Language    string    `json:"language,omitempty"`
	WordCount   int       `json:"word_count"`
	PageCount   int       `json:"page_count"`
	FailReason  string    `json:"fail_reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
