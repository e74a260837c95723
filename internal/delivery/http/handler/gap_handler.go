package handler

import (
	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/domain/gap"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type GapHandler struct {
	uc usecase.GapUsecase
}

func NewGapHandler(uc usecase.GapUsecase) *GapHandler {
	return &GapHandler{uc: uc}
}

func (h *GapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:user_id/jobs/:job_id/gaps", h.GetGaps)
}

func (h *GapHandler) GetGaps(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	analysis, err := h.uc.AnalyzeGaps(c.Context(), userID, jobID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toGapAnalysisResponse(analysis))
}

func toGapAnalysisResponse(a gap.Analysis) dto.GapAnalysisResponse {
	out := dto.GapAnalysisResponse{
		JobID:            a.JobID,
		UserID:           a.UserID,
		GapsByCategory:   make(map[string][]dto.SkillGapResponse, len(a.GapsByCategory)),
		TotalGaps:        a.TotalGaps,
		HighPriorityGaps: a.HighPriorityGaps,
		MedPriorityGaps:  a.MedPriorityGaps,
		LowPriorityGaps:  a.LowPriorityGaps,
	}

	for category, gaps := range a.GapsByCategory {
		items := make([]dto.SkillGapResponse, 0, len(gaps))
		for _, g := range gaps {
			item := dto.SkillGapResponse{
				SkillID:             g.Skill.ID,
				SkillName:           g.Skill.Name,
				GapType:             string(g.GapType),
				Priority:            string(g.Priority),
				Importance:          g.Importance,
				UserProficiency:     g.UserProficiency,
				RequiredProficiency: g.RequiredProficiency,
				EstimatedHours:      g.EstimatedHours,
				Resources:           make([]dto.LearningResourceResponse, 0, len(g.Resources)),
			}
			for _, res := range g.Resources {
				item.Resources = append(item.Resources, dto.LearningResourceResponse{
					Type:     res.Type,
					Title:    res.Title,
					Provider: res.Provider,
					URL:      res.URL,
				})
			}
			items = append(items, item)
		}
		out.GapsByCategory[category] = items
	}
	return out
}
