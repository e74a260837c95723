package handler

import (
	"errors"
	"strconv"

	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobRecommendationHandler struct {
	uc usecase.JobRecommendationUsecase
}

func NewJobRecommendationHandler(uc usecase.JobRecommendationUsecase) *JobRecommendationHandler {
	return &JobRecommendationHandler{uc: uc}
}

func (h *JobRecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:user_id/recommendations", h.GetRecommendations)
}

func (h *JobRecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	limit := parseQueryInt(c, "limit", 20)
	minScore := parseQueryFloat(c, "min_score", 0)
	if limit > 50 {
		limit = 50
	}
	if limit < 1 {
		limit = 20
	}
	if minScore < 0 {
		minScore = 0
	}

	items, err := h.uc.GetRecommendations(c.Context(), userID, usecase.JobRecommendationParams{
		Limit:    limit,
		MinScore: minScore,
	})
	if err != nil {
		return mapJobRecommendationUsecaseError(err)
	}

	out := make([]dto.JobRecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.JobRecommendationResponse{
			JobID:         it.JobID,
			Title:         it.Title,
			Company:       it.Company,
			Location:      it.Location,
			Overall:       it.Overall,
			SkillCoverage: it.SkillCoverage,
			MissingSkills: it.MissingSkills,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func parseQueryFloat(c fiber.Ctx, key string, defaultVal float64) float64 {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return defaultVal
	}
	return v
}

func mapJobRecommendationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUserSkillProfileEmpty):
		return middleware.NewAppError(fiber.StatusBadRequest, "User skill profile empty", nil, err)
	case errors.Is(err, usecase.ErrNoJobsFound):
		return middleware.NewAppError(fiber.StatusNotFound, "No jobs found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
