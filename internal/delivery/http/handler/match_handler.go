package handler

import (
	"errors"

	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/domain/taxonomy"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:user_id/jobs/:job_id/match", h.GetMatch)
}

func (h *MatchHandler) GetMatch(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.CalculateMatch(c.Context(), userID, jobID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	out := dto.MatchResultResponse{
		JobID:          res.JobID,
		UserID:         res.UserID,
		Jaccard:        res.Jaccard,
		Cosine:         res.Cosine,
		Weighted:       res.Weighted,
		Overall:        res.Overall,
		SkillCoverage:  res.SkillCoverage,
		MatchingSkills: res.MatchingSkills,
		MissingSkills:  res.MissingSkills,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func parseUserID(c fiber.Ctx) (uuid.UUID, error) {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}
	return userID, nil
}

func mapMatchingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrUserSkillProfileEmpty):
		return middleware.NewAppError(fiber.StatusBadRequest, "User skill profile empty", nil, err)
	case errors.Is(err, taxonomy.ErrUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Skill taxonomy unavailable", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
