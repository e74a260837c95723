package handler

import (
	"errors"

	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserSkillHandler struct {
	uc usecase.UserSkillUsecase
}

type addUserSkillRequest struct {
	SkillID         uuid.UUID `json:"skill_id"`
	Proficiency     float64   `json:"proficiency"`
	YearsExperience *float64  `json:"years_experience"`
	Verified        bool      `json:"verified"`
}

func NewUserSkillHandler(uc usecase.UserSkillUsecase) *UserSkillHandler {
	return &UserSkillHandler{uc: uc}
}

func (h *UserSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/:user_id/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Add)
	grp.Delete("/:skill_id", h.Remove)
}

func (h *UserSkillHandler) List(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListUserSkills(c.Context(), userID)
	if err != nil {
		return mapUserSkillUsecaseError(err)
	}

	res := make([]dto.UserSkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toUserSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *UserSkillHandler) Add(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	var req addUserSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	saved, err := h.uc.AddUserSkill(c.Context(), userID, usecase.AddUserSkillInput{
		SkillID:         req.SkillID,
		Proficiency:     req.Proficiency,
		YearsExperience: req.YearsExperience,
		Verified:        req.Verified,
	})
	if err != nil {
		return mapUserSkillUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toUserSkillResponse(saved))
}

func (h *UserSkillHandler) Remove(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	skillID, err := uuid.Parse(c.Params("skill_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.RemoveUserSkill(c.Context(), userID, skillID); err != nil {
		return mapUserSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func toUserSkillResponse(it usecase.UserSkillItem) dto.UserSkillResponse {
	return dto.UserSkillResponse{
		SkillID:         it.SkillID,
		SkillName:       it.SkillName,
		Category:        it.Category,
		Proficiency:     it.Proficiency,
		Confidence:      it.Confidence,
		Source:          it.Source,
		Verified:        it.Verified,
		YearsExperience: it.YearsExperience,
	}
}

func mapUserSkillUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidProficiency):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid proficiency", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
