package handler

import (
	"errors"
	"io"

	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/domain/document"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/repository"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/:user_id/resume", h.Upload)
	r.Get("/:user_id/documents/:document_id", h.GetDocument)
}

func (h *ResumeHandler) Upload(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing resume file", nil, err)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable resume file", nil, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable resume file", nil, err)
	}

	contentType := fh.Header.Get("Content-Type")
	res, err := h.uc.ProcessResume(c.Context(), userID, document.Input{
		Data:        data,
		ContentType: contentType,
		Filename:    fh.Filename,
	})
	if err != nil {
		return mapResumeError(res, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toResumeResponse(res))
}

func (h *ResumeHandler) GetDocument(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}
	docID, err := uuid.Parse(c.Params("document_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	doc, err := h.uc.GetDocument(c.Context(), userID, docID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Document not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.DocumentResponse{
		ID:          doc.ID,
		Filename:    doc.Filename,
		ContentType: doc.ContentType,
		Status:      string(doc.Status),
		Language:    doc.Language,
		WordCount:   doc.WordCount,
		PageCount:   doc.PageCount,
		FailReason:  doc.FailReason,
		CreatedAt:   doc.CreatedAt,
	})
}

func mapResumeError(res usecase.ResumeProcessResult, err error) error {
	data := any(nil)
	if res.DocumentID != uuid.Nil {
		data = dto.ResumeFailureResponse{DocumentID: res.DocumentID, Status: string(res.Status)}
	}

	switch {
	case errors.Is(err, document.ErrUnsupportedFormat):
		return middleware.NewAppError(fiber.StatusUnsupportedMediaType, "Unsupported document format", data, err)
	case errors.Is(err, document.ErrDocumentTooLarge):
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "Document too large", data, err)
	case errors.Is(err, document.ErrEmptyDocument):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Document contains no text", data, err)
	case errors.Is(err, document.ErrExtractionFailed):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Text extraction failed", data, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func toResumeResponse(res usecase.ResumeProcessResult) dto.ResumeProcessResponse {
	out := dto.ResumeProcessResponse{
		DocumentID: res.DocumentID,
		Status:     string(res.Status),
		Language:   res.Metadata.Language,
		WordCount:  res.Metadata.WordCount,
		PageCount:  res.Metadata.PageCount,
		Sections:   res.Metadata.Sections,
		Contact:    toContactResponse(res.Contact),
		Skills:     make([]dto.ExtractedSkillResponse, 0, len(res.Skills)),
		Warnings:   res.Warnings,
	}
	for _, rec := range res.Skills {
		out.Skills = append(out.Skills, dto.ExtractedSkillResponse{
			SkillID:     rec.Skill.ID,
			SkillName:   rec.Skill.Name,
			Category:    rec.Skill.Category,
			Method:      string(rec.Method),
			Confidence:  rec.Confidence,
			Proficiency: rec.Proficiency,
			Context:     rec.Context,
		})
	}
	return out
}

func toContactResponse(ci document.ContactInfo) dto.ContactResponse {
	field := func(f *document.ContactField) *dto.ContactFieldResponse {
		if f == nil {
			return nil
		}
		return &dto.ContactFieldResponse{Value: f.Value, Confidence: f.Confidence}
	}
	return dto.ContactResponse{
		Email:    field(ci.Email),
		Phone:    field(ci.Phone),
		LinkedIn: field(ci.LinkedIn),
		GitHub:   field(ci.GitHub),
		Website:  field(ci.Website),
	}
}
