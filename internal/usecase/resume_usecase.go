package usecase

import (
	"context"
	"errors"
	"log"

	"skill-gap/internal/domain/document"
	"skill-gap/internal/domain/extraction"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

type ResumeUsecase interface {
	ProcessResume(ctx context.Context, userID uuid.UUID, in document.Input) (ResumeProcessResult, error)
	GetDocument(ctx context.Context, userID, documentID uuid.UUID) (repository.Document, error)
}

type ResumeProcessResult struct {
	DocumentID uuid.UUID            `json:"document_id"`
	Status     document.Status      `json:"status"`
	Metadata   document.Metadata    `json:"metadata"`
	Contact    document.ContactInfo `json:"contact"`
	Skills     []extraction.Record  `json:"skills"`
	Warnings   []string             `json:"warnings,omitempty"`
}

type Resume struct {
	documents  repository.DocumentRepository
	userSkills repository.UserSkillRepository
	pipeline   *document.Pipeline
	extractor  *extraction.Extractor
	cache      ResultCache
	logger     *log.Logger
}

func NewResumeUsecase(
	documents repository.DocumentRepository,
	userSkills repository.UserSkillRepository,
	pipeline *document.Pipeline,
	extractor *extraction.Extractor,
	cache ResultCache,
	logger *log.Logger,
) *Resume {
	return &Resume{
		documents:  documents,
		userSkills: userSkills,
		pipeline:   pipeline,
		extractor:  extractor,
		cache:      cache,
		logger:     logger,
	}
}

// ProcessResume walks a document through its full lifecycle: uploaded,
// extracting, extracted, skills parsed. A failed extraction parks the
// document in extraction_failed with the reason recorded.
func (u *Resume) ProcessResume(ctx context.Context, userID uuid.UUID, in document.Input) (ResumeProcessResult, error) {
	if userID == uuid.Nil {
		return ResumeProcessResult{}, ErrInternal
	}

	doc := repository.Document{
		ID:          uuid.New(),
		UserID:      userID,
		Filename:    in.Filename,
		ContentType: in.ContentType,
		Status:      document.StatusUploaded,
	}
	if err := u.documents.Create(ctx, doc); err != nil {
		return ResumeProcessResult{}, ErrInternal
	}

	if err := u.transition(ctx, &doc, document.StatusExtracting, ""); err != nil {
		return ResumeProcessResult{}, err
	}

	res, err := u.pipeline.Extract(in)
	if err != nil {
		_ = u.transition(ctx, &doc, document.StatusExtractionFailed, err.Error())
		return ResumeProcessResult{DocumentID: doc.ID, Status: doc.Status}, err
	}

	if err := u.documents.SaveExtraction(ctx, doc.ID, res.Text, res.Metadata.Language, res.Metadata.WordCount, res.Metadata.PageCount); err != nil {
		return ResumeProcessResult{}, ErrInternal
	}
	if err := u.transition(ctx, &doc, document.StatusExtracted, ""); err != nil {
		return ResumeProcessResult{}, err
	}

	records := u.extractor.Extract(res.Text)
	if err := u.mergeProfile(ctx, userID, records); err != nil {
		return ResumeProcessResult{}, err
	}
	if err := u.transition(ctx, &doc, document.StatusSkillsParsed, ""); err != nil {
		return ResumeProcessResult{}, err
	}

	if u.cache != nil {
		if err := u.cache.InvalidateUserResults(ctx, userID.String()); err != nil && u.logger != nil {
			u.logger.Printf("[Resume] cache invalidation failed user=%s err=%v", userID, err)
		}
	}

	return ResumeProcessResult{
		DocumentID: doc.ID,
		Status:     doc.Status,
		Metadata:   res.Metadata,
		Contact:    res.Contact,
		Skills:     records,
		Warnings:   res.Errors,
	}, nil
}

func (u *Resume) GetDocument(ctx context.Context, userID, documentID uuid.UUID) (repository.Document, error) {
	doc, err := u.documents.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return repository.Document{}, err
		}
		return repository.Document{}, ErrInternal
	}
	if doc.UserID != userID {
		return repository.Document{}, repository.ErrDocumentNotFound
	}
	return doc, nil
}

func (u *Resume) transition(ctx context.Context, doc *repository.Document, next document.Status, failReason string) error {
	st, err := document.Transition(doc.Status, next)
	if err != nil {
		return ErrInternal
	}
	if err := u.documents.UpdateStatus(ctx, doc.ID, st, failReason); err != nil {
		return ErrInternal
	}
	doc.Status = st
	return nil
}

// mergeProfile upserts each extracted skill under the resume source. The
// repository enforces the merge policy, so manual and verified entries
// survive a weaker extraction.
func (u *Resume) mergeProfile(ctx context.Context, userID uuid.UUID, records []extraction.Record) error {
	for _, rec := range records {
		us := repository.UserSkill{
			UserID:      userID,
			SkillID:     rec.Skill.ID,
			Proficiency: rec.Proficiency,
			Confidence:  rec.Confidence,
			Source:      repository.SourceResume,
		}
		if _, err := u.userSkills.Upsert(ctx, us); err != nil {
			if u.logger != nil {
				u.logger.Printf("[Resume] skill upsert failed user=%s skill=%s err=%v", userID, rec.Skill.ID, err)
			}
			return ErrInternal
		}
	}
	return nil
}
