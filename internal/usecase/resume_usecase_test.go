package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-gap/internal/domain/document"
	"skill-gap/internal/domain/extraction"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

func newResumeUsecase(t *testing.T, docs *mockDocumentRepo, userSkills *mockUserSkillRepo, cache *mockResultCache) *Resume {
	t.Helper()

	tax, _ := usecaseTaxonomy(t)
	ex, err := extraction.NewExtractor(tax, nil)
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	pipeline := document.NewPipeline(document.Limits{}, nil)
	return NewResumeUsecase(docs, userSkills, pipeline, ex, cache, nil)
}

func TestProcessResume_Success(t *testing.T) {
	docs := &mockDocumentRepo{}
	userSkills := &mockUserSkillRepo{}
	cache := newMockResultCache()
	uc := newResumeUsecase(t, docs, userSkills, cache)

	userID := uuid.New()
	in := document.Input{
		Data:        []byte("Backend engineer with 5 years of Go and solid PostgreSQL knowledge."),
		ContentType: "text/plain",
		Filename:    "resume.txt",
	}

	res, err := uc.ProcessResume(context.Background(), userID, in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Status != document.StatusSkillsParsed {
		t.Fatalf("expected skills_parsed, got %s", res.Status)
	}
	if len(docs.created) != 1 || docs.created[0].Status != document.StatusUploaded {
		t.Fatalf("expected one uploaded document, got %+v", docs.created)
	}

	wantStatuses := []document.Status{document.StatusExtracting, document.StatusExtracted, document.StatusSkillsParsed}
	if len(docs.statuses) != len(wantStatuses) {
		t.Fatalf("expected %d status updates, got %v", len(wantStatuses), docs.statuses)
	}
	for i, st := range wantStatuses {
		if docs.statuses[i] != st {
			t.Fatalf("status update %d: expected %s, got %s", i, st, docs.statuses[i])
		}
	}
	if docs.savedText == "" {
		t.Fatalf("expected extracted text to be saved")
	}

	if len(res.Skills) != 2 {
		t.Fatalf("expected Go and PostgreSQL to be extracted, got %+v", res.Skills)
	}
	if len(userSkills.upserted) != 2 {
		t.Fatalf("expected 2 profile upserts, got %d", len(userSkills.upserted))
	}
	for _, us := range userSkills.upserted {
		if us.Source != repository.SourceResume {
			t.Fatalf("expected resume source, got %s", us.Source)
		}
		if us.UserID != userID {
			t.Fatalf("upsert carries wrong user id: %s", us.UserID)
		}
	}

	if len(cache.invalidated) != 1 || cache.invalidated[0] != userID.String() {
		t.Fatalf("expected cached results for the user to be invalidated, got %v", cache.invalidated)
	}
}

func TestProcessResume_ExtractionFailure(t *testing.T) {
	docs := &mockDocumentRepo{}
	userSkills := &mockUserSkillRepo{}
	uc := newResumeUsecase(t, docs, userSkills, nil)

	in := document.Input{
		Data:        []byte("binary noise"),
		ContentType: "image/png",
		Filename:    "resume.png",
	}

	res, err := uc.ProcessResume(context.Background(), uuid.New(), in)
	if !errors.Is(err, document.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if res.Status != document.StatusExtractionFailed {
		t.Fatalf("expected extraction_failed, got %s", res.Status)
	}
	if res.DocumentID == uuid.Nil {
		t.Fatalf("failure result must still identify the document")
	}

	wantStatuses := []document.Status{document.StatusExtracting, document.StatusExtractionFailed}
	if len(docs.statuses) != len(wantStatuses) {
		t.Fatalf("expected %d status updates, got %v", len(wantStatuses), docs.statuses)
	}
	if docs.failReasons[len(docs.failReasons)-1] == "" {
		t.Fatalf("expected the failure reason to be recorded")
	}
	if len(userSkills.upserted) != 0 {
		t.Fatalf("failed extraction must not touch the skill profile")
	}
}

func TestProcessResume_CreateFailure(t *testing.T) {
	docs := &mockDocumentRepo{createErr: errors.New("insert failed")}
	uc := newResumeUsecase(t, docs, &mockUserSkillRepo{}, nil)

	in := document.Input{Data: []byte("text"), ContentType: "text/plain", Filename: "resume.txt"}
	if _, err := uc.ProcessResume(context.Background(), uuid.New(), in); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestGetDocument_OwnershipEnforced(t *testing.T) {
	owner, other := uuid.New(), uuid.New()
	docID := uuid.New()
	docs := &mockDocumentRepo{findDoc: repository.Document{ID: docID, UserID: owner, Status: document.StatusSkillsParsed}}
	uc := newResumeUsecase(t, docs, &mockUserSkillRepo{}, nil)

	doc, err := uc.GetDocument(context.Background(), owner, docID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if doc.ID != docID {
		t.Fatalf("unexpected document: %+v", doc)
	}

	if _, err := uc.GetDocument(context.Background(), other, docID); !errors.Is(err, repository.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound for a foreign document, got %v", err)
	}
}

func TestGetDocument_NotFound(t *testing.T) {
	docs := &mockDocumentRepo{findErr: repository.ErrDocumentNotFound}
	uc := newResumeUsecase(t, docs, &mockUserSkillRepo{}, nil)

	if _, err := uc.GetDocument(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, repository.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}
