package usecase

import (
	"context"
	"encoding/json"
	"time"

	"skill-gap/internal/domain/document"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

// Shared in-memory test doubles for the repository and cache interfaces.

type mockJobRepo struct {
	jobs      []repository.Job
	existsErr error
	listErr   error
}

func (m *mockJobRepo) ExistsByID(_ context.Context, jobID uuid.UUID) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	for _, j := range m.jobs {
		if j.ID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockJobRepo) FindByID(_ context.Context, jobID uuid.UUID) (repository.Job, error) {
	for _, j := range m.jobs {
		if j.ID == jobID {
			return j, nil
		}
	}
	return repository.Job{}, repository.ErrJobNotFound
}

func (m *mockJobRepo) ListJobs(_ context.Context, limit, offset int) ([]repository.Job, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.jobs, nil
}

func (m *mockJobRepo) ListJobIDs(_ context.Context, limit int) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(m.jobs))
	for _, j := range m.jobs {
		out = append(out, j.ID)
	}
	return out, nil
}

type mockJobSkillRepo struct {
	byJob map[uuid.UUID][]repository.JobSkillRequirement
	err   error
}

func (m *mockJobSkillRepo) FindByJobID(_ context.Context, jobID uuid.UUID) ([]repository.JobSkillRequirement, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byJob[jobID], nil
}

func (m *mockJobSkillRepo) FindByJobIDs(_ context.Context, jobIDs []uuid.UUID) (map[uuid.UUID][]repository.JobSkillRequirement, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[uuid.UUID][]repository.JobSkillRequirement, len(jobIDs))
	for _, id := range jobIDs {
		if reqs, ok := m.byJob[id]; ok {
			out[id] = reqs
		}
	}
	return out, nil
}

type mockUserSkillRepo struct {
	skills    []repository.UserSkill
	findErr   error
	upsertErr error
	deleteErr error
	upserted  []repository.UserSkill
	deleted   []uuid.UUID
}

func (m *mockUserSkillRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]repository.UserSkill, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.skills, nil
}

func (m *mockUserSkillRepo) FindByUserAndSkill(_ context.Context, userID, skillID uuid.UUID) (repository.UserSkill, error) {
	for _, s := range m.skills {
		if s.SkillID == skillID {
			return s, nil
		}
	}
	return repository.UserSkill{}, repository.ErrUserSkillNotFound
}

func (m *mockUserSkillRepo) Upsert(_ context.Context, us repository.UserSkill) (repository.UserSkill, error) {
	if m.upsertErr != nil {
		return repository.UserSkill{}, m.upsertErr
	}
	m.upserted = append(m.upserted, us)
	return us, nil
}

func (m *mockUserSkillRepo) Delete(_ context.Context, userID, skillID uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, skillID)
	return nil
}

type mockJobMatchRepo struct {
	upserts []repository.JobMatchRecord
	err     error
}

func (m *mockJobMatchRepo) Upsert(_ context.Context, rec repository.JobMatchRecord) error {
	if m.err != nil {
		return m.err
	}
	m.upserts = append(m.upserts, rec)
	return nil
}

func (m *mockJobMatchRepo) FindByUserAndJob(_ context.Context, userID, jobID uuid.UUID) (repository.JobMatchRecord, error) {
	for _, r := range m.upserts {
		if r.UserID == userID && r.JobID == jobID {
			return r, nil
		}
	}
	return repository.JobMatchRecord{}, repository.ErrJobMatchNotFound
}

func (m *mockJobMatchRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit int) ([]repository.JobMatchRecord, error) {
	return m.upserts, nil
}

type mockDocumentRepo struct {
	created     []repository.Document
	statuses    []document.Status
	failReasons []string
	savedText   string
	findDoc     repository.Document
	findErr     error
	createErr   error
	updateErr   error
}

func (m *mockDocumentRepo) Create(_ context.Context, d repository.Document) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, d)
	return nil
}

func (m *mockDocumentRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Document, error) {
	if m.findErr != nil {
		return repository.Document{}, m.findErr
	}
	return m.findDoc, nil
}

func (m *mockDocumentRepo) UpdateStatus(_ context.Context, id uuid.UUID, status document.Status, failReason string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.statuses = append(m.statuses, status)
	m.failReasons = append(m.failReasons, failReason)
	return nil
}

func (m *mockDocumentRepo) SaveExtraction(_ context.Context, id uuid.UUID, text, language string, wordCount, pageCount int) error {
	m.savedText = text
	return nil
}

// mockResultCache stores JSON blobs in memory and records invalidations.
type mockResultCache struct {
	store       map[string][]byte
	invalidated []string
	getErr      error
}

func newMockResultCache() *mockResultCache {
	return &mockResultCache{store: make(map[string][]byte)}
}

func (c *mockResultCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *mockResultCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = raw
	return nil
}

func (c *mockResultCache) Delete(_ context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func (c *mockResultCache) InvalidateUserResults(_ context.Context, userID string) error {
	c.invalidated = append(c.invalidated, userID)
	return nil
}
