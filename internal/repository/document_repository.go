package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"skill-gap/internal/database"
	"skill-gap/internal/domain/document"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
)

type Document struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Filename    string
	ContentType string
	Status      document.Status
	Text        string
	Language    string
	WordCount   int
	PageCount   int
	FailReason  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DocumentRepository interface {
	Create(ctx context.Context, d Document) error
	FindByID(ctx context.Context, id uuid.UUID) (Document, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status document.Status, failReason string) error
	SaveExtraction(ctx context.Context, id uuid.UUID, text, language string, wordCount, pageCount int) error
}

type PostgresDocumentRepository struct {
	db database.DB
}

func NewPostgresDocumentRepository(db database.DB) *PostgresDocumentRepository {
	return &PostgresDocumentRepository{db: db}
}

func (r *PostgresDocumentRepository) Create(ctx context.Context, d Document) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	now := time.Now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO resume_documents (id, user_id, filename, content_type, status, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$6)`,
		d.ID, d.UserID, d.Filename, d.ContentType, string(d.Status), d.CreatedAt,
	)
	return err
}

func (r *PostgresDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (Document, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, COALESCE(filename, ''), COALESCE(content_type, ''), status,
		        COALESCE(extracted_text, ''), COALESCE(language, ''), COALESCE(word_count, 0),
		        COALESCE(page_count, 0), COALESCE(fail_reason, ''), created_at, updated_at
		 FROM resume_documents
		 WHERE id = $1`,
		id,
	)

	var d Document
	var status string
	if err := row.Scan(&d.ID, &d.UserID, &d.Filename, &d.ContentType, &status, &d.Text, &d.Language, &d.WordCount, &d.PageCount, &d.FailReason, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Document{}, ErrDocumentNotFound
		}
		return Document{}, err
	}
	d.Status = document.Status(status)
	return d, nil
}

func (r *PostgresDocumentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status document.Status, failReason string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE resume_documents
		 SET status = $2, fail_reason = NULLIF($3, ''), updated_at = $4
		 WHERE id = $1`,
		id, string(status), failReason, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (r *PostgresDocumentRepository) SaveExtraction(ctx context.Context, id uuid.UUID, text, language string, wordCount, pageCount int) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE resume_documents
		 SET extracted_text = $2, language = $3, word_count = $4, page_count = $5, updated_at = $6
		 WHERE id = $1`,
		id, text, language, wordCount, pageCount, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
