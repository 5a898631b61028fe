// Package document implements the vault document metadata repository using
// PostgreSQL. File bytes live in the object store, never here.
package document

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/liam-m3/divorce-companion/internal/adapter/postgres"
	"github.com/liam-m3/divorce-companion/internal/domain"
)

// Repo provides document metadata persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new document repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const documentColumns = `id, user_id, file_name, category, notes, storage_path, size_bytes, mime_type, uploaded_at`

const getByIDSQL = `
SELECT ` + documentColumns + `
FROM documents
WHERE id = $1 AND user_id = $2`

const listAllSQL = `
SELECT ` + documentColumns + `
FROM documents
WHERE user_id = $1
ORDER BY uploaded_at DESC`

const createSQL = `
INSERT INTO documents (id, user_id, file_name, category, notes, storage_path, size_bytes, mime_type, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + documentColumns

const deleteSQL = `
DELETE FROM documents
WHERE id = $1 AND user_id = $2`

// GetByID returns a document by primary key filtered by user_id.
// Returns domain.ErrNotFound if the document does not exist or belongs to
// another user.
func (r *Repo) GetByID(ctx context.Context, userID, docID uuid.UUID) (*domain.Document, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, docID, userID)
	doc, err := scanDocument(row)
	if err != nil {
		return nil, postgres.MapError(err, "document", docID)
	}

	return doc, nil
}

// List returns documents matching the filter, newest upload first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.DocumentFilter) ([]domain.Document, error) {
	qb := psql.Select("id", "user_id", "file_name", "category", "notes",
		"storage_path", "size_bytes", "mime_type", "uploaded_at").
		From("documents").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("uploaded_at DESC")

	if f.Category != nil {
		qb = qb.Where(squirrel.Eq{"category": string(*f.Category)})
	}
	if f.Search != "" {
		qb = qb.Where(squirrel.ILike{"file_name": "%" + f.Search + "%"})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build document list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs, err := scanDocuments(rows)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return docs, nil
}

// ListAll returns every document for a user, newest upload first.
func (r *Repo) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Document, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAllSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs, err := scanDocuments(rows)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return docs, nil
}

// Create inserts a new document record and returns the persisted domain.Document.
func (r *Repo) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		doc.ID, doc.UserID, doc.FileName, categoryToText(doc.Category), doc.Notes,
		doc.StoragePath, doc.SizeBytes, doc.MimeType, doc.UploadedAt)

	created, err := scanDocument(row)
	if err != nil {
		return nil, postgres.MapError(err, "document", doc.ID)
	}

	return created, nil
}

// Update applies a partial metadata update.
// Returns domain.ErrNotFound if the document does not exist or belongs to
// another user.
func (r *Repo) Update(ctx context.Context, userID, docID uuid.UUID, params domain.DocumentUpdateParams) (*domain.Document, error) {
	qb := psql.Update("documents").
		Where(squirrel.Eq{"id": docID, "user_id": userID}).
		Suffix("RETURNING " + documentColumns)

	set := false
	if params.FileName != nil {
		qb = qb.Set("file_name", *params.FileName)
		set = true
	}
	if params.Category != nil {
		qb = qb.Set("category", string(*params.Category))
		set = true
	}
	if params.Notes != nil {
		qb = qb.Set("notes", *params.Notes)
		set = true
	}
	if !set {
		return r.GetByID(ctx, userID, docID)
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build document update query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, sql, args...)
	updated, err := scanDocument(row)
	if err != nil {
		return nil, postgres.MapError(err, "document", docID)
	}

	return updated, nil
}

// Delete removes a document record. Returns domain.ErrNotFound if the
// document does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, docID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, docID, userID)
	if err != nil {
		return postgres.MapError(err, "document", docID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", docID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var (
		d        domain.Document
		category *string
	)

	if err := row.Scan(&d.ID, &d.UserID, &d.FileName, &category, &d.Notes,
		&d.StoragePath, &d.SizeBytes, &d.MimeType, &d.UploadedAt); err != nil {
		return nil, err
	}

	d.Category = categoryFromText(category)

	return &d, nil
}

func scanDocuments(rows pgx.Rows) ([]domain.Document, error) {
	var docs []domain.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if docs == nil {
		docs = []domain.Document{}
	}

	return docs, nil
}

func categoryToText(c *domain.DocumentCategory) *string {
	if c == nil {
		return nil
	}
	s := string(*c)
	return &s
}

func categoryFromText(s *string) *domain.DocumentCategory {
	if s == nil {
		return nil
	}
	c := domain.DocumentCategory(*s)
	return &c
}
