// Package journal implements the journal entry repository using PostgreSQL.
// Fixed-shape queries use raw SQL; filtered lists and partial updates are
// built dynamically with squirrel.
package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/liam-m3/divorce-companion/internal/adapter/postgres"
	"github.com/liam-m3/divorce-companion/internal/domain"
)

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new journal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const entryColumns = `id, user_id, title, content, mood, category, incident_date,
       ai_summary, ai_summary_generated_at, created_at, updated_at`

const getByIDSQL = `
SELECT ` + entryColumns + `
FROM journal_entries
WHERE id = $1 AND user_id = $2`

const listRecentSQL = `
SELECT ` + entryColumns + `
FROM journal_entries
WHERE user_id = $1
ORDER BY incident_date DESC, created_at DESC
LIMIT $2`

const createSQL = `
INSERT INTO journal_entries (id, user_id, title, content, mood, category, incident_date, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + entryColumns

const setSummarySQL = `
UPDATE journal_entries
SET ai_summary = $3, ai_summary_generated_at = $4, updated_at = $4
WHERE id = $1 AND user_id = $2`

const deleteSQL = `
DELETE FROM journal_entries
WHERE id = $1 AND user_id = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry by primary key filtered by user_id.
// Returns domain.ErrNotFound if the entry does not exist or belongs to
// another user; the two cases are indistinguishable to the caller.
func (r *Repo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, entryID, userID)
	entry, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", entryID)
	}

	return entry, nil
}

// List returns entries matching the filter, newest incident first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.JournalFilter) ([]domain.JournalEntry, error) {
	qb := psql.Select("id", "user_id", "title", "content", "mood", "category", "incident_date",
		"ai_summary", "ai_summary_generated_at", "created_at", "updated_at").
		From("journal_entries").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("incident_date DESC", "created_at DESC")

	if f.Mood != nil {
		qb = qb.Where(squirrel.Eq{"mood": string(*f.Mood)})
	}
	if f.Category != nil {
		qb = qb.Where(squirrel.Eq{"category": string(*f.Category)})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"content": pattern},
		})
	}
	if f.Limit > 0 {
		qb = qb.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		qb = qb.Offset(uint64(f.Offset))
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build journal list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list journal_entries: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("list journal_entries: %w", err)
	}

	return entries, nil
}

// ListRecent returns the newest entries by incident date, capped at limit.
func (r *Repo) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.JournalEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listRecentSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent journal_entries: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("list recent journal_entries: %w", err)
	}

	return entries, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns the persisted domain.JournalEntry.
func (r *Repo) Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		entry.ID, entry.UserID, entry.Title, entry.Content,
		moodToText(entry.Mood), categoryToText(entry.Category),
		entry.IncidentDate, entry.CreatedAt, entry.UpdatedAt)

	created, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", entry.ID)
	}

	return created, nil
}

// Update applies a partial update. If Content is among the updated fields
// the stored AI summary and its timestamp are cleared in the same statement,
// so a summary can never describe stale content.
// Returns domain.ErrNotFound if the entry does not exist or belongs to
// another user.
func (r *Repo) Update(ctx context.Context, userID, entryID uuid.UUID, params domain.JournalUpdateParams) (*domain.JournalEntry, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	qb := psql.Update("journal_entries").
		Set("updated_at", now).
		Where(squirrel.Eq{"id": entryID, "user_id": userID}).
		Suffix("RETURNING " + entryColumns)

	if params.Title != nil {
		qb = qb.Set("title", *params.Title)
	}
	if params.Content != nil {
		qb = qb.Set("content", *params.Content)
		qb = qb.Set("ai_summary", nil)
		qb = qb.Set("ai_summary_generated_at", nil)
	}
	if params.Mood != nil {
		qb = qb.Set("mood", string(*params.Mood))
	}
	if params.Category != nil {
		qb = qb.Set("category", string(*params.Category))
	}
	if params.IncidentDate != nil {
		qb = qb.Set("incident_date", *params.IncidentDate)
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build journal update query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, sql, args...)
	updated, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", entryID)
	}

	return updated, nil
}

// SetSummary stores a generated summary and its timestamp on an entry.
// Returns domain.ErrNotFound if the entry does not exist or belongs to
// another user.
func (r *Repo) SetSummary(ctx context.Context, userID, entryID uuid.UUID, summary string, generatedAt time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setSummarySQL, entryID, userID, summary, generatedAt)
	if err != nil {
		return postgres.MapError(err, "journal_entry", entryID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal_entry %s: %w", entryID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an entry. Returns domain.ErrNotFound if the entry does
// not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, entryID, userID)
	if err != nil {
		return postgres.MapError(err, "journal_entry", entryID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal_entry %s: %w", entryID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var (
		e        domain.JournalEntry
		mood     *string
		category *string
	)

	if err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &mood, &category,
		&e.IncidentDate, &e.Summary, &e.SummaryGeneratedAt, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}

	e.Mood = moodFromText(mood)
	e.Category = categoryFromText(category)

	return &e, nil
}

func scanEntries(rows pgx.Rows) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []domain.JournalEntry{}
	}

	return entries, nil
}

// ---------------------------------------------------------------------------
// Enum <-> text helpers
// ---------------------------------------------------------------------------

func moodToText(m *domain.Mood) *string {
	if m == nil {
		return nil
	}
	s := string(*m)
	return &s
}

func moodFromText(s *string) *domain.Mood {
	if s == nil {
		return nil
	}
	m := domain.Mood(*s)
	return &m
}

func categoryToText(c *domain.JournalCategory) *string {
	if c == nil {
		return nil
	}
	s := string(*c)
	return &s
}

func categoryFromText(s *string) *domain.JournalCategory {
	if s == nil {
		return nil
	}
	c := domain.JournalCategory(*s)
	return &c
}
