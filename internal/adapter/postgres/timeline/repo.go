// Package timeline implements the timeline event repository using PostgreSQL.
package timeline

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

// Repo provides timeline event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new timeline repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const eventColumns = `id, user_id, title, description, event_date, category, created_at, updated_at`

const getByIDSQL = `
SELECT ` + eventColumns + `
FROM timeline_events
WHERE id = $1 AND user_id = $2`

const listAllSQL = `
SELECT ` + eventColumns + `
FROM timeline_events
WHERE user_id = $1
ORDER BY event_date DESC, created_at DESC`

const createSQL = `
INSERT INTO timeline_events (id, user_id, title, description, event_date, category, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + eventColumns

const deleteSQL = `
DELETE FROM timeline_events
WHERE id = $1 AND user_id = $2`

// GetByID returns an event by primary key filtered by user_id.
// Returns domain.ErrNotFound if the event does not exist or belongs to
// another user.
func (r *Repo) GetByID(ctx context.Context, userID, eventID uuid.UUID) (*domain.TimelineEvent, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, eventID, userID)
	event, err := scanEvent(row)
	if err != nil {
		return nil, postgres.MapError(err, "timeline_event", eventID)
	}

	return event, nil
}

// List returns events matching the filter, most recent event date first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.TimelineFilter) ([]domain.TimelineEvent, error) {
	qb := psql.Select("id", "user_id", "title", "description", "event_date",
		"category", "created_at", "updated_at").
		From("timeline_events").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("event_date DESC", "created_at DESC")

	if f.Category != nil {
		qb = qb.Where(squirrel.Eq{"category": string(*f.Category)})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build timeline list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list timeline_events: %w", err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, fmt.Errorf("list timeline_events: %w", err)
	}

	return events, nil
}

// ListAll returns every event for a user, most recent event date first.
func (r *Repo) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.TimelineEvent, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAllSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list timeline_events: %w", err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, fmt.Errorf("list timeline_events: %w", err)
	}

	return events, nil
}

// Create inserts a new event and returns the persisted domain.TimelineEvent.
func (r *Repo) Create(ctx context.Context, event *domain.TimelineEvent) (*domain.TimelineEvent, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		event.ID, event.UserID, event.Title, event.Description,
		event.EventDate, categoryToText(event.Category), event.CreatedAt, event.UpdatedAt)

	created, err := scanEvent(row)
	if err != nil {
		return nil, postgres.MapError(err, "timeline_event", event.ID)
	}

	return created, nil
}

// Update applies a partial update.
// Returns domain.ErrNotFound if the event does not exist or belongs to
// another user.
func (r *Repo) Update(ctx context.Context, userID, eventID uuid.UUID, params domain.TimelineUpdateParams) (*domain.TimelineEvent, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	qb := psql.Update("timeline_events").
		Set("updated_at", now).
		Where(squirrel.Eq{"id": eventID, "user_id": userID}).
		Suffix("RETURNING " + eventColumns)

	if params.Title != nil {
		qb = qb.Set("title", *params.Title)
	}
	if params.Description != nil {
		qb = qb.Set("description", *params.Description)
	}
	if params.EventDate != nil {
		qb = qb.Set("event_date", *params.EventDate)
	}
	if params.Category != nil {
		qb = qb.Set("category", string(*params.Category))
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build timeline update query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, sql, args...)
	updated, err := scanEvent(row)
	if err != nil {
		return nil, postgres.MapError(err, "timeline_event", eventID)
	}

	return updated, nil
}

// Delete removes an event. Returns domain.ErrNotFound if the event does not
// exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, eventID, userID)
	if err != nil {
		return postgres.MapError(err, "timeline_event", eventID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("timeline_event %s: %w", eventID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanEvent(row pgx.Row) (*domain.TimelineEvent, error) {
	var (
		e        domain.TimelineEvent
		category *string
	)

	if err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Description,
		&e.EventDate, &category, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}

	e.Category = categoryFromText(category)

	return &e, nil
}

func scanEvents(rows pgx.Rows) ([]domain.TimelineEvent, error) {
	var events []domain.TimelineEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if events == nil {
		events = []domain.TimelineEvent{}
	}

	return events, nil
}

func categoryToText(c *domain.TimelineCategory) *string {
	if c == nil {
		return nil
	}
	s := string(*c)
	return &s
}

func categoryFromText(s *string) *domain.TimelineCategory {
	if s == nil {
		return nil
	}
	c := domain.TimelineCategory(*s)
	return &c
}
