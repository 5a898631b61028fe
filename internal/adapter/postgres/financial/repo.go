// Package financial implements the financial item repository using PostgreSQL.
package financial

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

// Repo provides financial item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new financial repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const itemColumns = `id, user_id, kind, name, amount, frequency, notes, created_at, updated_at`

const getByIDSQL = `
SELECT ` + itemColumns + `
FROM financial_items
WHERE id = $1 AND user_id = $2`

const listSQL = `
SELECT ` + itemColumns + `
FROM financial_items
WHERE user_id = $1
ORDER BY kind, created_at`

const createSQL = `
INSERT INTO financial_items (id, user_id, kind, name, amount, frequency, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + itemColumns

const deleteSQL = `
DELETE FROM financial_items
WHERE id = $1 AND user_id = $2`

// GetByID returns an item by primary key filtered by user_id.
// Returns domain.ErrNotFound if the item does not exist or belongs to
// another user.
func (r *Repo) GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.FinancialItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, itemID, userID)
	item, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "financial_item", itemID)
	}

	return item, nil
}

// List returns all items for a user grouped by kind, oldest first within
// each kind.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.FinancialItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list financial_items: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, fmt.Errorf("list financial_items: %w", err)
	}

	return items, nil
}

// Create inserts a new item and returns the persisted domain.FinancialItem.
func (r *Repo) Create(ctx context.Context, item *domain.FinancialItem) (*domain.FinancialItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		item.ID, item.UserID, string(item.Kind), item.Name, item.Amount,
		frequencyToText(item.Frequency), item.Notes, item.CreatedAt, item.UpdatedAt)

	created, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "financial_item", item.ID)
	}

	return created, nil
}

// Update applies a partial update. Frequency is written even when nil so a
// kind change to asset or debt can clear it.
// Returns domain.ErrNotFound if the item does not exist or belongs to
// another user.
func (r *Repo) Update(ctx context.Context, userID, itemID uuid.UUID, params domain.FinancialUpdateParams, clearFrequency bool) (*domain.FinancialItem, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	qb := psql.Update("financial_items").
		Set("updated_at", now).
		Where(squirrel.Eq{"id": itemID, "user_id": userID}).
		Suffix("RETURNING " + itemColumns)

	if params.Kind != nil {
		qb = qb.Set("kind", string(*params.Kind))
	}
	if params.Name != nil {
		qb = qb.Set("name", *params.Name)
	}
	if params.Amount != nil {
		qb = qb.Set("amount", *params.Amount)
	}
	if clearFrequency {
		qb = qb.Set("frequency", nil)
	} else if params.Frequency != nil {
		qb = qb.Set("frequency", string(*params.Frequency))
	}
	if params.Notes != nil {
		qb = qb.Set("notes", *params.Notes)
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build financial update query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, sql, args...)
	updated, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "financial_item", itemID)
	}

	return updated, nil
}

// Delete removes an item. Returns domain.ErrNotFound if the item does not
// exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, itemID, userID)
	if err != nil {
		return postgres.MapError(err, "financial_item", itemID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("financial_item %s: %w", itemID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanItem(row pgx.Row) (*domain.FinancialItem, error) {
	var (
		i         domain.FinancialItem
		kind      string
		frequency *string
	)

	if err := row.Scan(&i.ID, &i.UserID, &kind, &i.Name, &i.Amount,
		&frequency, &i.Notes, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}

	i.Kind = domain.FinancialKind(kind)
	i.Frequency = frequencyFromText(frequency)

	return &i, nil
}

func scanItems(rows pgx.Rows) ([]domain.FinancialItem, error) {
	var items []domain.FinancialItem
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if items == nil {
		items = []domain.FinancialItem{}
	}

	return items, nil
}

func frequencyToText(f *domain.Frequency) *string {
	if f == nil {
		return nil
	}
	s := string(*f)
	return &s
}

func frequencyFromText(s *string) *domain.Frequency {
	if s == nil {
		return nil
	}
	f := domain.Frequency(*s)
	return &f
}
