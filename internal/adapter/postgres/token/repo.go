// Package token implements the refresh token repository using PostgreSQL.
// Only SHA-256 hashes of raw tokens are ever stored.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/liam-m3/divorce-companion/internal/adapter/postgres"
	"github.com/liam-m3/divorce-companion/internal/domain"
)

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new refresh token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const tokenColumns = `id, user_id, token_hash, expires_at, revoked_at, created_at`

const createSQL = `
INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + tokenColumns

const getByHashSQL = `
SELECT ` + tokenColumns + `
FROM refresh_tokens
WHERE token_hash = $1`

const revokeSQL = `
UPDATE refresh_tokens
SET revoked_at = $2
WHERE id = $1 AND revoked_at IS NULL`

const revokeAllForUserSQL = `
UPDATE refresh_tokens
SET revoked_at = $2
WHERE user_id = $1 AND revoked_at IS NULL`

const deleteExpiredSQL = `
DELETE FROM refresh_tokens
WHERE expires_at < $1`

// Create inserts a new refresh token record.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.CreatedAt)

	created, err := scanToken(row)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", t.ID)
	}

	return created, nil
}

// GetByHash returns a token record by its hash.
// Returns domain.ErrNotFound if no such token exists.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByHashSQL, tokenHash)
	t, err := scanToken(row)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	return t, nil
}

// Revoke marks a token as revoked. Revoking an already-revoked token is a
// no-op, not an error.
func (r *Repo) Revoke(ctx context.Context, tokenID uuid.UUID, now time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, revokeSQL, tokenID, now); err != nil {
		return postgres.MapError(err, "refresh_token", tokenID)
	}

	return nil
}

// RevokeAllForUser revokes every active token for a user.
func (r *Repo) RevokeAllForUser(ctx context.Context, userID uuid.UUID, now time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, revokeAllForUserSQL, userID, now); err != nil {
		return postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	return nil
}

// DeleteExpired removes tokens whose expiry is in the past and returns the
// number of rows deleted.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteExpiredSQL, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired refresh_tokens: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func scanToken(row pgx.Row) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	if err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.RevokedAt, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
