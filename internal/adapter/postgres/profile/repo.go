// Package profile implements the per-user profile repository using PostgreSQL.
// Profiles are keyed by user_id, one row per account.
package profile

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

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const profileColumns = `user_id, country, relationship_type, stage, priorities,
       has_children, children_count, children_ages, onboarding_completed, created_at, updated_at`

const getSQL = `
SELECT ` + profileColumns + `
FROM profiles
WHERE user_id = $1`

const createSQL = `
INSERT INTO profiles (user_id, priorities, onboarding_completed, created_at, updated_at)
VALUES ($1, '{}', false, $2, $2)
RETURNING ` + profileColumns

const completeOnboardingSQL = `
UPDATE profiles
SET country = $2, relationship_type = $3, stage = $4, priorities = $5,
    has_children = $6, children_count = $7, children_ages = $8,
    onboarding_completed = true, updated_at = $9
WHERE user_id = $1
RETURNING ` + profileColumns

// Get returns the profile for a user.
// Returns domain.ErrNotFound if no profile row exists.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getSQL, userID)
	p, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}

	return p, nil
}

// Create inserts an empty, not-yet-onboarded profile for a new user.
// Returns domain.ErrAlreadyExists if the user already has a profile.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL, userID, now)
	p, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}

	return p, nil
}

// CompleteOnboarding writes the full onboarding answer set and flips the
// completion flag. Returns domain.ErrNotFound if no profile row exists.
func (r *Repo) CompleteOnboarding(ctx context.Context, userID uuid.UUID, data domain.OnboardingData) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, completeOnboardingSQL,
		userID, data.Country, string(data.RelationshipType), string(data.Stage),
		prioritiesToText(data.Priorities), data.HasChildren, data.ChildrenCount,
		data.ChildrenAges, now)

	p, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}

	return p, nil
}

// Update applies a partial update to a profile.
// Returns domain.ErrNotFound if no profile row exists.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, params domain.ProfileUpdateParams) (*domain.Profile, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	qb := psql.Update("profiles").
		Set("updated_at", now).
		Where(squirrel.Eq{"user_id": userID}).
		Suffix("RETURNING " + profileColumns)

	if params.Country != nil {
		qb = qb.Set("country", *params.Country)
	}
	if params.RelationshipType != nil {
		qb = qb.Set("relationship_type", string(*params.RelationshipType))
	}
	if params.Stage != nil {
		qb = qb.Set("stage", string(*params.Stage))
	}
	if params.Priorities != nil {
		qb = qb.Set("priorities", prioritiesToText(params.Priorities))
	}
	if params.HasChildren != nil {
		qb = qb.Set("has_children", *params.HasChildren)
	}
	if params.ChildrenCount != nil {
		qb = qb.Set("children_count", *params.ChildrenCount)
	}
	if params.ChildrenAges != nil {
		qb = qb.Set("children_ages", *params.ChildrenAges)
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile update query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, sql, args...)
	p, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}

	return p, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		p                domain.Profile
		relationshipType *string
		stage            *string
		priorities       []string
	)

	if err := row.Scan(&p.UserID, &p.Country, &relationshipType, &stage, &priorities,
		&p.HasChildren, &p.ChildrenCount, &p.ChildrenAges,
		&p.OnboardingCompleted, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}

	if relationshipType != nil {
		rt := domain.RelationshipType(*relationshipType)
		p.RelationshipType = &rt
	}
	if stage != nil {
		s := domain.Stage(*stage)
		p.Stage = &s
	}
	p.Priorities = prioritiesFromText(priorities)

	return &p, nil
}

func prioritiesToText(priorities []domain.Priority) []string {
	out := make([]string, len(priorities))
	for i, pr := range priorities {
		out[i] = string(pr)
	}
	return out
}

func prioritiesFromText(values []string) []domain.Priority {
	out := make([]domain.Priority, len(values))
	for i, v := range values {
		out[i] = domain.Priority(v)
	}
	return out
}
