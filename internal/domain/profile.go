package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the single per-user onboarding profile. OnboardingCompleted
// gates access to the rest of the application.
type Profile struct {
	UserID           uuid.UUID
	Country          *string
	RelationshipType *RelationshipType
	Stage            *Stage
	Priorities       []Priority
	HasChildren      *bool
	ChildrenCount    *int
	ChildrenAges     *string

	OnboardingCompleted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OnboardingData is the full set of answers collected by the onboarding wizard.
type OnboardingData struct {
	Country          string
	RelationshipType RelationshipType
	Stage            Stage
	Priorities       []Priority
	HasChildren      bool
	ChildrenCount    *int
	ChildrenAges     *string
}

// ProfileUpdateParams holds partial-update fields for a profile after
// onboarding. Nil means "leave unchanged".
type ProfileUpdateParams struct {
	Country          *string
	RelationshipType *RelationshipType
	Stage            *Stage
	Priorities       []Priority
	HasChildren      *bool
	ChildrenCount    *int
	ChildrenAges     *string
}

// User is an authenticated account.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is a server-side record of an issued refresh token.
// Only the SHA-256 hash of the raw token is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// IsActive reports whether the token is neither revoked nor expired.
func (t *RefreshToken) IsActive(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
