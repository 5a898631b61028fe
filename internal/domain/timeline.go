package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimelineEvent is a dated milestone in the user's case.
type TimelineEvent struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description *string
	EventDate   time.Time
	Category    *TimelineCategory
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TimelineFilter narrows timeline List queries.
type TimelineFilter struct {
	Category *TimelineCategory
	Search   string
}

// TimelineUpdateParams holds partial-update fields for a timeline event.
type TimelineUpdateParams struct {
	Title       *string
	Description *string
	EventDate   *time.Time
	Category    *TimelineCategory
}
