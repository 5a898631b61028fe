package domain

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is a free-text narrative about an incident, with an optional
// AI-generated summary. Summary and SummaryGeneratedAt are both set or both
// nil: any edit to Content clears them so a stored summary always describes
// the current content.
type JournalEntry struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        *string
	Content      string
	Mood         *Mood
	Category     *JournalCategory
	IncidentDate time.Time

	Summary            *string
	SummaryGeneratedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSummary reports whether the entry carries a current AI summary.
func (e *JournalEntry) HasSummary() bool {
	return e.Summary != nil && e.SummaryGeneratedAt != nil
}

// JournalFilter narrows List queries. Zero values mean "no filter".
type JournalFilter struct {
	Mood     *Mood
	Category *JournalCategory
	Search   string
	Limit    int
	Offset   int
}

// JournalUpdateParams holds partial-update fields for a journal entry.
// Nil means "leave unchanged"; ClearTitle etc. are expressed by pointers
// to empty values at the service boundary.
type JournalUpdateParams struct {
	Title        *string
	Content      *string
	Mood         *Mood
	Category     *JournalCategory
	IncidentDate *time.Time
}
