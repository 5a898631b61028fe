package journal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

// Create adds a new journal entry for the user.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.JournalEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &domain.JournalEntry{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        input.Title,
		Content:      input.Content,
		Mood:         input.Mood,
		Category:     input.Category,
		IncidentDate: input.IncidentDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("journal.Create: %w", err)
	}

	s.log.InfoContext(ctx, "journal entry created",
		slog.String("entry_id", created.ID.String()))

	return created, nil
}

// Get returns a single owned entry.
func (s *Service) Get(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	entry, err := s.repo.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("journal.Get: %w", err)
	}
	return entry, nil
}

// List returns entries matching the filter, newest incident first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) ([]domain.JournalEntry, error) {
	if filter.Mood != nil && !filter.Mood.IsValid() {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{{Field: "mood", Message: "unknown mood"}}}
	}
	if filter.Category != nil && !filter.Category.IsValid() {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{{Field: "category", Message: "unknown category"}}}
	}

	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("journal.List: %w", err)
	}
	return entries, nil
}

// Update applies a partial update to an owned entry. Content edits clear the
// stored summary; the repository enforces that atomically.
func (s *Service) Update(ctx context.Context, userID, entryID uuid.UUID, input UpdateInput) (*domain.JournalEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, userID, entryID, domain.JournalUpdateParams{
		Title:        input.Title,
		Content:      input.Content,
		Mood:         input.Mood,
		Category:     input.Category,
		IncidentDate: input.IncidentDate,
	})
	if err != nil {
		return nil, fmt.Errorf("journal.Update: %w", err)
	}

	return updated, nil
}

// Delete removes an owned entry.
func (s *Service) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, entryID); err != nil {
		return fmt.Errorf("journal.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "journal entry deleted",
		slog.String("entry_id", entryID.String()))

	return nil
}
