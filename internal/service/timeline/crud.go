package timeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

// Create adds a new timeline event for the user.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.TimelineEvent, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &domain.TimelineEvent{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		Category:    input.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("timeline.Create: %w", err)
	}

	s.log.InfoContext(ctx, "timeline event created",
		slog.String("event_id", created.ID.String()))

	return created, nil
}

// Get returns a single owned event.
func (s *Service) Get(ctx context.Context, userID, eventID uuid.UUID) (*domain.TimelineEvent, error) {
	event, err := s.repo.GetByID(ctx, userID, eventID)
	if err != nil {
		return nil, fmt.Errorf("timeline.Get: %w", err)
	}
	return event, nil
}

// List returns events matching the filter, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, filter domain.TimelineFilter) ([]domain.TimelineEvent, error) {
	if filter.Category != nil && !filter.Category.IsValid() {
		return nil, domain.NewValidationError("category", "unknown category")
	}

	events, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("timeline.List: %w", err)
	}
	return events, nil
}

// Update applies a partial update to an owned event.
func (s *Service) Update(ctx context.Context, userID, eventID uuid.UUID, input UpdateInput) (*domain.TimelineEvent, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, userID, eventID, domain.TimelineUpdateParams{
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		Category:    input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("timeline.Update: %w", err)
	}

	return updated, nil
}

// Delete removes an owned event.
func (s *Service) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, eventID); err != nil {
		return fmt.Errorf("timeline.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "timeline event deleted",
		slog.String("event_id", eventID.String()))

	return nil
}
