package finance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

// Create adds a new financial item for the user.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.FinancialItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &domain.FinancialItem{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      input.Kind,
		Name:      input.Name,
		Amount:    input.Amount,
		Frequency: input.Frequency,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("finance.Create: %w", err)
	}

	s.log.InfoContext(ctx, "financial item created",
		slog.String("item_id", created.ID.String()),
		slog.String("kind", string(created.Kind)))

	return created, nil
}

// Get returns a single owned item.
func (s *Service) Get(ctx context.Context, userID, itemID uuid.UUID) (*domain.FinancialItem, error) {
	item, err := s.repo.GetByID(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("finance.Get: %w", err)
	}
	return item, nil
}

// List returns all of the user's items grouped by kind.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]domain.FinancialItem, error) {
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("finance.List: %w", err)
	}
	return items, nil
}

// Update applies a partial update to an owned item. Changing an item's kind
// across the frequency boundary either requires or forbids a frequency: a
// move to asset/debt silently drops any stored frequency, a move to
// income/expense must supply one.
func (s *Service) Update(ctx context.Context, userID, itemID uuid.UUID, input UpdateInput) (*domain.FinancialItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("finance.Update: %w", err)
	}

	kind := existing.Kind
	if input.Kind != nil {
		kind = *input.Kind
	}
	frequency := existing.Frequency
	if input.Frequency != nil {
		frequency = input.Frequency
	}

	clearFrequency := false
	switch {
	case kind.HasFrequency() && frequency == nil:
		return nil, domain.NewValidationError("frequency", "required for income and expense items")
	case !kind.HasFrequency() && input.Frequency != nil:
		return nil, domain.NewValidationError("frequency", "not allowed for assets and debts")
	case !kind.HasFrequency() && existing.Frequency != nil:
		clearFrequency = true
	}

	updated, err := s.repo.Update(ctx, userID, itemID, domain.FinancialUpdateParams{
		Kind:      input.Kind,
		Name:      input.Name,
		Amount:    input.Amount,
		Frequency: input.Frequency,
		Notes:     input.Notes,
	}, clearFrequency)
	if err != nil {
		return nil, fmt.Errorf("finance.Update: %w", err)
	}

	return updated, nil
}

// Delete removes an owned item.
func (s *Service) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, itemID); err != nil {
		return fmt.Errorf("finance.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "financial item deleted",
		slog.String("item_id", itemID.String()))

	return nil
}
