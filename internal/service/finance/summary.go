package finance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

// Summary computes the aggregate position over all of the user's items.
// A user with no items gets an all-zero summary, not an error.
func (s *Service) Summary(ctx context.Context, userID uuid.UUID) (*domain.FinancialSummary, error) {
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("finance.Summary: %w", err)
	}

	summary := domain.SummarizeFinances(items)
	return &summary, nil
}
