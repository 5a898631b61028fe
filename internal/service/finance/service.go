// Package finance implements financial item tracking and the computed
// financial summary.
package finance

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

// financialRepo defines the repository interface needed by the finance service.
type financialRepo interface {
	GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.FinancialItem, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.FinancialItem, error)
	Create(ctx context.Context, item *domain.FinancialItem) (*domain.FinancialItem, error)
	Update(ctx context.Context, userID, itemID uuid.UUID, params domain.FinancialUpdateParams, clearFrequency bool) (*domain.FinancialItem, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
}

// Service implements financial item operations.
type Service struct {
	log  *slog.Logger
	repo financialRepo
}

// NewService creates a new finance service instance.
func NewService(logger *slog.Logger, repo financialRepo) *Service {
	return &Service{
		log:  logger.With("service", "finance"),
		repo: repo,
	}
}
