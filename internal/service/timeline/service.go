// Package timeline implements dated case event operations.
package timeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

// timelineRepo defines the repository interface needed by the timeline service.
type timelineRepo interface {
	GetByID(ctx context.Context, userID, eventID uuid.UUID) (*domain.TimelineEvent, error)
	List(ctx context.Context, userID uuid.UUID, f domain.TimelineFilter) ([]domain.TimelineEvent, error)
	Create(ctx context.Context, event *domain.TimelineEvent) (*domain.TimelineEvent, error)
	Update(ctx context.Context, userID, eventID uuid.UUID, params domain.TimelineUpdateParams) (*domain.TimelineEvent, error)
	Delete(ctx context.Context, userID, eventID uuid.UUID) error
}

// Service implements timeline event operations.
type Service struct {
	log  *slog.Logger
	repo timelineRepo
}

// NewService creates a new timeline service instance.
func NewService(logger *slog.Logger, repo timelineRepo) *Service {
	return &Service{
		log:  logger.With("service", "timeline"),
		repo: repo,
	}
}
