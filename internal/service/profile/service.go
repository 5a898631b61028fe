// Package profile implements profile and onboarding operations.
package profile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

// profileRepo defines the repository interface needed by the profile service.
type profileRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	CompleteOnboarding(ctx context.Context, userID uuid.UUID, data domain.OnboardingData) (*domain.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, params domain.ProfileUpdateParams) (*domain.Profile, error)
}

// Service implements profile operations.
type Service struct {
	log  *slog.Logger
	repo profileRepo
}

// NewService creates a new profile service instance.
func NewService(logger *slog.Logger, repo profileRepo) *Service {
	return &Service{
		log:  logger.With("service", "profile"),
		repo: repo,
	}
}
