// Package dashboard assembles the stage- and priority-driven dashboard
// content for a user.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

// profileRepo defines the repository interface needed by the dashboard service.
type profileRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

// Service implements dashboard content selection.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
}

// NewService creates a new dashboard service instance.
func NewService(logger *slog.Logger, profiles profileRepo) *Service {
	return &Service{
		log:      logger.With("service", "dashboard"),
		profiles: profiles,
	}
}

// Content is a user's assembled dashboard.
type Content struct {
	WelcomeMessage      string
	OnboardingCompleted bool
	Blocks              []domain.ContentBlock
}

// Get returns the dashboard for the user. A user who has not finished
// onboarding gets an empty dashboard with the flag down, which the client
// uses to redirect into the wizard.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*Content, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Get: %w", err)
	}

	content := &Content{OnboardingCompleted: profile.OnboardingCompleted}
	if !profile.OnboardingCompleted {
		return content, nil
	}

	if profile.Stage != nil {
		content.WelcomeMessage = stageWelcome[*profile.Stage]
	}
	content.Blocks = blocksFor(profile.Stage, profile.Priorities)

	return content, nil
}
