package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

// Get returns the user's profile. Every user has one, created at
// registration.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.Get: %w", err)
	}
	return profile, nil
}

// CompleteOnboarding stores the wizard answers and marks onboarding done.
// Re-running replaces the previous answers.
func (s *Service) CompleteOnboarding(ctx context.Context, userID uuid.UUID, input OnboardingInput) (*domain.Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.repo.CompleteOnboarding(ctx, userID, domain.OnboardingData{
		Country:          input.Country,
		RelationshipType: input.RelationshipType,
		Stage:            input.Stage,
		Priorities:       input.Priorities,
		HasChildren:      input.HasChildren,
		ChildrenCount:    input.ChildrenCount,
		ChildrenAges:     input.ChildrenAges,
	})
	if err != nil {
		return nil, fmt.Errorf("profile.CompleteOnboarding: %w", err)
	}

	s.log.InfoContext(ctx, "onboarding completed",
		slog.String("user_id", userID.String()),
		slog.String("stage", string(input.Stage)))

	return profile, nil
}

// Update applies a partial update to the user's profile.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*domain.Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.repo.Update(ctx, userID, domain.ProfileUpdateParams{
		Country:          input.Country,
		RelationshipType: input.RelationshipType,
		Stage:            input.Stage,
		Priorities:       input.Priorities,
		HasChildren:      input.HasChildren,
		ChildrenCount:    input.ChildrenCount,
		ChildrenAges:     input.ChildrenAges,
	})
	if err != nil {
		return nil, fmt.Errorf("profile.Update: %w", err)
	}

	return profile, nil
}
