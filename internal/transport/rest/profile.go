package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/domain"
	"github.com/liam-m3/divorce-companion/internal/service/profile"
)

// profileService defines the minimal interface needed by ProfileHandler.
type profileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	CompleteOnboarding(ctx context.Context, userID uuid.UUID, input profile.OnboardingInput) (*domain.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, input profile.UpdateInput) (*domain.Profile, error)
}

// ProfileHandler serves profile REST endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type onboardingRequest struct {
	Country          string   `json:"country"`
	RelationshipType string   `json:"relationshipType"`
	Stage            string   `json:"stage"`
	Priorities       []string `json:"priorities"`
	HasChildren      bool     `json:"hasChildren"`
	ChildrenCount    *int     `json:"childrenCount"`
	ChildrenAges     *string  `json:"childrenAges"`
}

type profileUpdateRequest struct {
	Country          *string  `json:"country"`
	RelationshipType *string  `json:"relationshipType"`
	Stage            *string  `json:"stage"`
	Priorities       []string `json:"priorities"`
	HasChildren      *bool    `json:"hasChildren"`
	ChildrenCount    *int     `json:"childrenCount"`
	ChildrenAges     *string  `json:"childrenAges"`
}

type profileResponse struct {
	UserID              string    `json:"userId"`
	Country             *string   `json:"country"`
	RelationshipType    *string   `json:"relationshipType"`
	Stage               *string   `json:"stage"`
	Priorities          []string  `json:"priorities"`
	HasChildren         *bool     `json:"hasChildren"`
	ChildrenCount       *int      `json:"childrenCount"`
	ChildrenAges        *string   `json:"childrenAges"`
	OnboardingCompleted bool      `json:"onboardingCompleted"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Get(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// CompleteOnboarding handles POST /api/profile/onboarding.
func (h *ProfileHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var req onboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.CompleteOnboarding(r.Context(), userID, profile.OnboardingInput{
		Country:          req.Country,
		RelationshipType: domain.RelationshipType(req.RelationshipType),
		Stage:            domain.Stage(req.Stage),
		Priorities:       toPriorities(req.Priorities),
		HasChildren:      req.HasChildren,
		ChildrenCount:    req.ChildrenCount,
		ChildrenAges:     req.ChildrenAges,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Update handles PATCH /api/profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var req profileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := profile.UpdateInput{
		Country:       req.Country,
		Priorities:    toPriorities(req.Priorities),
		HasChildren:   req.HasChildren,
		ChildrenCount: req.ChildrenCount,
		ChildrenAges:  req.ChildrenAges,
	}
	if req.RelationshipType != nil {
		rel := domain.RelationshipType(*req.RelationshipType)
		input.RelationshipType = &rel
	}
	if req.Stage != nil {
		stage := domain.Stage(*req.Stage)
		input.Stage = &stage
	}

	p, err := h.svc.Update(r.Context(), userID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

func toPriorities(values []string) []domain.Priority {
	if values == nil {
		return nil
	}
	out := make([]domain.Priority, 0, len(values))
	for _, v := range values {
		out = append(out, domain.Priority(v))
	}
	return out
}

func toProfileResponse(p *domain.Profile) profileResponse {
	priorities := make([]string, 0, len(p.Priorities))
	for _, pr := range p.Priorities {
		priorities = append(priorities, string(pr))
	}

	return profileResponse{
		UserID:              p.UserID.String(),
		Country:             p.Country,
		RelationshipType:    enumPtr(p.RelationshipType),
		Stage:               enumPtr(p.Stage),
		Priorities:          priorities,
		HasChildren:         p.HasChildren,
		ChildrenCount:       p.ChildrenCount,
		ChildrenAges:        p.ChildrenAges,
		OnboardingCompleted: p.OnboardingCompleted,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
