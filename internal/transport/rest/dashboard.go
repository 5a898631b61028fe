package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/domain"
	"github.com/liam-m3/divorce-companion/internal/service/dashboard"
)

// dashboardService defines the minimal interface needed by DashboardHandler.
type dashboardService interface {
	Get(ctx context.Context, userID uuid.UUID) (*dashboard.Content, error)
}

// DashboardHandler serves the dashboard content endpoint.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type dashboardResponse struct {
	WelcomeMessage      string                 `json:"welcomeMessage"`
	OnboardingCompleted bool                   `json:"onboardingCompleted"`
	Blocks              []contentBlockResponse `json:"blocks"`
}

type contentBlockResponse struct {
	ID    string                  `json:"id"`
	Type  string                  `json:"type"`
	Title string                  `json:"title"`
	Text  string                  `json:"text,omitempty"`
	Items []checklistItemResponse `json:"items,omitempty"`
}

type checklistItemResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	content, err := h.svc.Get(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	blocks := make([]contentBlockResponse, 0, len(content.Blocks))
	for _, b := range content.Blocks {
		blocks = append(blocks, toBlockResponse(b))
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		WelcomeMessage:      content.WelcomeMessage,
		OnboardingCompleted: content.OnboardingCompleted,
		Blocks:              blocks,
	})
}

func toBlockResponse(b domain.ContentBlock) contentBlockResponse {
	out := contentBlockResponse{
		ID:    b.ID,
		Type:  string(b.Type),
		Title: b.Title,
		Text:  b.Text,
	}
	for _, item := range b.Items {
		out.Items = append(out.Items, checklistItemResponse{ID: item.ID, Text: item.Text})
	}
	return out
}
