package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/domain"
	"github.com/liam-m3/divorce-companion/internal/service/timeline"
)

// timelineService defines the minimal interface needed by TimelineHandler.
type timelineService interface {
	Create(ctx context.Context, userID uuid.UUID, input timeline.CreateInput) (*domain.TimelineEvent, error)
	Get(ctx context.Context, userID, eventID uuid.UUID) (*domain.TimelineEvent, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.TimelineFilter) ([]domain.TimelineEvent, error)
	Update(ctx context.Context, userID, eventID uuid.UUID, input timeline.UpdateInput) (*domain.TimelineEvent, error)
	Delete(ctx context.Context, userID, eventID uuid.UUID) error
}

// TimelineHandler serves timeline REST endpoints.
type TimelineHandler struct {
	svc timelineService
	log *slog.Logger
}

// NewTimelineHandler creates a TimelineHandler.
func NewTimelineHandler(svc timelineService, logger *slog.Logger) *TimelineHandler {
	return &TimelineHandler{svc: svc, log: logger.With("handler", "timeline")}
}

type timelineEventRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	EventDate   string  `json:"eventDate"`
	Category    *string `json:"category"`
}

type timelineEventUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	EventDate   *string `json:"eventDate"`
	Category    *string `json:"category"`
}

type timelineEventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	EventDate   string    `json:"eventDate"`
	Category    *string   `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// List handles GET /api/timeline.
func (h *TimelineHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	filter := domain.TimelineFilter{Search: r.URL.Query().Get("search")}
	if v := r.URL.Query().Get("category"); v != "" {
		category := domain.TimelineCategory(v)
		filter.Category = &category
	}

	events, err := h.svc.List(r.Context(), userID, filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]timelineEventResponse, 0, len(events))
	for i := range events {
		out = append(out, toTimelineResponse(&events[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": out})
}

// Create handles POST /api/timeline.
func (h *TimelineHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var req timelineEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := timeline.CreateInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.EventDate != "" {
		date, err := parseDate(req.EventDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid eventDate")
			return
		}
		input.EventDate = date
	}
	if req.Category != nil {
		category := domain.TimelineCategory(*req.Category)
		input.Category = &category
	}

	event, err := h.svc.Create(r.Context(), userID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTimelineResponse(event))
}

// Get handles GET /api/timeline/{id}.
func (h *TimelineHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r)
	if !ok {
		return
	}

	event, err := h.svc.Get(r.Context(), userID, eventID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimelineResponse(event))
}

// Update handles PATCH /api/timeline/{id}.
func (h *TimelineHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req timelineEventUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := timeline.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.EventDate != nil {
		date, err := parseDate(*req.EventDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid eventDate")
			return
		}
		input.EventDate = &date
	}
	if req.Category != nil {
		category := domain.TimelineCategory(*req.Category)
		input.Category = &category
	}

	event, err := h.svc.Update(r.Context(), userID, eventID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimelineResponse(event))
}

// Delete handles DELETE /api/timeline/{id}.
func (h *TimelineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), userID, eventID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toTimelineResponse(e *domain.TimelineEvent) timelineEventResponse {
	return timelineEventResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		EventDate:   formatDate(e.EventDate),
		Category:    enumPtr(e.Category),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
