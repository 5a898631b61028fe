package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/domain"
	"github.com/liam-m3/divorce-companion/internal/service/journal"
)

// journalService defines the minimal interface needed by JournalHandler.
type journalService interface {
	Create(ctx context.Context, userID uuid.UUID, input journal.CreateInput) (*domain.JournalEntry, error)
	Get(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) ([]domain.JournalEntry, error)
	Update(ctx context.Context, userID, entryID uuid.UUID, input journal.UpdateInput) (*domain.JournalEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
	Summarize(ctx context.Context, userID, entryID uuid.UUID) (*journal.SummaryResult, error)
}

// JournalHandler serves journal REST endpoints.
type JournalHandler struct {
	svc journalService
	log *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc journalService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, log: logger.With("handler", "journal")}
}

type journalEntryRequest struct {
	Title        *string `json:"title"`
	Content      string  `json:"content"`
	Mood         *string `json:"mood"`
	Category     *string `json:"category"`
	IncidentDate string  `json:"incidentDate"`
}

type journalUpdateRequest struct {
	Title        *string `json:"title"`
	Content      *string `json:"content"`
	Mood         *string `json:"mood"`
	Category     *string `json:"category"`
	IncidentDate *string `json:"incidentDate"`
}

type journalEntryResponse struct {
	ID                   string     `json:"id"`
	Title                *string    `json:"title"`
	Content              string     `json:"content"`
	Mood                 *string    `json:"mood"`
	Category             *string    `json:"category"`
	IncidentDate         string     `json:"incidentDate"`
	AISummary            *string    `json:"aiSummary"`
	AISummaryGeneratedAt *time.Time `json:"aiSummaryGeneratedAt"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

type summariseRequest struct {
	EntryID string `json:"entryId"`
}

type summariseResponse struct {
	Summary     string    `json:"summary"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// List handles GET /api/journal.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	filter := domain.JournalFilter{Search: r.URL.Query().Get("search")}
	if v := r.URL.Query().Get("mood"); v != "" {
		mood := domain.Mood(v)
		filter.Mood = &mood
	}
	if v := r.URL.Query().Get("category"); v != "" {
		category := domain.JournalCategory(v)
		filter.Category = &category
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		filter.Offset, _ = strconv.Atoi(v)
	}

	entries, err := h.svc.List(r.Context(), userID, filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]journalEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toJournalResponse(&entries[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": out})
}

// Create handles POST /api/journal.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var req journalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := journal.CreateInput{
		Title:    req.Title,
		Content:  req.Content,
		Mood:     toMood(req.Mood),
		Category: toJournalCategory(req.Category),
	}
	if req.IncidentDate != "" {
		date, err := parseDate(req.IncidentDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid incidentDate")
			return
		}
		input.IncidentDate = date
	}

	entry, err := h.svc.Create(r.Context(), userID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toJournalResponse(entry))
}

// Get handles GET /api/journal/{id}.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	entryID, ok := pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.Get(r.Context(), userID, entryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toJournalResponse(entry))
}

// Update handles PATCH /api/journal/{id}.
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	entryID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req journalUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := journal.UpdateInput{
		Title:    req.Title,
		Content:  req.Content,
		Mood:     toMood(req.Mood),
		Category: toJournalCategory(req.Category),
	}
	if req.IncidentDate != nil {
		date, err := parseDate(*req.IncidentDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid incidentDate")
			return
		}
		input.IncidentDate = &date
	}

	entry, err := h.svc.Update(r.Context(), userID, entryID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toJournalResponse(entry))
}

// Delete handles DELETE /api/journal/{id}.
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	entryID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), userID, entryID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Summarise handles POST /api/journal/summarise.
func (h *JournalHandler) Summarise(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var req summariseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	entryID, err := uuid.Parse(req.EntryID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entryId")
		return
	}

	result, err := h.svc.Summarize(r.Context(), userID, entryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summariseResponse{
		Summary:     result.Summary,
		GeneratedAt: result.GeneratedAt,
	})
}

func toJournalResponse(e *domain.JournalEntry) journalEntryResponse {
	return journalEntryResponse{
		ID:                   e.ID.String(),
		Title:                e.Title,
		Content:              e.Content,
		Mood:                 enumPtr(e.Mood),
		Category:             enumPtr(e.Category),
		IncidentDate:         formatDate(e.IncidentDate),
		AISummary:            e.Summary,
		AISummaryGeneratedAt: e.SummaryGeneratedAt,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func toMood(s *string) *domain.Mood {
	if s == nil {
		return nil
	}
	m := domain.Mood(*s)
	return &m
}

func toJournalCategory(s *string) *domain.JournalCategory {
	if s == nil {
		return nil
	}
	c := domain.JournalCategory(*s)
	return &c
}

// enumPtr converts a *T with string underlying type to a *string.
func enumPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
