package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/service/brief"
)

// briefService defines the minimal interface needed by BriefHandler.
type briefService interface {
	Generate(ctx context.Context, userID uuid.UUID) (*brief.Result, error)
}

// BriefHandler serves the situation brief endpoint.
type BriefHandler struct {
	svc briefService
	log *slog.Logger
}

// NewBriefHandler creates a BriefHandler.
func NewBriefHandler(svc briefService, logger *slog.Logger) *BriefHandler {
	return &BriefHandler{svc: svc, log: logger.With("handler", "brief")}
}

type briefResponse struct {
	Brief string     `json:"brief"`
	Stats briefStats `json:"stats"`
}

type briefStats struct {
	JournalCount   int `json:"journalCount"`
	DocumentCount  int `json:"documentCount"`
	FinancialCount int `json:"financialCount"`
	TimelineCount  int `json:"timelineCount"`
}

// Generate handles POST /api/brief/generate. The brief is returned to the
// caller and never stored.
func (h *BriefHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	result, err := h.svc.Generate(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, briefResponse{
		Brief: result.Brief,
		Stats: briefStats{
			JournalCount:   result.Stats.JournalCount,
			DocumentCount:  result.Stats.DocumentCount,
			FinancialCount: result.Stats.FinancialCount,
			TimelineCount:  result.Stats.TimelineCount,
		},
	})
}
