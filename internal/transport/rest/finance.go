package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/domain"
	"github.com/liam-m3/divorce-companion/internal/service/finance"
)

// financeService defines the minimal interface needed by FinanceHandler.
type financeService interface {
	Create(ctx context.Context, userID uuid.UUID, input finance.CreateInput) (*domain.FinancialItem, error)
	Get(ctx context.Context, userID, itemID uuid.UUID) (*domain.FinancialItem, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.FinancialItem, error)
	Update(ctx context.Context, userID, itemID uuid.UUID, input finance.UpdateInput) (*domain.FinancialItem, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
	Summary(ctx context.Context, userID uuid.UUID) (*domain.FinancialSummary, error)
}

// FinanceHandler serves financial item REST endpoints.
type FinanceHandler struct {
	svc financeService
	log *slog.Logger
}

// NewFinanceHandler creates a FinanceHandler.
func NewFinanceHandler(svc financeService, logger *slog.Logger) *FinanceHandler {
	return &FinanceHandler{svc: svc, log: logger.With("handler", "finance")}
}

type financialItemRequest struct {
	Kind      string   `json:"kind"`
	Name      string   `json:"name"`
	Amount    float64  `json:"amount"`
	Frequency *string  `json:"frequency"`
	Notes     *string  `json:"notes"`
}

type financialItemUpdateRequest struct {
	Kind      *string  `json:"kind"`
	Name      *string  `json:"name"`
	Amount    *float64 `json:"amount"`
	Frequency *string  `json:"frequency"`
	Notes     *string  `json:"notes"`
}

type financialItemResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Frequency *string   `json:"frequency"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type financialSummaryResponse struct {
	TotalAssets     float64 `json:"totalAssets"`
	TotalDebts      float64 `json:"totalDebts"`
	NetWorth        float64 `json:"netWorth"`
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	MonthlyNet      float64 `json:"monthlyNet"`
}

// List handles GET /api/finances.
func (h *FinanceHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	items, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]financialItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toFinancialResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// Create handles POST /api/finances.
func (h *FinanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var req financialItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := finance.CreateInput{
		Kind:   domain.FinancialKind(req.Kind),
		Name:   req.Name,
		Amount: req.Amount,
		Notes:  req.Notes,
	}
	if req.Frequency != nil {
		frequency := domain.Frequency(*req.Frequency)
		input.Frequency = &frequency
	}

	item, err := h.svc.Create(r.Context(), userID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFinancialResponse(item))
}

// Get handles GET /api/finances/{id}.
func (h *FinanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	itemID, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Get(r.Context(), userID, itemID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFinancialResponse(item))
}

// Update handles PATCH /api/finances/{id}.
func (h *FinanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	itemID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req financialItemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := finance.UpdateInput{
		Name:   req.Name,
		Amount: req.Amount,
		Notes:  req.Notes,
	}
	if req.Kind != nil {
		kind := domain.FinancialKind(*req.Kind)
		input.Kind = &kind
	}
	if req.Frequency != nil {
		frequency := domain.Frequency(*req.Frequency)
		input.Frequency = &frequency
	}

	item, err := h.svc.Update(r.Context(), userID, itemID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFinancialResponse(item))
}

// Delete handles DELETE /api/finances/{id}.
func (h *FinanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	itemID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), userID, itemID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Summary handles GET /api/finances/summary.
func (h *FinanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.Summary(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, financialSummaryResponse{
		TotalAssets:     summary.TotalAssets,
		TotalDebts:      summary.TotalDebts,
		NetWorth:        summary.NetWorth,
		MonthlyIncome:   summary.MonthlyIncome,
		MonthlyExpenses: summary.MonthlyExpenses,
		MonthlyNet:      summary.MonthlyNet,
	})
}

func toFinancialResponse(item *domain.FinancialItem) financialItemResponse {
	return financialItemResponse{
		ID:        item.ID.String(),
		Kind:      string(item.Kind),
		Name:      item.Name,
		Amount:    item.Amount,
		Frequency: enumPtr(item.Frequency),
		Notes:     item.Notes,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
