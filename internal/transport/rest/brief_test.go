package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liam-m3/divorce-companion/internal/domain"
	"github.com/liam-m3/divorce-companion/internal/service/brief"
	"github.com/liam-m3/divorce-companion/pkg/ctxutil"
)

type briefServiceMock struct {
	GenerateFunc func(ctx context.Context, userID uuid.UUID) (*brief.Result, error)
}

func (m *briefServiceMock) Generate(ctx context.Context, userID uuid.UUID) (*brief.Result, error) {
	return m.GenerateFunc(ctx, userID)
}

func authedRequest(method, target string, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(ctxutil.WithUserID(req.Context(), userID))
}

func TestBriefGenerate_HappyPath(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := &briefServiceMock{
		GenerateFunc: func(ctx context.Context, gotUserID uuid.UUID) (*brief.Result, error) {
			assert.Equal(t, userID, gotUserID)
			return &brief.Result{
				Brief: "Situation overview for your solicitor.",
				Stats: brief.Stats{
					JournalCount:   4,
					DocumentCount:  2,
					FinancialCount: 3,
					TimelineCount:  1,
				},
			}, nil
		},
	}
	h := NewBriefHandler(svc, slog.Default())

	rec := httptest.NewRecorder()
	h.Generate(rec, authedRequest(http.MethodPost, "/api/brief/generate", userID))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Brief string `json:"brief"`
		Stats struct {
			JournalCount   int `json:"journalCount"`
			DocumentCount  int `json:"documentCount"`
			FinancialCount int `json:"financialCount"`
			TimelineCount  int `json:"timelineCount"`
		} `json:"stats"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Situation overview for your solicitor.", resp.Brief)
	assert.Equal(t, 4, resp.Stats.JournalCount)
	assert.Equal(t, 2, resp.Stats.DocumentCount)
	assert.Equal(t, 3, resp.Stats.FinancialCount)
	assert.Equal(t, 1, resp.Stats.TimelineCount)
}

func TestBriefGenerate_InsufficientData(t *testing.T) {
	t.Parallel()

	svc := &briefServiceMock{
		GenerateFunc: func(ctx context.Context, userID uuid.UUID) (*brief.Result, error) {
			return nil, domain.ErrInsufficientData
		},
	}
	h := NewBriefHandler(svc, slog.Default())

	rec := httptest.NewRecorder()
	h.Generate(rec, authedRequest(http.MethodPost, "/api/brief/generate", uuid.New()))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t,
		"No data to generate brief from. Add some journal entries, timeline events, or financial items first.",
		resp["error"])
}

func TestBriefGenerate_NoUserInContext(t *testing.T) {
	t.Parallel()

	svc := &briefServiceMock{
		GenerateFunc: func(ctx context.Context, userID uuid.UUID) (*brief.Result, error) {
			t.Error("service should not be called without a user")
			return nil, nil
		},
	}
	h := NewBriefHandler(svc, slog.Default())

	rec := httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/brief/generate", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
