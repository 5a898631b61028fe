package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liam-m3/divorce-companion/internal/domain"
	"github.com/liam-m3/divorce-companion/internal/service/journal"
	"github.com/liam-m3/divorce-companion/pkg/ctxutil"
)

type journalServiceMock struct {
	CreateFunc    func(ctx context.Context, userID uuid.UUID, input journal.CreateInput) (*domain.JournalEntry, error)
	GetFunc       func(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error)
	ListFunc      func(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) ([]domain.JournalEntry, error)
	UpdateFunc    func(ctx context.Context, userID, entryID uuid.UUID, input journal.UpdateInput) (*domain.JournalEntry, error)
	DeleteFunc    func(ctx context.Context, userID, entryID uuid.UUID) error
	SummarizeFunc func(ctx context.Context, userID, entryID uuid.UUID) (*journal.SummaryResult, error)
}

func (m *journalServiceMock) Create(ctx context.Context, userID uuid.UUID, input journal.CreateInput) (*domain.JournalEntry, error) {
	return m.CreateFunc(ctx, userID, input)
}

func (m *journalServiceMock) Get(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, entryID)
	}
	return nil, domain.ErrNotFound
}

func (m *journalServiceMock) List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) ([]domain.JournalEntry, error) {
	return m.ListFunc(ctx, userID, filter)
}

func (m *journalServiceMock) Update(ctx context.Context, userID, entryID uuid.UUID, input journal.UpdateInput) (*domain.JournalEntry, error) {
	return m.UpdateFunc(ctx, userID, entryID, input)
}

func (m *journalServiceMock) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, entryID)
}

func (m *journalServiceMock) Summarize(ctx context.Context, userID, entryID uuid.UUID) (*journal.SummaryResult, error) {
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, userID, entryID)
	}
	return nil, domain.ErrNotFound
}

func postJSON(target, body string, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(ctxutil.WithUserID(req.Context(), userID))
}

func TestJournalSummarise_HappyPath(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	entryID := uuid.New()
	generatedAt := time.Date(2026, 5, 2, 10, 30, 0, 0, time.UTC)

	svc := &journalServiceMock{
		SummarizeFunc: func(ctx context.Context, gotUserID, gotEntryID uuid.UUID) (*journal.SummaryResult, error) {
			assert.Equal(t, userID, gotUserID)
			assert.Equal(t, entryID, gotEntryID)
			return &journal.SummaryResult{
				Summary:     "INCIDENT SUMMARY: raised voices at handover.",
				GeneratedAt: generatedAt,
			}, nil
		},
	}
	h := NewJournalHandler(svc, slog.Default())

	rec := httptest.NewRecorder()
	h.Summarise(rec, postJSON("/api/journal/summarise", `{"entryId":"`+entryID.String()+`"}`, userID))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Summary     string    `json:"summary"`
		GeneratedAt time.Time `json:"generatedAt"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "INCIDENT SUMMARY: raised voices at handover.", resp.Summary)
	assert.True(t, generatedAt.Equal(resp.GeneratedAt))
}

func TestJournalSummarise_InvalidEntryID(t *testing.T) {
	t.Parallel()

	svc := &journalServiceMock{
		SummarizeFunc: func(ctx context.Context, userID, entryID uuid.UUID) (*journal.SummaryResult, error) {
			t.Error("service should not be called with an invalid id")
			return nil, nil
		},
	}
	h := NewJournalHandler(svc, slog.Default())

	rec := httptest.NewRecorder()
	h.Summarise(rec, postJSON("/api/journal/summarise", `{"entryId":"not-a-uuid"}`, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJournalSummarise_EntryNotFound(t *testing.T) {
	t.Parallel()

	h := NewJournalHandler(&journalServiceMock{}, slog.Default())

	rec := httptest.NewRecorder()
	h.Summarise(rec, postJSON("/api/journal/summarise", `{"entryId":"`+uuid.NewString()+`"}`, uuid.New()))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJournalCreate_ValidationErrorShape(t *testing.T) {
	t.Parallel()

	svc := &journalServiceMock{
		CreateFunc: func(ctx context.Context, userID uuid.UUID, input journal.CreateInput) (*domain.JournalEntry, error) {
			return nil, &domain.ValidationError{Errors: []domain.FieldError{
				{Field: "content", Message: "required"},
			}}
		},
	}
	h := NewJournalHandler(svc, slog.Default())

	rec := httptest.NewRecorder()
	h.Create(rec, postJSON("/api/journal", `{"content":""}`, uuid.New()))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error  string `json:"error"`
		Fields []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "validation failed", resp.Error)
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "content", resp.Fields[0].Field)
	assert.Equal(t, "required", resp.Fields[0].Message)
}

func TestJournalCreate_HappyPath(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	now := time.Now().UTC()

	svc := &journalServiceMock{
		CreateFunc: func(ctx context.Context, gotUserID uuid.UUID, input journal.CreateInput) (*domain.JournalEntry, error) {
			assert.Equal(t, userID, gotUserID)
			assert.Equal(t, "He cancelled the contact visit again.", input.Content)
			require.NotNil(t, input.Mood)
			assert.Equal(t, domain.MoodFrustrated, *input.Mood)
			assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), input.IncidentDate)
			return &domain.JournalEntry{
				ID:           uuid.New(),
				UserID:       userID,
				Content:      input.Content,
				Mood:         input.Mood,
				IncidentDate: input.IncidentDate,
				CreatedAt:    now,
				UpdatedAt:    now,
			}, nil
		},
	}
	h := NewJournalHandler(svc, slog.Default())

	body := `{"content":"He cancelled the contact visit again.","mood":"frustrated","incidentDate":"2026-06-01"}`
	rec := httptest.NewRecorder()
	h.Create(rec, postJSON("/api/journal", body, userID))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp journalEntryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "He cancelled the contact visit again.", resp.Content)
	require.NotNil(t, resp.Mood)
	assert.Equal(t, "frustrated", *resp.Mood)
	assert.Equal(t, "2026-06-01", resp.IncidentDate)
}
