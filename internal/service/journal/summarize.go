package journal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

// SummaryResult is returned by Summarize.
type SummaryResult struct {
	Summary     string
	GeneratedAt time.Time
}

// Summarize fetches an owned entry, generates a structured incident-report
// summary in one completion call, and persists it onto the entry.
// An empty completion is a valid empty summary. Re-running replaces any
// previous summary.
func (s *Service) Summarize(ctx context.Context, userID, entryID uuid.UUID) (*SummaryResult, error) {
	entry, err := s.repo.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("journal.Summarize: %w", err)
	}

	summary, err := s.llm.Complete(ctx, summarySystemPrompt, buildSummaryUserContent(entry), s.cfg.SummaryMaxTokens)
	if err != nil {
		s.log.ErrorContext(ctx, "summary generation failed",
			slog.String("entry_id", entryID.String()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("journal.Summarize: %w", domain.ErrGenerationFailed)
	}

	generatedAt := time.Now().UTC()
	if err := s.repo.SetSummary(ctx, userID, entryID, summary, generatedAt); err != nil {
		s.log.ErrorContext(ctx, "summary persistence failed",
			slog.String("entry_id", entryID.String()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("journal.Summarize: %w", domain.ErrPersistenceFailed)
	}

	s.log.InfoContext(ctx, "journal entry summarised",
		slog.String("entry_id", entryID.String()),
		slog.Int("summary_len", len(summary)))

	return &SummaryResult{Summary: summary, GeneratedAt: generatedAt}, nil
}
