package brief

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

// Generate aggregates the user's case data and produces a situation brief in
// one completion call.
//
// The five fetches run in parallel. A failed collection fetch degrades to an
// empty slice and a missing profile to nil, so a partial brief still
// generates. When every collection is empty the call fails with
// ErrInsufficientData before any completion is attempted.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID) (*Result, error) {
	var (
		entries   []domain.JournalEntry
		documents []domain.Document
		finances  []domain.FinancialItem
		timeline  []domain.TimelineEvent
		profile   *domain.Profile
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if entries, err = s.journal.ListRecent(gctx, userID, s.cfg.JournalLimit); err != nil {
			s.log.WarnContext(gctx, "journal fetch failed, continuing without",
				slog.String("error", err.Error()))
			entries = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if documents, err = s.documents.ListAll(gctx, userID); err != nil {
			s.log.WarnContext(gctx, "document fetch failed, continuing without",
				slog.String("error", err.Error()))
			documents = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if finances, err = s.finances.List(gctx, userID); err != nil {
			s.log.WarnContext(gctx, "finance fetch failed, continuing without",
				slog.String("error", err.Error()))
			finances = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if timeline, err = s.timeline.ListAll(gctx, userID); err != nil {
			s.log.WarnContext(gctx, "timeline fetch failed, continuing without",
				slog.String("error", err.Error()))
			timeline = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if profile, err = s.profiles.Get(gctx, userID); err != nil {
			profile = nil
		}
		return nil
	})

	// Workers swallow their errors, so this only propagates ctx cancellation.
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("brief.Generate: %w", err)
	}

	if len(entries) == 0 && len(documents) == 0 && len(finances) == 0 && len(timeline) == 0 {
		return nil, fmt.Errorf("brief.Generate: %w", domain.ErrInsufficientData)
	}

	userContent := buildBriefUserContent(profile, entries, timeline, finances, documents)

	brief, err := s.llm.Complete(ctx, briefSystemPrompt, userContent, s.cfg.MaxTokens)
	if err != nil {
		s.log.ErrorContext(ctx, "brief generation failed",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("brief.Generate: %w", domain.ErrGenerationFailed)
	}

	s.log.InfoContext(ctx, "brief generated",
		slog.Int("journal_count", len(entries)),
		slog.Int("document_count", len(documents)),
		slog.Int("financial_count", len(finances)),
		slog.Int("timeline_count", len(timeline)),
		slog.Int("brief_len", len(brief)))

	return &Result{
		Brief: brief,
		Stats: Stats{
			JournalCount:   len(entries),
			DocumentCount:  len(documents),
			FinancialCount: len(finances),
			TimelineCount:  len(timeline),
		},
	}, nil
}
