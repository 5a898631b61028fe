// Package brief implements on-demand situation brief generation: every
// record the user has, aggregated into one prompt, one completion call, no
// persistence.
package brief

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/config"
	"github.com/liam-m3/divorce-companion/internal/domain"
)

// journalRepo defines the journal repository interface needed by the brief service.
type journalRepo interface {
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.JournalEntry, error)
}

// documentRepo defines the document repository interface needed by the brief service.
type documentRepo interface {
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Document, error)
}

// financialRepo defines the financial repository interface needed by the brief service.
type financialRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.FinancialItem, error)
}

// timelineRepo defines the timeline repository interface needed by the brief service.
type timelineRepo interface {
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.TimelineEvent, error)
}

// profileRepo defines the profile repository interface needed by the brief service.
type profileRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

// completionClient defines the LLM interface needed by the brief service.
type completionClient interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// Service implements brief generation.
type Service struct {
	log       *slog.Logger
	journal   journalRepo
	documents documentRepo
	finances  financialRepo
	timeline  timelineRepo
	profiles  profileRepo
	llm       completionClient
	cfg       config.BriefConfig
}

// NewService creates a new brief service instance.
func NewService(
	logger *slog.Logger,
	journal journalRepo,
	documents documentRepo,
	finances financialRepo,
	timeline timelineRepo,
	profiles profileRepo,
	llm completionClient,
	cfg config.BriefConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "brief"),
		journal:   journal,
		documents: documents,
		finances:  finances,
		timeline:  timeline,
		profiles:  profiles,
		llm:       llm,
		cfg:       cfg,
	}
}

// Stats counts the records that fed a generated brief.
type Stats struct {
	JournalCount   int
	DocumentCount  int
	FinancialCount int
	TimelineCount  int
}

// Result is returned by Generate. The brief is never persisted.
type Result struct {
	Brief string
	Stats Stats
}
