// Package journal implements journal entry operations, including the AI
// incident-report summary.
package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/config"
	"github.com/liam-m3/divorce-companion/internal/domain"
)

// journalRepo defines the repository interface needed by the journal service.
type journalRepo interface {
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error)
	List(ctx context.Context, userID uuid.UUID, f domain.JournalFilter) ([]domain.JournalEntry, error)
	Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
	Update(ctx context.Context, userID, entryID uuid.UUID, params domain.JournalUpdateParams) (*domain.JournalEntry, error)
	SetSummary(ctx context.Context, userID, entryID uuid.UUID, summary string, generatedAt time.Time) error
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
}

// completionClient defines the LLM interface needed by the journal service.
type completionClient interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// Service implements journal operations.
type Service struct {
	log  *slog.Logger
	repo journalRepo
	llm  completionClient
	cfg  config.BriefConfig
}

// NewService creates a new journal service instance.
func NewService(logger *slog.Logger, repo journalRepo, llm completionClient, cfg config.BriefConfig) *Service {
	return &Service{
		log:  logger.With("service", "journal"),
		repo: repo,
		llm:  llm,
		cfg:  cfg,
	}
}
