// Package vault implements the document vault: metadata rows in Postgres,
// binaries in an external object store.
package vault

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/config"
	"github.com/liam-m3/divorce-companion/internal/domain"
)

// documentRepo defines the repository interface needed by the vault service.
type documentRepo interface {
	GetByID(ctx context.Context, userID, docID uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, userID uuid.UUID, f domain.DocumentFilter) ([]domain.Document, error)
	Create(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	Update(ctx context.Context, userID, docID uuid.UUID, params domain.DocumentUpdateParams) (*domain.Document, error)
	Delete(ctx context.Context, userID, docID uuid.UUID) error
}

// objectStore defines the blob storage interface needed by the vault service.
type objectStore interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) error
	SignedURL(key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// Service implements document vault operations.
type Service struct {
	log   *slog.Logger
	repo  documentRepo
	store objectStore
	cfg   config.StorageConfig
}

// NewService creates a new vault service instance.
func NewService(logger *slog.Logger, repo documentRepo, store objectStore, cfg config.StorageConfig) *Service {
	return &Service{
		log:   logger.With("service", "vault"),
		repo:  repo,
		store: store,
		cfg:   cfg,
	}
}
