package vault

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

// Upload stores the binary in the object store and records its metadata.
// Blob first, row second: an orphaned blob is cleaned up best-effort when
// the row insert fails, the reverse would leave a row pointing nowhere.
func (s *Service) Upload(ctx context.Context, userID uuid.UUID, input UploadInput) (*domain.Document, error) {
	if err := input.Validate(s.cfg.MaxFileSize); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s-%s", userID, uuid.New(), input.FileName)

	if err := s.store.Upload(ctx, key, input.MimeType, input.Content); err != nil {
		return nil, fmt.Errorf("vault.Upload: %w", err)
	}

	doc := &domain.Document{
		ID:          uuid.New(),
		UserID:      userID,
		FileName:    input.FileName,
		Category:    input.Category,
		Notes:       input.Notes,
		StoragePath: key,
		SizeBytes:   input.SizeBytes,
		MimeType:    input.MimeType,
		UploadedAt:  time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, doc)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.log.WarnContext(ctx, "orphaned blob cleanup failed",
				slog.String("key", key),
				slog.String("error", delErr.Error()))
		}
		return nil, fmt.Errorf("vault.Upload: %w", err)
	}

	s.log.InfoContext(ctx, "document uploaded",
		slog.String("document_id", created.ID.String()),
		slog.Int64("size_bytes", created.SizeBytes))

	return created, nil
}

// Get returns a single owned document's metadata.
func (s *Service) Get(ctx context.Context, userID, docID uuid.UUID) (*domain.Document, error) {
	doc, err := s.repo.GetByID(ctx, userID, docID)
	if err != nil {
		return nil, fmt.Errorf("vault.Get: %w", err)
	}
	return doc, nil
}

// List returns documents matching the filter, newest upload first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, filter domain.DocumentFilter) ([]domain.Document, error) {
	if filter.Category != nil && !filter.Category.IsValid() {
		return nil, domain.NewValidationError("category", "unknown category")
	}

	docs, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("vault.List: %w", err)
	}
	return docs, nil
}

// DownloadURL returns a short-lived signed URL for an owned document's blob.
func (s *Service) DownloadURL(ctx context.Context, userID, docID uuid.UUID) (string, error) {
	doc, err := s.repo.GetByID(ctx, userID, docID)
	if err != nil {
		return "", fmt.Errorf("vault.DownloadURL: %w", err)
	}

	url, err := s.store.SignedURL(doc.StoragePath, s.cfg.SignedURLTTL)
	if err != nil {
		return "", fmt.Errorf("vault.DownloadURL: %w", err)
	}
	return url, nil
}

// Update applies a partial update to an owned document's metadata. The blob
// and its storage path never change, only how the row describes it.
func (s *Service) Update(ctx context.Context, userID, docID uuid.UUID, input UpdateInput) (*domain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, userID, docID, domain.DocumentUpdateParams{
		FileName: input.FileName,
		Category: input.Category,
		Notes:    input.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("vault.Update: %w", err)
	}

	return updated, nil
}

// Delete removes the blob and then the row. A blob already gone from the
// store does not block deleting the row.
func (s *Service) Delete(ctx context.Context, userID, docID uuid.UUID) error {
	doc, err := s.repo.GetByID(ctx, userID, docID)
	if err != nil {
		return fmt.Errorf("vault.Delete: %w", err)
	}

	if err := s.store.Delete(ctx, doc.StoragePath); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("vault.Delete: %w", err)
	}

	if err := s.repo.Delete(ctx, userID, docID); err != nil {
		return fmt.Errorf("vault.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "document deleted",
		slog.String("document_id", docID.String()))

	return nil
}
