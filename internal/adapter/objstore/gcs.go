// Package objstore provides the Cloud Storage backend for the document vault.
// Document bytes live here; rows in documents only hold metadata and the
// object key.
package objstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"cloud.google.com/go/storage"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

// GCS wraps a Cloud Storage bucket for vault uploads and downloads.
type GCS struct {
	bucket *storage.BucketHandle
	client *storage.Client
}

// NewGCS creates a Cloud Storage client bound to the given bucket.
// Credentials come from the ambient environment (ADC).
func NewGCS(ctx context.Context, bucketName string) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &GCS{
		bucket: client.Bucket(bucketName),
		client: client,
	}, nil
}

// Upload streams r into the object at key, setting the content type.
// The object is fully written or not created at all.
func (g *GCS) Upload(ctx context.Context, key, contentType string, r io.Reader) error {
	w := g.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return fmt.Errorf("write object %s: %w", key, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize object %s: %w", key, err)
	}

	return nil
}

// SignedURL returns a V4-signed GET URL for the object, valid for ttl.
func (g *GCS) SignedURL(key string, ttl time.Duration) (string, error) {
	url, err := g.bucket.SignedURL(key, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(ttl),
	})
	if err != nil {
		return "", fmt.Errorf("sign url for %s: %w", key, err)
	}

	return url, nil
}

// Delete removes the object at key. A missing object maps to
// domain.ErrNotFound.
func (g *GCS) Delete(ctx context.Context, key string) error {
	if err := g.bucket.Object(key).Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return fmt.Errorf("object %s: %w", key, domain.ErrNotFound)
		}
		return fmt.Errorf("delete object %s: %w", key, err)
	}

	return nil
}

// Close releases the underlying client.
func (g *GCS) Close() error {
	return g.client.Close()
}
