package vault

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liam-m3/divorce-companion/internal/config"
	"github.com/liam-m3/divorce-companion/internal/domain"
)

// ============================================================
// Mocks
// ============================================================

type mockDocumentRepo struct {
	GetByIDFunc func(ctx context.Context, userID, docID uuid.UUID) (*domain.Document, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, f domain.DocumentFilter) ([]domain.Document, error)
	CreateFunc  func(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	UpdateFunc  func(ctx context.Context, userID, docID uuid.UUID, params domain.DocumentUpdateParams) (*domain.Document, error)
	DeleteFunc  func(ctx context.Context, userID, docID uuid.UUID) error
}

func (m *mockDocumentRepo) GetByID(ctx context.Context, userID, docID uuid.UUID) (*domain.Document, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID, docID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockDocumentRepo) List(ctx context.Context, userID uuid.UUID, f domain.DocumentFilter) ([]domain.Document, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, f)
	}
	return nil, nil
}

func (m *mockDocumentRepo) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doc)
	}
	return doc, nil
}

func (m *mockDocumentRepo) Update(ctx context.Context, userID, docID uuid.UUID, params domain.DocumentUpdateParams) (*domain.Document, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, docID, params)
	}
	return nil, domain.ErrNotFound
}

func (m *mockDocumentRepo) Delete(ctx context.Context, userID, docID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, docID)
	}
	return nil
}

type mockObjectStore struct {
	UploadFunc    func(ctx context.Context, key, contentType string, r io.Reader) error
	SignedURLFunc func(key string, ttl time.Duration) (string, error)
	DeleteFunc    func(ctx context.Context, key string) error
}

func (m *mockObjectStore) Upload(ctx context.Context, key, contentType string, r io.Reader) error {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, contentType, r)
	}
	return nil
}

func (m *mockObjectStore) SignedURL(key string, ttl time.Duration) (string, error) {
	if m.SignedURLFunc != nil {
		return m.SignedURLFunc(key, ttl)
	}
	return "https://signed.example/" + key, nil
}

func (m *mockObjectStore) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

// ============================================================
// Helpers
// ============================================================

func newTestService() (*Service, *mockDocumentRepo, *mockObjectStore) {
	repo := &mockDocumentRepo{}
	store := &mockObjectStore{}
	cfg := config.StorageConfig{
		Bucket:       "test-bucket",
		SignedURLTTL: time.Minute,
		MaxFileSize:  52428800,
	}
	return NewService(slog.Default(), repo, store, cfg), repo, store
}

func pdfInput() UploadInput {
	return UploadInput{
		FileName:  "decree-nisi.pdf",
		MimeType:  "application/pdf",
		SizeBytes: 1024,
		Content:   strings.NewReader("%PDF-1.7"),
	}
}

// ============================================================
// Upload
// ============================================================

func TestService_Upload_HappyPath(t *testing.T) {
	t.Parallel()

	svc, repo, store := newTestService()
	userID := uuid.New()

	var uploadedKey string
	store.UploadFunc = func(ctx context.Context, key, contentType string, r io.Reader) error {
		uploadedKey = key
		assert.Equal(t, "application/pdf", contentType)
		return nil
	}

	var createdDoc *domain.Document
	repo.CreateFunc = func(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
		createdDoc = doc
		return doc, nil
	}

	doc, err := svc.Upload(context.Background(), userID, pdfInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(uploadedKey, userID.String()+"/"))
	assert.True(t, strings.HasSuffix(uploadedKey, "-decree-nisi.pdf"))

	require.NotNil(t, createdDoc)
	assert.Equal(t, uploadedKey, createdDoc.StoragePath)
	assert.Equal(t, userID, createdDoc.UserID)
	assert.Equal(t, int64(1024), doc.SizeBytes)
	assert.False(t, doc.UploadedAt.IsZero())
}

func TestService_Upload_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*UploadInput)
	}{
		{"missing file name", func(i *UploadInput) { i.FileName = "" }},
		{"unsupported type", func(i *UploadInput) { i.MimeType = "application/zip" }},
		{"empty file", func(i *UploadInput) { i.SizeBytes = 0 }},
		{"over size cap", func(i *UploadInput) { i.SizeBytes = 52428801 }},
		{"no content", func(i *UploadInput) { i.Content = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, _, store := newTestService()
			uploaded := false
			store.UploadFunc = func(ctx context.Context, key, contentType string, r io.Reader) error {
				uploaded = true
				return nil
			}

			input := pdfInput()
			tc.mutate(&input)

			_, err := svc.Upload(context.Background(), uuid.New(), input)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.False(t, uploaded)
		})
	}
}

func TestService_Upload_RowFailureCleansUpBlob(t *testing.T) {
	t.Parallel()

	svc, repo, store := newTestService()

	var uploadedKey, deletedKey string
	store.UploadFunc = func(ctx context.Context, key, contentType string, r io.Reader) error {
		uploadedKey = key
		return nil
	}
	store.DeleteFunc = func(ctx context.Context, key string) error {
		deletedKey = key
		return nil
	}
	repo.CreateFunc = func(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
		return nil, errors.New("insert failed")
	}

	_, err := svc.Upload(context.Background(), uuid.New(), pdfInput())
	require.Error(t, err)
	assert.Equal(t, uploadedKey, deletedKey)
}

// ============================================================
// Download / Delete
// ============================================================

func TestService_DownloadURL(t *testing.T) {
	t.Parallel()

	svc, repo, store := newTestService()
	userID := uuid.New()
	docID := uuid.New()

	repo.GetByIDFunc = func(ctx context.Context, gotUserID, gotDocID uuid.UUID) (*domain.Document, error) {
		assert.Equal(t, userID, gotUserID)
		assert.Equal(t, docID, gotDocID)
		return &domain.Document{ID: docID, UserID: userID, StoragePath: "path/to/blob"}, nil
	}

	var gotTTL time.Duration
	store.SignedURLFunc = func(key string, ttl time.Duration) (string, error) {
		assert.Equal(t, "path/to/blob", key)
		gotTTL = ttl
		return "https://signed.example/path/to/blob", nil
	}

	url, err := svc.DownloadURL(context.Background(), userID, docID)
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/path/to/blob", url)
	assert.Equal(t, time.Minute, gotTTL)
}

func TestService_DownloadURL_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService()

	_, err := svc.DownloadURL(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_Delete_BlobThenRow(t *testing.T) {
	t.Parallel()

	svc, repo, store := newTestService()
	userID := uuid.New()
	docID := uuid.New()

	repo.GetByIDFunc = func(ctx context.Context, gotUserID, gotDocID uuid.UUID) (*domain.Document, error) {
		return &domain.Document{ID: docID, UserID: userID, StoragePath: "blobs/doc"}, nil
	}

	var order []string
	store.DeleteFunc = func(ctx context.Context, key string) error {
		order = append(order, "blob:"+key)
		return nil
	}
	repo.DeleteFunc = func(ctx context.Context, gotUserID, gotDocID uuid.UUID) error {
		order = append(order, "row")
		return nil
	}

	require.NoError(t, svc.Delete(context.Background(), userID, docID))
	assert.Equal(t, []string{"blob:blobs/doc", "row"}, order)
}

func TestService_Delete_MissingBlobIgnored(t *testing.T) {
	t.Parallel()

	svc, repo, store := newTestService()

	repo.GetByIDFunc = func(ctx context.Context, userID, docID uuid.UUID) (*domain.Document, error) {
		return &domain.Document{ID: docID, UserID: userID, StoragePath: "blobs/gone"}, nil
	}
	store.DeleteFunc = func(ctx context.Context, key string) error {
		return domain.ErrNotFound
	}

	rowDeleted := false
	repo.DeleteFunc = func(ctx context.Context, userID, docID uuid.UUID) error {
		rowDeleted = true
		return nil
	}

	require.NoError(t, svc.Delete(context.Background(), uuid.New(), uuid.New()))
	assert.True(t, rowDeleted)
}

// ============================================================
// Update / List
// ============================================================

func TestService_Update_RequiresAField(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService()

	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), UpdateInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_List_InvalidCategory(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService()

	bad := domain.DocumentCategory("receipts")
	_, err := svc.List(context.Background(), uuid.New(), domain.DocumentFilter{Category: &bad})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
