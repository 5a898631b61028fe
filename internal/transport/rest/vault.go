package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/liam-m3/divorce-companion/internal/domain"
	"github.com/liam-m3/divorce-companion/internal/service/vault"
)

// maxMultipartMemory bounds how much of an upload is buffered in memory;
// the rest spills to temp files.
const maxMultipartMemory = 8 << 20

// vaultService defines the minimal interface needed by VaultHandler.
type vaultService interface {
	Upload(ctx context.Context, userID uuid.UUID, input vault.UploadInput) (*domain.Document, error)
	Get(ctx context.Context, userID, docID uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.DocumentFilter) ([]domain.Document, error)
	DownloadURL(ctx context.Context, userID, docID uuid.UUID) (string, error)
	Update(ctx context.Context, userID, docID uuid.UUID, input vault.UpdateInput) (*domain.Document, error)
	Delete(ctx context.Context, userID, docID uuid.UUID) error
}

// VaultHandler serves document vault REST endpoints.
type VaultHandler struct {
	svc vaultService
	log *slog.Logger
}

// NewVaultHandler creates a VaultHandler.
func NewVaultHandler(svc vaultService, logger *slog.Logger) *VaultHandler {
	return &VaultHandler{svc: svc, log: logger.With("handler", "vault")}
}

type documentResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	Category   *string   `json:"category"`
	Notes      *string   `json:"notes"`
	SizeBytes  int64     `json:"sizeBytes"`
	MimeType   string    `json:"mimeType"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type documentUpdateRequest struct {
	FileName *string `json:"fileName"`
	Category *string `json:"category"`
	Notes    *string `json:"notes"`
}

// Upload handles POST /api/vault. Expects multipart form data with a "file"
// part plus optional "category" and "notes" fields.
func (h *VaultHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	input := vault.UploadInput{
		FileName:  header.Filename,
		MimeType:  header.Header.Get("Content-Type"),
		SizeBytes: header.Size,
		Content:   file,
	}
	if v := r.FormValue("category"); v != "" {
		category := domain.DocumentCategory(v)
		input.Category = &category
	}
	if v := r.FormValue("notes"); v != "" {
		input.Notes = &v
	}

	doc, err := h.svc.Upload(r.Context(), userID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDocumentResponse(doc))
}

// List handles GET /api/vault.
func (h *VaultHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	filter := domain.DocumentFilter{Search: r.URL.Query().Get("search")}
	if v := r.URL.Query().Get("category"); v != "" {
		category := domain.DocumentCategory(v)
		filter.Category = &category
	}

	docs, err := h.svc.List(r.Context(), userID, filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]documentResponse, 0, len(docs))
	for i := range docs {
		out = append(out, toDocumentResponse(&docs[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": out})
}

// Get handles GET /api/vault/{id}.
func (h *VaultHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	docID, ok := pathID(w, r)
	if !ok {
		return
	}

	doc, err := h.svc.Get(r.Context(), userID, docID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}

// DownloadURL handles GET /api/vault/{id}/url.
func (h *VaultHandler) DownloadURL(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	docID, ok := pathID(w, r)
	if !ok {
		return
	}

	url, err := h.svc.DownloadURL(r.Context(), userID, docID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// Update handles PATCH /api/vault/{id}.
func (h *VaultHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	docID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req documentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := vault.UpdateInput{
		FileName: req.FileName,
		Notes:    req.Notes,
	}
	if req.Category != nil {
		category := domain.DocumentCategory(*req.Category)
		input.Category = &category
	}

	doc, err := h.svc.Update(r.Context(), userID, docID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}

// Delete handles DELETE /api/vault/{id}.
func (h *VaultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	docID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), userID, docID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toDocumentResponse(d *domain.Document) documentResponse {
	return documentResponse{
		ID:         d.ID.String(),
		FileName:   d.FileName,
		Category:   enumPtr(d.Category),
		Notes:      d.Notes,
		SizeBytes:  d.SizeBytes,
		MimeType:   d.MimeType,
		UploadedAt: d.UploadedAt,
	}
}
