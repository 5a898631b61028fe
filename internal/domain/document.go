package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is vault metadata for an uploaded file. The binary itself lives
// in the object store under StoragePath; this record never contains it.
type Document struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	FileName    string
	Category    *DocumentCategory
	Notes       *string
	StoragePath string
	SizeBytes   int64
	MimeType    string
	UploadedAt  time.Time
}

// DocumentFilter narrows vault List queries.
type DocumentFilter struct {
	Category *DocumentCategory
	Search   string
}

// DocumentUpdateParams holds partial-update fields for document metadata.
type DocumentUpdateParams struct {
	FileName *string
	Category *DocumentCategory
	Notes    *string
}
