package vault

import (
	"io"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

const maxFileNameLen = 255

// allowedMimeTypes is the set of file types the vault accepts.
var allowedMimeTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"text/plain": {},
}

// UploadInput holds parameters for uploading a document.
type UploadInput struct {
	FileName  string
	MimeType  string
	SizeBytes int64
	Category  *domain.DocumentCategory
	Notes     *string
	Content   io.Reader
}

// Validate validates the upload input against the given size cap.
func (i UploadInput) Validate(maxSize int64) error {
	var errs []domain.FieldError

	if i.FileName == "" {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "required"})
	} else if len(i.FileName) > maxFileNameLen {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "too long"})
	}
	if _, ok := allowedMimeTypes[i.MimeType]; !ok {
		errs = append(errs, domain.FieldError{Field: "mime_type", Message: "unsupported file type"})
	}
	if i.SizeBytes <= 0 {
		errs = append(errs, domain.FieldError{Field: "size", Message: "empty file"})
	} else if i.SizeBytes > maxSize {
		errs = append(errs, domain.FieldError{Field: "size", Message: "file too large"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.Content == nil {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds partial-update parameters for document metadata.
type UpdateInput struct {
	FileName *string
	Category *domain.DocumentCategory
	Notes    *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.FileName == nil && i.Category == nil && i.Notes == nil {
		errs = append(errs, domain.FieldError{Field: "", Message: "no fields to update"})
	}

	if i.FileName != nil {
		if *i.FileName == "" {
			errs = append(errs, domain.FieldError{Field: "file_name", Message: "cannot be empty"})
		} else if len(*i.FileName) > maxFileNameLen {
			errs = append(errs, domain.FieldError{Field: "file_name", Message: "too long"})
		}
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
