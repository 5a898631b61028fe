package timeline

import (
	"time"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

const (
	maxTitleLen       = 300
	maxDescriptionLen = 5000
)

// CreateInput holds parameters for creating a timeline event.
type CreateInput struct {
	Title       string
	Description *string
	EventDate   time.Time
	Category    *domain.TimelineCategory
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.EventDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "event_date", Message: "required"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds partial-update parameters for a timeline event.
type UpdateInput struct {
	Title       *string
	Description *string
	EventDate   *time.Time
	Category    *domain.TimelineCategory
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == nil && i.Description == nil && i.EventDate == nil && i.Category == nil {
		errs = append(errs, domain.FieldError{Field: "", Message: "no fields to update"})
	}

	if i.Title != nil {
		if *i.Title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "cannot be empty"})
		} else if len(*i.Title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.EventDate != nil && i.EventDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "event_date", Message: "invalid date"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
