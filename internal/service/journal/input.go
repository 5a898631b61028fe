package journal

import (
	"time"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

const (
	maxTitleLen   = 300
	maxContentLen = 50000
)

// CreateInput holds parameters for creating a journal entry.
type CreateInput struct {
	Title        *string
	Content      string
	Mood         *domain.Mood
	Category     *domain.JournalCategory
	IncidentDate time.Time
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if len(i.Content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if i.Title != nil && len(*i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Mood != nil && !i.Mood.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mood", Message: "unknown mood"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.IncidentDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "incident_date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds partial-update parameters for a journal entry.
type UpdateInput struct {
	Title        *string
	Content      *string
	Mood         *domain.Mood
	Category     *domain.JournalCategory
	IncidentDate *time.Time
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == nil && i.Content == nil && i.Mood == nil && i.Category == nil && i.IncidentDate == nil {
		errs = append(errs, domain.FieldError{Field: "", Message: "no fields to update"})
	}

	if i.Content != nil {
		if *i.Content == "" {
			errs = append(errs, domain.FieldError{Field: "content", Message: "cannot be empty"})
		} else if len(*i.Content) > maxContentLen {
			errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
		}
	}
	if i.Title != nil && len(*i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Mood != nil && !i.Mood.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mood", Message: "unknown mood"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.IncidentDate != nil && i.IncidentDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "incident_date", Message: "invalid date"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
