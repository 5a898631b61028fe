package profile

import (
	"github.com/liam-m3/divorce-companion/internal/domain"
)

const maxChildrenAgesLen = 100

// OnboardingInput holds the full set of onboarding answers.
type OnboardingInput struct {
	Country          string
	RelationshipType domain.RelationshipType
	Stage            domain.Stage
	Priorities       []domain.Priority
	HasChildren      bool
	ChildrenCount    *int
	ChildrenAges     *string
}

// Validate validates the onboarding input. Every wizard step is mandatory,
// including at least one priority.
func (i OnboardingInput) Validate() error {
	var errs []domain.FieldError

	if i.Country == "" {
		errs = append(errs, domain.FieldError{Field: "country", Message: "required"})
	}
	if !i.RelationshipType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "relationship_type", Message: "unknown relationship type"})
	}
	if !i.Stage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "unknown stage"})
	}
	if len(i.Priorities) == 0 {
		errs = append(errs, domain.FieldError{Field: "priorities", Message: "select at least one"})
	}
	for _, p := range i.Priorities {
		if !p.IsValid() {
			errs = append(errs, domain.FieldError{Field: "priorities", Message: "unknown priority"})
			break
		}
	}
	errs = append(errs, validateChildren(i.HasChildren, i.ChildrenCount, i.ChildrenAges)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds partial-update parameters for a profile.
// A non-nil Priorities slice replaces the stored set wholesale.
type UpdateInput struct {
	Country          *string
	RelationshipType *domain.RelationshipType
	Stage            *domain.Stage
	Priorities       []domain.Priority
	HasChildren      *bool
	ChildrenCount    *int
	ChildrenAges     *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Country == nil && i.RelationshipType == nil && i.Stage == nil &&
		i.Priorities == nil && i.HasChildren == nil && i.ChildrenCount == nil && i.ChildrenAges == nil {
		errs = append(errs, domain.FieldError{Field: "", Message: "no fields to update"})
	}

	if i.Country != nil && *i.Country == "" {
		errs = append(errs, domain.FieldError{Field: "country", Message: "cannot be empty"})
	}
	if i.RelationshipType != nil && !i.RelationshipType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "relationship_type", Message: "unknown relationship type"})
	}
	if i.Stage != nil && !i.Stage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "unknown stage"})
	}
	for _, p := range i.Priorities {
		if !p.IsValid() {
			errs = append(errs, domain.FieldError{Field: "priorities", Message: "unknown priority"})
			break
		}
	}
	if i.ChildrenCount != nil && *i.ChildrenCount < 0 {
		errs = append(errs, domain.FieldError{Field: "children_count", Message: "must not be negative"})
	}
	if i.ChildrenAges != nil && len(*i.ChildrenAges) > maxChildrenAgesLen {
		errs = append(errs, domain.FieldError{Field: "children_ages", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateChildren(hasChildren bool, count *int, ages *string) []domain.FieldError {
	var errs []domain.FieldError

	if count != nil && *count < 0 {
		errs = append(errs, domain.FieldError{Field: "children_count", Message: "must not be negative"})
	}
	if ages != nil && len(*ages) > maxChildrenAgesLen {
		errs = append(errs, domain.FieldError{Field: "children_ages", Message: "too long"})
	}
	if !hasChildren && (count != nil || ages != nil) {
		errs = append(errs, domain.FieldError{Field: "children_count", Message: "only allowed with children"})
	}
	return errs
}
