package finance

import (
	"github.com/liam-m3/divorce-companion/internal/domain"
)

const maxNameLen = 200

// CreateInput holds parameters for creating a financial item.
type CreateInput struct {
	Kind      domain.FinancialKind
	Name      string
	Amount    float64
	Frequency *domain.Frequency
	Notes     *string
}

// Validate validates the create input. Frequency is mandatory for income and
// expense items and must be absent for assets and debts.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown kind"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Amount < 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must not be negative"})
	}
	if i.Frequency != nil && !i.Frequency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "frequency", Message: "unknown frequency"})
	}

	if i.Kind.IsValid() {
		if i.Kind.HasFrequency() && i.Frequency == nil {
			errs = append(errs, domain.FieldError{Field: "frequency", Message: "required for income and expense items"})
		}
		if !i.Kind.HasFrequency() && i.Frequency != nil {
			errs = append(errs, domain.FieldError{Field: "frequency", Message: "not allowed for assets and debts"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds partial-update parameters for a financial item.
type UpdateInput struct {
	Kind      *domain.FinancialKind
	Name      *string
	Amount    *float64
	Frequency *domain.Frequency
	Notes     *string
}

// Validate performs the field-local checks. Cross-field frequency rules
// depend on the stored item and are enforced in Update.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Kind == nil && i.Name == nil && i.Amount == nil && i.Frequency == nil && i.Notes == nil {
		errs = append(errs, domain.FieldError{Field: "", Message: "no fields to update"})
	}

	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown kind"})
	}
	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "cannot be empty"})
		} else if len(*i.Name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}
	if i.Amount != nil && *i.Amount < 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must not be negative"})
	}
	if i.Frequency != nil && !i.Frequency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "frequency", Message: "unknown frequency"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
