package domain

import (
	"time"

	"github.com/google/uuid"
)

// FinancialItem is a single asset, debt, income, or expense line.
// Frequency is nil for assets and debts.
type FinancialItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      FinancialKind
	Name      string
	Amount    float64
	Frequency *Frequency
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonthlyEquivalent returns the item's contribution to a monthly aggregate.
// Annually-frequenced amounts are divided by 12; one-time and monthly amounts
// count at face value. This is a deliberate approximation, not amortization.
func (i *FinancialItem) MonthlyEquivalent() float64 {
	if i.Frequency != nil && *i.Frequency == FrequencyAnnually {
		return i.Amount / 12
	}
	return i.Amount
}

// FinancialSummary is the computed aggregate over a user's items.
type FinancialSummary struct {
	TotalAssets     float64
	TotalDebts      float64
	NetWorth        float64
	MonthlyIncome   float64
	MonthlyExpenses float64
	MonthlyNet      float64
}

// SummarizeFinances partitions items by kind and computes totals.
// Net worth is assets minus debts; monthly figures use MonthlyEquivalent.
func SummarizeFinances(items []FinancialItem) FinancialSummary {
	var s FinancialSummary
	for i := range items {
		item := &items[i]
		switch item.Kind {
		case FinancialKindAsset:
			s.TotalAssets += item.Amount
		case FinancialKindDebt:
			s.TotalDebts += item.Amount
		case FinancialKindIncome:
			s.MonthlyIncome += item.MonthlyEquivalent()
		case FinancialKindExpense:
			s.MonthlyExpenses += item.MonthlyEquivalent()
		}
	}
	s.NetWorth = s.TotalAssets - s.TotalDebts
	s.MonthlyNet = s.MonthlyIncome - s.MonthlyExpenses
	return s
}

// FinancialUpdateParams holds partial-update fields for a financial item.
type FinancialUpdateParams struct {
	Kind      *FinancialKind
	Name      *string
	Amount    *float64
	Frequency *Frequency
	Notes     *string
}
