package domain

import (
	"math"
	"testing"
)

func ptrFreq(f Frequency) *Frequency { return &f }

func TestMonthlyEquivalent_Annually(t *testing.T) {
	t.Parallel()

	item := FinancialItem{Kind: FinancialKindIncome, Amount: 60000, Frequency: ptrFreq(FrequencyAnnually)}
	if got := item.MonthlyEquivalent(); got != 5000 {
		t.Fatalf("expected 5000, got %v", got)
	}
}

func TestMonthlyEquivalent_MonthlyAndOneTime(t *testing.T) {
	t.Parallel()

	monthly := FinancialItem{Kind: FinancialKindExpense, Amount: 1200, Frequency: ptrFreq(FrequencyMonthly)}
	if got := monthly.MonthlyEquivalent(); got != 1200 {
		t.Fatalf("monthly: expected 1200, got %v", got)
	}

	oneTime := FinancialItem{Kind: FinancialKindExpense, Amount: 300, Frequency: ptrFreq(FrequencyOneTime)}
	if got := oneTime.MonthlyEquivalent(); got != 300 {
		t.Fatalf("one_time: expected 300, got %v", got)
	}
}

func TestMonthlyEquivalent_NilFrequency(t *testing.T) {
	t.Parallel()

	item := FinancialItem{Kind: FinancialKindAsset, Amount: 250000}
	if got := item.MonthlyEquivalent(); got != 250000 {
		t.Fatalf("expected face value for nil frequency, got %v", got)
	}
}

func TestSummarizeFinances(t *testing.T) {
	t.Parallel()

	items := []FinancialItem{
		{Kind: FinancialKindAsset, Amount: 250000},
		{Kind: FinancialKindAsset, Amount: 15000},
		{Kind: FinancialKindDebt, Amount: 180000},
		{Kind: FinancialKindIncome, Amount: 48000, Frequency: ptrFreq(FrequencyAnnually)},
		{Kind: FinancialKindIncome, Amount: 500, Frequency: ptrFreq(FrequencyMonthly)},
		{Kind: FinancialKindExpense, Amount: 1500, Frequency: ptrFreq(FrequencyMonthly)},
		{Kind: FinancialKindExpense, Amount: 1200, Frequency: ptrFreq(FrequencyAnnually)},
	}

	s := SummarizeFinances(items)

	if s.TotalAssets != 265000 {
		t.Errorf("TotalAssets: expected 265000, got %v", s.TotalAssets)
	}
	if s.TotalDebts != 180000 {
		t.Errorf("TotalDebts: expected 180000, got %v", s.TotalDebts)
	}
	if s.NetWorth != 85000 {
		t.Errorf("NetWorth: expected 85000, got %v", s.NetWorth)
	}
	if s.MonthlyIncome != 4500 {
		t.Errorf("MonthlyIncome: expected 4500, got %v", s.MonthlyIncome)
	}
	if got := s.MonthlyExpenses; math.Abs(got-1600) > 1e-9 {
		t.Errorf("MonthlyExpenses: expected 1600, got %v", got)
	}
	if got := s.MonthlyNet; math.Abs(got-2900) > 1e-9 {
		t.Errorf("MonthlyNet: expected 2900, got %v", got)
	}
}

func TestSummarizeFinances_Empty(t *testing.T) {
	t.Parallel()

	s := SummarizeFinances(nil)
	if s != (FinancialSummary{}) {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}

func TestFinancialKind_HasFrequency(t *testing.T) {
	t.Parallel()

	cases := map[FinancialKind]bool{
		FinancialKindAsset:   false,
		FinancialKindDebt:    false,
		FinancialKindIncome:  true,
		FinancialKindExpense: true,
	}
	for kind, want := range cases {
		if got := kind.HasFrequency(); got != want {
			t.Errorf("%s: expected %v, got %v", kind, want, got)
		}
	}
}
