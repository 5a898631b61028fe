package financial_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/liam-m3/divorce-companion/internal/adapter/postgres/financial"
	"github.com/liam-m3/divorce-companion/internal/adapter/postgres/testhelper"
	"github.com/liam-m3/divorce-companion/internal/domain"
)

func newRepo(t *testing.T) (*financial.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return financial.New(pool), pool
}

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	freq := domain.FrequencyAnnually
	item := domain.FinancialItem{
		ID:        uuid.New(),
		UserID:    user.ID,
		Kind:      domain.FinancialKindIncome,
		Name:      "Yearly bonus",
		Amount:    12000,
		Frequency: &freq,
		CreatedAt: now,
		UpdatedAt: now,
	}

	got, err := repo.Create(ctx, &item)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if got.Kind != domain.FinancialKindIncome {
		t.Errorf("Kind mismatch: got %s", got.Kind)
	}
	if got.Amount != 12000 {
		t.Errorf("Amount mismatch: got %v, want 12000", got.Amount)
	}
	if got.Frequency == nil || *got.Frequency != domain.FrequencyAnnually {
		t.Errorf("Frequency mismatch: got %v", got.Frequency)
	}
}

func TestRepo_Create_AssetWithFrequencyRejected(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	freq := domain.FrequencyMonthly
	item := domain.FinancialItem{
		ID:        uuid.New(),
		UserID:    user.ID,
		Kind:      domain.FinancialKindAsset,
		Name:      "House",
		Amount:    250000,
		Frequency: &freq,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// The check constraint backs up the service-level validation.
	_, err := repo.Create(ctx, &item)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Create(asset with frequency): expected ErrValidation, got %v", err)
	}
}

func TestRepo_List_ScopedToUser(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)

	testhelper.SeedFinancialItem(t, pool, owner.ID, domain.FinancialKindAsset, 1000)
	testhelper.SeedFinancialItem(t, pool, owner.ID, domain.FinancialKindDebt, 400)
	testhelper.SeedFinancialItem(t, pool, other.ID, domain.FinancialKindExpense, 50)

	got, err := repo.List(ctx, owner.ID)
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 items for owner, got %d", len(got))
	}
	for _, item := range got {
		if item.UserID != owner.ID {
			t.Errorf("item %s belongs to %s, not owner", item.ID, item.UserID)
		}
	}
}

func TestRepo_Update_KindChangeClearsFrequency(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	item := testhelper.SeedFinancialItem(t, pool, user.ID, domain.FinancialKindExpense, 150)

	kind := domain.FinancialKindDebt
	updated, err := repo.Update(ctx, user.ID, item.ID, domain.FinancialUpdateParams{Kind: &kind}, true)
	if err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}

	if updated.Kind != domain.FinancialKindDebt {
		t.Errorf("Kind mismatch: got %s, want debt", updated.Kind)
	}
	if updated.Frequency != nil {
		t.Errorf("frequency must be cleared on change to debt, got %v", *updated.Frequency)
	}
}

func TestRepo_Update_Foreign(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)
	item := testhelper.SeedFinancialItem(t, pool, owner.ID, domain.FinancialKindAsset, 5000)

	amount := 1.0
	_, err := repo.Update(ctx, other.ID, item.ID, domain.FinancialUpdateParams{Amount: &amount}, false)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update(foreign): expected ErrNotFound, got %v", err)
	}
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)
	item := testhelper.SeedFinancialItem(t, pool, user.ID, domain.FinancialKindDebt, 900)

	if err := repo.Delete(ctx, user.ID, item.ID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}

	_, err := repo.GetByID(ctx, user.ID, item.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID after delete: expected ErrNotFound, got %v", err)
	}
}
