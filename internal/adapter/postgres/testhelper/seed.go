package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/liam-m3/divorce-companion/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with an empty profile. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$test-hash-" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO profiles (user_id, priorities, onboarding_completed, created_at, updated_at)
		 VALUES ($1, '{}', false, $2, $2)`,
		user.ID, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert profile: %v", err)
	}

	return user
}

// SeedJournalEntry creates a journal entry with mood and category set.
// Returns a filled domain.JournalEntry.
func SeedJournalEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, incidentDate time.Time) domain.JournalEntry {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	title := "Incident " + suffix
	mood := domain.MoodAnxious
	category := domain.JournalCategoryIncident

	entry := domain.JournalEntry{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        &title,
		Content:      "Detailed account " + suffix + " of what happened that day.",
		Mood:         &mood,
		Category:     &category,
		IncidentDate: incidentDate.UTC().Truncate(time.Microsecond),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO journal_entries (id, user_id, title, content, mood, category, incident_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.ID, entry.UserID, entry.Title, entry.Content, string(*entry.Mood), string(*entry.Category),
		entry.IncidentDate, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedJournalEntry insert entry: %v", err)
	}

	return entry
}

// SeedFinancialItem creates a financial item of the given kind.
// Frequency is monthly for income/expense and nil otherwise.
func SeedFinancialItem(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, kind domain.FinancialKind, amount float64) domain.FinancialItem {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	item := domain.FinancialItem{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Name:      string(kind) + " " + suffix,
		Amount:    amount,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if kind.HasFrequency() {
		freq := domain.FrequencyMonthly
		item.Frequency = &freq
	}

	var freq *string
	if item.Frequency != nil {
		s := string(*item.Frequency)
		freq = &s
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO financial_items (id, user_id, kind, name, amount, frequency, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.UserID, string(item.Kind), item.Name, item.Amount, freq, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFinancialItem insert item: %v", err)
	}

	return item
}

// SeedTimelineEvent creates a timeline event on the given date.
func SeedTimelineEvent(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, eventDate time.Time) domain.TimelineEvent {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	category := domain.TimelineCategoryLegal

	event := domain.TimelineEvent{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Event " + suffix,
		EventDate: eventDate.UTC().Truncate(time.Microsecond),
		Category:  &category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO timeline_events (id, user_id, title, event_date, category, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		event.ID, event.UserID, event.Title, event.EventDate, string(*event.Category), event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTimelineEvent insert event: %v", err)
	}

	return event
}

// SeedDocument creates a document metadata row.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Document {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	category := domain.DocumentCategoryLegal

	doc := domain.Document{
		ID:          uuid.New(),
		UserID:      userID,
		FileName:    "scan-" + suffix + ".pdf",
		Category:    &category,
		StoragePath: userID.String() + "/" + suffix + ".pdf",
		SizeBytes:   2048,
		MimeType:    "application/pdf",
		UploadedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO documents (id, user_id, file_name, category, storage_path, size_bytes, mime_type, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		doc.ID, doc.UserID, doc.FileName, string(*doc.Category), doc.StoragePath, doc.SizeBytes, doc.MimeType, doc.UploadedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument insert document: %v", err)
	}

	return doc
}
