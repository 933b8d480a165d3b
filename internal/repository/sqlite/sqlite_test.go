package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/msomdec/devconnect/internal/domain"
	"github.com/msomdec/devconnect/internal/repository/sqlite"
)

var _ domain.Database = (*sqlite.DB)(nil)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *sqlite.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		Name:         "Test User",
		Email:        email,
		Avatar:       "https://www.gravatar.com/avatar/abc?s=200&r=pg&d=mm",
		PasswordHash: "hashedpw",
	}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("Create user: %v", err)
	}
	return user
}

func TestMigrate_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("first Migrate: %v", err)
	}
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestMigrate_SurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	user := &domain.User{Name: "A", Email: "a@example.com", PasswordHash: "h"}
	if err := db.Users().Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	db.Close()

	db2, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db2.Close()
	if err := db2.Migrate(ctx); err != nil {
		t.Fatalf("Migrate after reopen: %v", err)
	}

	got, err := db2.Users().GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID after reopen: %v", err)
	}
	if got.Email != "a@example.com" {
		t.Fatalf("expected stored user to survive reopen, got %+v", got)
	}
}
