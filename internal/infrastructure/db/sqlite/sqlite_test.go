package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/resumehub/resume-api/internal/core/domain"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Connect(context.Background(), Config{Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestConnect_SchemaIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	db, err := Connect(context.Background(), Config{Path: path})
	if err != nil {
		t.Fatalf("first Connect returned error: %v", err)
	}

	repo := NewCredentialRepository(db)
	if _, err := repo.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "h"}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	_ = db.Close()

	// Reopening the same file must not fail or clobber existing rows.
	db, err = Connect(context.Background(), Config{Path: path})
	if err != nil {
		t.Fatalf("second Connect returned error: %v", err)
	}
	defer db.Close()

	user, err := NewCredentialRepository(db).FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("find after reopen: %v", err)
	}
	if user.Username != "alice" || user.PasswordHash != "h" {
		t.Fatalf("unexpected user after reopen: %+v", user)
	}
}

func TestCredentialRepository_CreateAndFind(t *testing.T) {
	repo := NewCredentialRepository(testDB(t))

	created, err := repo.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "hash1"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected generated id")
	}

	found, err := repo.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FindByUsername returned error: %v", err)
	}
	if found.ID != created.ID || found.PasswordHash != "hash1" {
		t.Fatalf("unexpected user: %+v", found)
	}
}

func TestCredentialRepository_DuplicateUsername(t *testing.T) {
	repo := NewCredentialRepository(testDB(t))

	if _, err := repo.Create(context.Background(), &domain.User{Username: "bob", PasswordHash: "h1"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	// The UNIQUE constraint, not application code, rejects the second insert.
	_, err := repo.Create(context.Background(), &domain.User{Username: "bob", PasswordHash: "h2"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestCredentialRepository_FindUnknown(t *testing.T) {
	repo := NewCredentialRepository(testDB(t))

	if _, err := repo.FindByUsername(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestResumeRepository_InsertionOrder(t *testing.T) {
	repo := NewResumeRepository(testDB(t))

	names := []string{"first", "second", "third"}
	for i, name := range names {
		id, err := repo.Create(context.Background(), &domain.Resume{
			Name:       name,
			Email:      name + "@x.com",
			Skills:     "go,sql",
			Experience: i,
		})
		if err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
		if id != int64(i+1) {
			t.Fatalf("expected id %d, got %d", i+1, id)
		}
	}

	resumes, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(resumes) != len(names) {
		t.Fatalf("expected %d resumes, got %d", len(names), len(resumes))
	}
	for i, name := range names {
		if resumes[i].Name != name || resumes[i].Experience != i {
			t.Fatalf("position %d: unexpected resume %+v", i, resumes[i])
		}
	}
}

func TestResumeRepository_ListEmpty(t *testing.T) {
	repo := NewResumeRepository(testDB(t))

	resumes, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if resumes == nil || len(resumes) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", resumes)
	}
}

func TestResumeRepository_ValuesPassThroughVerbatim(t *testing.T) {
	repo := NewResumeRepository(testDB(t))

	// Neither email format nor a negative experience is validated at this layer.
	id, err := repo.Create(context.Background(), &domain.Resume{
		Name:       "x",
		Email:      "not-an-email",
		Skills:     "",
		Experience: -4,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	resumes, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(resumes) != 1 || resumes[0].ID != id || resumes[0].Email != "not-an-email" || resumes[0].Experience != -4 {
		t.Fatalf("unexpected resume: %+v", resumes)
	}
}
