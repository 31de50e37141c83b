package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "cubelab.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)
	version, err := db.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 1 {
		t.Errorf("Schema version = %d, want 1", version)
	}
}

func TestCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Create(
		"UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB",
		"R U R' U'", 4, 120*time.Millisecond, "two-phase@test",
	)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	s, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s == nil {
		t.Fatal("Get returned nil for an existing solve")
	}
	if s.Solution != "R U R' U'" || s.MoveCount != 4 {
		t.Errorf("Got solution %q moves %d", s.Solution, s.MoveCount)
	}
	if s.DurationMs != 120 {
		t.Errorf("DurationMs = %d, want 120", s.DurationMs)
	}
}

func TestGetMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	s, err := repo.Get("no-such-id")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s != nil {
		t.Error("Get for a missing ID should return nil")
	}
}

func TestGetLastAndList(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	if last, err := repo.GetLast(); err != nil || last != nil {
		t.Fatalf("GetLast on empty history = %v, %v", last, err)
	}

	for i, sol := range []string{"R", "R U", "R U F'"} {
		if _, err := repo.Create("x", sol, i+1, time.Millisecond, "test"); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}

	last, err := repo.GetLast()
	if err != nil {
		t.Fatalf("GetLast failed: %v", err)
	}
	if last == nil || last.Solution != "R U F'" {
		t.Errorf("GetLast = %+v, want the third solve", last)
	}

	solves, err := repo.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(solves) != 2 {
		t.Fatalf("List(2) returned %d solves", len(solves))
	}

	n, err := repo.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cubelab.db")

	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	repo := NewSolveRepository(db)
	id, err := repo.Create("x", "R2", 1, time.Millisecond, "test")
	if err != nil {
		t.Fatal(err)
	}
	db.Close()

	db2, err := Open(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer db2.Close()

	s, err := NewSolveRepository(db2).Get(id)
	if err != nil || s == nil {
		t.Fatalf("Solve lost across reopen: %v, %v", s, err)
	}
}
