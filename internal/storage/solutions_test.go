package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAppendAndRecent(t *testing.T) {
	repo := NewSolutionRepository(openTestDB(t))

	id, err := repo.Append("UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB", "R U R'", 3, 120*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("Append should return a record ID")
	}

	got, err := repo.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("Recent returned %d records, want 1", len(got))
	}
	s := got[0]
	if s.SolutionID != id || s.Solution != "R U R'" || s.MoveCount != 3 || s.ExecutionTimeMs != 120 {
		t.Errorf("record round trip mismatch: %+v", s)
	}
	if s.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestRecent_NewestFirst(t *testing.T) {
	repo := NewSolutionRepository(openTestDB(t))

	for i, sol := range []string{"R", "U", "F"} {
		if _, err := repo.Append("state", sol, i+1, time.Millisecond); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent(2) returned %d records", len(got))
	}
	if got[0].Solution != "F" || got[1].Solution != "U" {
		t.Errorf("Recent order wrong: %q then %q", got[0].Solution, got[1].Solution)
	}
}

func TestAppend_TrimsTo1000(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 1000-row trim test in short mode")
	}
	repo := NewSolutionRepository(openTestDB(t))

	for i := 0; i < MaxSolutions+25; i++ {
		if _, err := repo.Append("state", "R", 1, 0); err != nil {
			t.Fatal(err)
		}
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != MaxSolutions {
		t.Errorf("history holds %d records after overflow, want %d", count, MaxSolutions)
	}
}

func TestClear(t *testing.T) {
	repo := NewSolutionRepository(openTestDB(t))

	for i := 0; i < 3; i++ {
		if _, err := repo.Append("state", "R", 1, 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := repo.Clear()
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d records, want 3", n)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("history holds %d records after Clear, want 0", count)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	repo := NewSolutionRepository(db)
	if _, err := repo.Append("state", "R", 1, 0); err != nil {
		t.Fatal(err)
	}
	db.Close()

	// Reopening must not re-run migrations destructively.
	db2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer db2.Close()
	count, err := NewSolutionRepository(db2).Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("record lost across reopen: count = %d", count)
	}
}
