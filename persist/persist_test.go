// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package persist

import (
	"database/sql"
	"reflect"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pollpad/db"
	"github.com/danielhkuo/pollpad/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

func TestPollsRoundTrip(t *testing.T) {
	store := New(setupTestDB(t))

	polls := []models.Poll{
		{
			ID:       "p2",
			Question: "Second poll?",
			Options: []models.Option{
				{ID: "o3", Text: "yes", Votes: 2},
				{ID: "o4", Text: "no", Votes: 0},
			},
			Category:  "General",
			CreatedAt: 1700000001000,
		},
		{
			ID:          "p1",
			Question:    "First poll?",
			Description: "with description",
			Options: []models.Option{
				{ID: "o1", Text: "a", Votes: 1},
				{ID: "o2", Text: "b", Votes: 4},
			},
			Category:  "Tech",
			CreatedAt: 1700000000000,
			ImageURL:  "data:image/png;base64,xyz",
		},
	}

	if err := store.SavePolls(polls); err != nil {
		t.Fatalf("SavePolls failed: %v", err)
	}

	got := store.LoadPolls()
	if !reflect.DeepEqual(got, polls) {
		t.Errorf("Round trip mismatch:\ngot  %+v\nwant %+v", got, polls)
	}
}

func TestVotesRoundTrip(t *testing.T) {
	store := New(setupTestDB(t))

	ledger := models.Ledger{"p1": "o2", "p2": "o3"}
	if err := store.SaveVotes(ledger); err != nil {
		t.Fatalf("SaveVotes failed: %v", err)
	}

	got := store.LoadVotes()
	if !reflect.DeepEqual(got, ledger) {
		t.Errorf("Round trip mismatch: got %v, want %v", got, ledger)
	}
}

func TestLoadEmpty(t *testing.T) {
	store := New(setupTestDB(t))

	if got := store.LoadPolls(); len(got) != 0 {
		t.Errorf("Expected empty collection, got %v", got)
	}
	if got := store.LoadVotes(); len(got) != 0 {
		t.Errorf("Expected empty ledger, got %v", got)
	}
}

func TestLoadCorrupted(t *testing.T) {
	conn := setupTestDB(t)
	store := New(conn)

	for _, key := range []string{"polls", "votes"} {
		_, err := conn.Exec(`INSERT INTO kv (k, v) VALUES ($1, $2)`, key, "{not json!")
		if err != nil {
			t.Fatalf("Failed to plant corrupted value: %v", err)
		}
	}

	if got := store.LoadPolls(); len(got) != 0 {
		t.Errorf("Expected corrupted polls to degrade to empty, got %v", got)
	}
	if got := store.LoadVotes(); len(got) != 0 {
		t.Errorf("Expected corrupted ledger to degrade to empty, got %v", got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store := New(setupTestDB(t))

	if err := store.SaveVotes(models.Ledger{"p1": "o1"}); err != nil {
		t.Fatalf("SaveVotes failed: %v", err)
	}
	if err := store.SaveVotes(models.Ledger{"p2": "o9"}); err != nil {
		t.Fatalf("SaveVotes failed: %v", err)
	}

	got := store.LoadVotes()
	want := models.Ledger{"p2": "o9"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected overwrite, got %v", got)
	}
}

func TestInstallationID(t *testing.T) {
	store := New(setupTestDB(t))

	id, err := store.InstallationID()
	if err != nil {
		t.Fatalf("InstallationID failed: %v", err)
	}
	if id == "" {
		t.Fatal("Expected non-empty installation ID")
	}

	again, err := store.InstallationID()
	if err != nil {
		t.Fatalf("InstallationID failed: %v", err)
	}
	if again != id {
		t.Errorf("Expected stable installation ID, got %q then %q", id, again)
	}
}
