// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package persist

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/danielhkuo/pollpad/models"
)

// Logical keys in the kv table.
const (
	keyPolls        = "polls"
	keyVotes        = "votes"
	keyInstallation = "installation"
)

// Store reads and writes the poll collection and the vote ledger as
// JSON documents in the kv table. There is no atomicity between the
// two keys; a crash between back-to-back saves can leave them out of
// sync, and callers accept that window.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadPolls returns the previously saved poll collection. Missing or
// unparseable data degrades to an empty collection, never an error.
func (s *Store) LoadPolls() []models.Poll {
	raw, ok := s.get(keyPolls)
	if !ok {
		return []models.Poll{}
	}

	var polls []models.Poll
	if err := json.Unmarshal([]byte(raw), &polls); err != nil {
		slog.Warn("stored polls unreadable, starting empty", "error", err)
		return []models.Poll{}
	}
	if polls == nil {
		polls = []models.Poll{}
	}
	return polls
}

// SavePolls durably overwrites the stored poll collection.
func (s *Store) SavePolls(polls []models.Poll) error {
	raw, err := json.Marshal(polls)
	if err != nil {
		return fmt.Errorf("failed to encode polls: %w", err)
	}
	return s.put(keyPolls, string(raw))
}

// LoadVotes returns the previously saved vote ledger, with the same
// corruption tolerance as LoadPolls.
func (s *Store) LoadVotes() models.Ledger {
	raw, ok := s.get(keyVotes)
	if !ok {
		return models.Ledger{}
	}

	var ledger models.Ledger
	if err := json.Unmarshal([]byte(raw), &ledger); err != nil {
		slog.Warn("stored vote ledger unreadable, starting empty", "error", err)
		return models.Ledger{}
	}
	if ledger == nil {
		ledger = models.Ledger{}
	}
	return ledger
}

// SaveVotes durably overwrites the stored vote ledger.
func (s *Store) SaveVotes(ledger models.Ledger) error {
	raw, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("failed to encode vote ledger: %w", err)
	}
	return s.put(keyVotes, string(raw))
}

// InstallationID returns this installation's durable identity, minting
// and storing a fresh UUID on first use. The vote ledger is keyed by
// installation, so the ID lives next to the ledger it scopes.
func (s *Store) InstallationID() (string, error) {
	if id, ok := s.get(keyInstallation); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	if err := s.put(keyInstallation, id); err != nil {
		return "", fmt.Errorf("failed to store installation ID: %w", err)
	}
	return id, nil
}

func (s *Store) get(key string) (string, bool) {
	var v string
	err := s.db.QueryRow("SELECT v FROM kv WHERE k = $1", key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		slog.Warn("failed to read from kv store", "key", key, "error", err)
		return "", false
	}
	return v, true
}

func (s *Store) put(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (k, v) VALUES ($1, $2)
		ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %q to kv store: %w", key, err)
	}
	return nil
}
