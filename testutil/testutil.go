// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pollpad/db"
	"github.com/danielhkuo/pollpad/models"
	"github.com/danielhkuo/pollpad/persist"
	"github.com/danielhkuo/pollpad/pollstore"
	"github.com/danielhkuo/pollpad/remotesync"
)

// SetupTestDB opens an in-memory SQLite database with the schema
// created. Limited to one connection so every query sees the same
// in-memory store.
func SetupTestDB(t *testing.T) *sql.DB {
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

// NewTestStore builds a hydrated poll store over an in-memory database
// with remote sync disabled.
func NewTestStore(t *testing.T) *pollstore.Store {
	t.Helper()

	store := pollstore.New(persist.New(SetupTestDB(t)), remotesync.New("", ""))
	store.Hydrate()
	return store
}

// CreateTestPoll creates a poll through the store and fails the test if
// the draft is rejected.
func CreateTestPoll(t *testing.T, store *pollstore.Store, question string, options ...string) models.Poll {
	t.Helper()

	poll, ok := store.CreatePoll(models.CreatePollRequest{
		Question: question,
		Options:  options,
	})
	if !ok {
		t.Fatalf("Failed to create test poll %q", question)
	}
	return poll
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
