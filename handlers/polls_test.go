// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pollpad/models"
	"github.com/danielhkuo/pollpad/testutil"
)

func TestCreatePoll(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.Poll)
	}{
		{
			name: "valid poll creation",
			requestBody: models.CreatePollRequest{
				Question:    "Best editor?",
				Description: "settle it forever",
				Options:     []string{"vim", "emacs", "vscode"},
				Category:    "Tech",
				ImageURL:    "https://example.com/editors.png",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.Poll) {
				if resp.ID == "" {
					t.Error("Expected non-empty poll id")
				}
				if len(resp.Options) != 3 {
					t.Errorf("Expected 3 options, got %d", len(resp.Options))
				}
				if resp.Category != "Tech" {
					t.Errorf("Expected category Tech, got %q", resp.Category)
				}
				if resp.ImageURL != "https://example.com/editors.png" {
					t.Errorf("Unexpected image URL %q", resp.ImageURL)
				}
			},
		},
		{
			name: "default category",
			requestBody: models.CreatePollRequest{
				Question: "Q",
				Options:  []string{"a", "b"},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.Poll) {
				if resp.Category != models.DefaultCategory {
					t.Errorf("Expected category %q, got %q", models.DefaultCategory, resp.Category)
				}
			},
		},
		{
			name: "missing question",
			requestBody: models.CreatePollRequest{
				Options: []string{"a", "b"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "too few usable options",
			requestBody: models.CreatePollRequest{
				Question: "Q",
				Options:  []string{"a", "  "},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPollHandler(testutil.NewTestStore(t))

			req := testutil.MakeRequest(http.MethodPost, "/polls", tt.requestBody, nil)
			w := httptest.NewRecorder()
			handler.CreatePoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil {
				var resp models.Poll
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestListPolls(t *testing.T) {
	store := testutil.NewTestStore(t)
	handler := NewPollHandler(store)

	tech, _ := store.CreatePoll(models.CreatePollRequest{
		Question: "Best programming language?",
		Options:  []string{"go", "rust"},
		Category: "Tech",
	})
	food, _ := store.CreatePoll(models.CreatePollRequest{
		Question: "Best pizza topping?",
		Options:  []string{"cheese", "pepperoni"},
		Category: "Food",
	})
	store.Vote(food.ID, food.Options[0].ID)

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"all polls newest-first", "", []string{food.ID, tech.ID}},
		{"by category", "?category=Tech", []string{tech.ID}},
		{"by search", "?q=PIZZA", []string{food.ID}},
		{"no matches", "?category=Sports", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest(http.MethodGet, "/polls"+tt.query, nil, nil)
			w := httptest.NewRecorder()
			handler.ListPolls(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.PollListResponse
			testutil.AssertJSON(t, w, &resp)

			if len(resp.Polls) != len(tt.wantIDs) {
				t.Fatalf("Expected %d polls, got %d", len(tt.wantIDs), len(resp.Polls))
			}
			for i, want := range tt.wantIDs {
				if resp.Polls[i].Poll.ID != want {
					t.Errorf("Position %d: expected %s, got %s", i, want, resp.Polls[i].Poll.ID)
				}
			}
		})
	}

	t.Run("voted flag and created_ago", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/polls", nil, nil)
		w := httptest.NewRecorder()
		handler.ListPolls(w, req)

		var resp models.PollListResponse
		testutil.AssertJSON(t, w, &resp)

		for _, item := range resp.Polls {
			wantVoted := item.Poll.ID == food.ID
			if item.Voted != wantVoted {
				t.Errorf("Poll %s voted = %v, expected %v", item.Poll.ID, item.Voted, wantVoted)
			}
			if item.CreatedAgo == "" {
				t.Errorf("Poll %s missing created_ago", item.Poll.ID)
			}
		}
	})

	t.Run("categories include sentinel", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/polls", nil, nil)
		w := httptest.NewRecorder()
		handler.ListPolls(w, req)

		var resp models.PollListResponse
		testutil.AssertJSON(t, w, &resp)

		if len(resp.Categories) == 0 || resp.Categories[0] != models.CategoryAll {
			t.Errorf("Expected categories to start with All, got %v", resp.Categories)
		}
	})
}

func TestGetPoll(t *testing.T) {
	store := testutil.NewTestStore(t)
	handler := NewPollHandler(store)
	poll := testutil.CreateTestPoll(t, store, "Q", "a", "b")

	t.Run("found", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/polls/"+poll.ID, nil, nil)
		req.SetPathValue("id", poll.ID)
		w := httptest.NewRecorder()
		handler.GetPoll(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.Poll
		testutil.AssertJSON(t, w, &resp)
		if resp.ID != poll.ID {
			t.Errorf("Expected poll %s, got %s", poll.ID, resp.ID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/polls/missing", nil, nil)
		req.SetPathValue("id", "missing")
		w := httptest.NewRecorder()
		handler.GetPoll(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestDeletePoll(t *testing.T) {
	store := testutil.NewTestStore(t)
	handler := NewPollHandler(store)
	poll := testutil.CreateTestPoll(t, store, "Q", "a", "b")
	store.Vote(poll.ID, poll.Options[0].ID)

	req := testutil.MakeRequest(http.MethodDelete, "/polls/"+poll.ID, nil, nil)
	req.SetPathValue("id", poll.ID)
	w := httptest.NewRecorder()
	handler.DeletePoll(w, req)

	testutil.AssertStatus(t, w, http.StatusNoContent)

	if _, ok := store.Poll(poll.ID); ok {
		t.Error("Poll still present after delete")
	}
	if _, voted := store.VotedOption(poll.ID); voted {
		t.Error("Ledger entry still present after delete")
	}

	// Deleting again is a no-op, not an error
	w = httptest.NewRecorder()
	req = testutil.MakeRequest(http.MethodDelete, "/polls/"+poll.ID, nil, nil)
	req.SetPathValue("id", poll.ID)
	handler.DeletePoll(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)
}

func TestListCategories(t *testing.T) {
	store := testutil.NewTestStore(t)
	handler := NewPollHandler(store)

	store.CreatePoll(models.CreatePollRequest{Question: "a", Options: []string{"x", "y"}, Category: "Tech"})
	store.CreatePoll(models.CreatePollRequest{Question: "b", Options: []string{"x", "y"}, Category: "Food"})
	store.CreatePoll(models.CreatePollRequest{Question: "c", Options: []string{"x", "y"}, Category: "Tech"})

	req := testutil.MakeRequest(http.MethodGet, "/categories", nil, nil)
	w := httptest.NewRecorder()
	handler.ListCategories(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var categories []string
	testutil.AssertJSON(t, w, &categories)

	// Newest-first collection, categories in first-seen order
	want := []string{"All", "Tech", "Food"}
	if len(categories) != len(want) {
		t.Fatalf("Expected %v, got %v", want, categories)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, categories)
			break
		}
	}
}
