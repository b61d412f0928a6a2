// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/pollpad/middleware"
	"github.com/danielhkuo/pollpad/models"
	"github.com/danielhkuo/pollpad/pollstore"
	"github.com/danielhkuo/pollpad/view"
)

type PollHandler struct {
	store *pollstore.Store
}

func NewPollHandler(store *pollstore.Store) *PollHandler {
	return &PollHandler{store: store}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, ok := h.store.CreatePoll(req)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "A question and at least 2 non-empty options are required")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// ListPolls handles GET /polls?category=...&q=...
// Returns the filtered collection newest-first, plus the category list.
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = models.CategoryAll
	}
	search := r.URL.Query().Get("q")

	polls := h.store.Polls()
	categories := view.Categories(polls)
	filtered := view.Filter(polls, category, search)

	items := make([]models.PollListItem, 0, len(filtered))
	for _, p := range filtered {
		_, voted := h.store.VotedOption(p.ID)
		items = append(items, models.PollListItem{
			Poll:       p,
			CreatedAgo: humanize.Time(time.UnixMilli(p.CreatedAt)),
			Voted:      voted,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollListResponse{
		Polls:      items,
		Categories: categories,
	})
}

// ListCategories handles GET /categories
func (h *PollHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, view.Categories(h.store.Polls()))
}

// GetPoll handles GET /polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	poll, ok := h.store.Poll(pollID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// DeletePoll handles DELETE /polls/{id}
// Deleting an unknown poll is a no-op, so this always succeeds.
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	h.store.DeletePoll(pollID)
	w.WriteHeader(http.StatusNoContent)
}
