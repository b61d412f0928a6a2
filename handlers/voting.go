// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/pollpad/middleware"
	"github.com/danielhkuo/pollpad/models"
	"github.com/danielhkuo/pollpad/pollstore"
	"github.com/danielhkuo/pollpad/results"
)

type VotingHandler struct {
	store *pollstore.Store
}

func NewVotingHandler(store *pollstore.Store) *VotingHandler {
	return &VotingHandler{store: store}
}

// Vote handles POST /polls/{id}/votes
// The store treats a double vote as a silent no-op; here it surfaces
// as 409 so the frontend can render "you already voted".
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.OptionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option_id is required")
		return
	}

	poll, ok := h.store.Poll(pollID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if poll.Option(req.OptionID) == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid option_id: "+req.OptionID)
		return
	}

	if !h.store.Vote(pollID, req.OptionID) {
		middleware.ErrorResponse(w, http.StatusConflict, "Already voted on this poll")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		PollID:   pollID,
		OptionID: req.OptionID,
		Message:  "Vote recorded",
	})
}

// GetResults handles GET /polls/{id}/results
// Returns 403 until this installation has voted on the poll.
func (h *VotingHandler) GetResults(w http.ResponseWriter, r *http.Request) {
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

	// Results are sealed until the caller votes
	if _, voted := h.store.VotedOption(pollID); !voted {
		middleware.ErrorResponse(w, http.StatusForbidden, "Results are hidden until you vote")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		PollID:     poll.ID,
		Question:   poll.Question,
		TotalVotes: poll.TotalVotes(),
		Results:    results.Compute(poll),
	})
}
