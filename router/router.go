// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/pollpad/handlers"
	"github.com/danielhkuo/pollpad/middleware"
	"github.com/danielhkuo/pollpad/pollstore"
)

func NewRouter(store *pollstore.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(store)
	votingHandler := handlers.NewVotingHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll management
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("DELETE /polls/{id}", middleware.WithLogging(pollHandler.DeletePoll))
	mux.HandleFunc("GET /categories", middleware.WithLogging(pollHandler.ListCategories))

	// Voting operations
	mux.HandleFunc("POST /polls/{id}/votes", middleware.WithLogging(votingHandler.Vote))
	mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(votingHandler.GetResults))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollpad API v1"))
	})

	return mux
}
