// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pollpad API server.

Pollpad is a lightweight polling service: anyone can create a poll with
multiple options and an optional image, cast exactly one vote per poll,
and see results as percentages only after voting.

# Starting the Server

The server needs a database location via environment variables or CLI
flags:

	DATABASE_URL=pollpad.db go run main.go

Or with flags:

	go run main.go -p 3319 -d pollpad.db

# Configuration

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - PORT (-p): server port (default: 3319)
  - SYNC_ENDPOINT (--sync-endpoint): optional remote mirror; empty
    disables remote sync

# Architecture

The server wires an injectable poll store with dependency injection:

  - pollstore: the poll/vote state engine (the central component)
  - persist: durable key-value persistence for polls and the vote ledger
  - remotesync: optional, best-effort mirroring to a remote service
  - view: filtered/categorized projections for display
  - results: vote counts to ranked percentages
  - handlers, router, middleware: the HTTP surface
  - models: request/response and domain types
  - ident: opaque identifier generation
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
