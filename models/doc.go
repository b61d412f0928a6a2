// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: question, description, options, category, image_url
  - VoteRequest: option_id

# Response Types

Types for JSON responses:

  - VoteResponse: poll_id, option_id, message
  - PollListItem / PollListResponse: polls with created_ago and voted flags
  - ResultsResponse: ranked option percentages
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Poll: a question with an ordered list of voteable options
  - Option: one selectable answer, with its own vote count
  - Ledger: poll ID -> chosen option ID for this installation
  - OptionResult: one option's share of a poll's votes

Polls and their options are created atomically and never mutated
afterward, except for vote-count increments and whole-poll removal.
Option order is insertion order and doubles as display order.
*/
package models
