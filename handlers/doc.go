// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements HTTP request handlers.

# Handler Types

  - PollHandler: poll creation, listing, retrieval, deletion, categories
  - VotingHandler: vote casting and results retrieval

Handlers are thin: validation with real consequences lives in the poll
store, and handlers translate its silent no-ops into status codes the
frontend can act on (400 for rejected drafts and unknown options, 409
for double votes, 403 for results requested before voting).
*/
package handlers
