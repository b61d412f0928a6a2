// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pollstore is the poll/vote state engine.

The Store holds the poll collection and the vote ledger in memory and
is the only writer of either. Its lifecycle is construct, hydrate from
persistence, mutate via methods, flush on every mutation.

# Invariants

  - A poll always has at least 2 options; drafts that fail validation
    are rejected whole, never partially created.
  - The collection is newest-first and unique by ID.
  - The ledger holds at most one entry per poll. Per poll the ledger
    moves Unvoted -> Voted once; the only way back is deleting the
    poll, which removes the poll and its ledger entry together.
  - A vote increments exactly one option's count by exactly 1.

Double votes, unknown option IDs, and deletes of unknown polls are
expected outcomes and are silent no-ops, not errors.

Remote mirroring is fire-and-forget: mutations are synchronous with
respect to local state, so callers and tests can assert post-conditions
without waiting on network timing.
*/
package pollstore
