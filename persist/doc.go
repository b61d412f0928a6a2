// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package persist adapts the kv table into typed load/save operations for
the poll collection and the vote ledger.

# Contract

  - LoadPolls / LoadVotes return what was last saved, or an empty
    collection/ledger when nothing was stored or the stored text fails
    to parse. Corruption is treated as "no data", never as a fatal
    error.
  - SavePolls / SaveVotes overwrite the stored value for their key.
  - Save followed by Load round-trips to an equal value.

The polls key holds a JSON array of poll records; the votes key holds a
JSON object mapping poll IDs to option IDs. A third key stores the
installation UUID that scopes the vote ledger.

The two collections are saved under separate keys with no transaction
spanning them, so a crash between the two writes can leave them
inconsistent. Higher layers issue the writes back-to-back on every
mutation and accept that narrow window.
*/
package persist
