// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema.

The whole schema is a single key-value table:

	CREATE TABLE kv (
	    k TEXT PRIMARY KEY,
	    v TEXT NOT NULL
	);

Values are UTF-8 JSON documents written by the persist package. The
statement is portable across SQLite (modernc.org/sqlite) and PostgreSQL
(lib/pq), which are the two supported drivers.

CreateSchema is idempotent and is called once at startup.
*/
package db
