// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags and
environment variables.

A .env file in the working directory is loaded first (via godotenv),
then flags take precedence over environment variables.

Settings:

  - PORT (-p): server port (default: 3319)
  - DATABASE_URL (-d): PostgreSQL connection string or SQLite file path (required)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - SYNC_ENDPOINT (--sync-endpoint): remote sync base URL; empty disables
    remote sync entirely
*/
package cliparse
