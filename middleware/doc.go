// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

  - WithLogging: structured request/completion logging via slog
  - CORS: permissive cross-origin headers for the frontend
  - JSONResponse / ErrorResponse: response encoding helpers
  - ParseJSONBody: request decoding helper
*/
package middleware
