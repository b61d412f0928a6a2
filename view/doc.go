// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package view derives filtered, searchable, categorized projections of
// the poll collection for display. Both functions are pure and are
// recomputed on every request.
package view
