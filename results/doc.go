// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package results converts option vote counts into ranked percentages
// for presentation. Pure functions, no state.
package results
