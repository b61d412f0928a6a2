// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"strings"

	"github.com/danielhkuo/pollpad/models"
)

// Categories returns the "All" sentinel followed by every distinct
// category across the polls, in first-seen order.
func Categories(polls []models.Poll) []string {
	out := []string{models.CategoryAll}
	seen := map[string]bool{}
	for _, p := range polls {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Filter keeps a poll iff its category matches (or the filter is
// "All") and the search text is empty or a case-insensitive substring
// of the question. Collection order is preserved; nothing is
// re-sorted.
func Filter(polls []models.Poll, category, search string) []models.Poll {
	search = strings.ToLower(search)

	out := []models.Poll{}
	for _, p := range polls {
		if category != models.CategoryAll && p.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Question), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}
