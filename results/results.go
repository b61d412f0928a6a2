// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"math"

	"github.com/danielhkuo/pollpad/models"
)

// Percentage converts one option's votes into an integer percentage of
// the total, rounding half up. A zero total yields exactly 0, guarding
// division by zero.
func Percentage(optionVotes, totalVotes int) int {
	if totalVotes <= 0 {
		return 0
	}
	return int(math.Round(float64(optionVotes) / float64(totalVotes) * 100))
}

// Compute converts the poll's vote counts into per-option percentages,
// in option order, with a 1-indexed rank by vote count. Options with
// equal counts share a rank.
func Compute(p models.Poll) []models.OptionResult {
	total := p.TotalVotes()

	out := make([]models.OptionResult, len(p.Options))
	for i, opt := range p.Options {
		rank := 1
		for _, other := range p.Options {
			if other.Votes > opt.Votes {
				rank++
			}
		}
		out[i] = models.OptionResult{
			OptionID: opt.ID,
			Text:     opt.Text,
			Votes:    opt.Votes,
			Percent:  Percentage(opt.Votes, total),
			Rank:     rank,
		}
	}
	return out
}
