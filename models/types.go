// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// DefaultCategory is assigned to polls created without a category.
const DefaultCategory = "General"

// CategoryAll is the sentinel that matches every category when filtering.
const CategoryAll = "All"

// Request types

type CreatePollRequest struct {
	Question    string   `json:"question"`
	Description string   `json:"description"`
	Options     []string `json:"options"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
}

type VoteRequest struct {
	OptionID string `json:"option_id"`
}

// Response types

type VoteResponse struct {
	PollID   string `json:"poll_id"`
	OptionID string `json:"option_id"`
	Message  string `json:"message"`
}

type PollListItem struct {
	Poll       Poll   `json:"poll"`
	CreatedAgo string `json:"created_ago"`
	Voted      bool   `json:"voted"`
}

type PollListResponse struct {
	Polls      []PollListItem `json:"polls"`
	Categories []string       `json:"categories"`
}

type ResultsResponse struct {
	PollID     string         `json:"poll_id"`
	Question   string         `json:"question"`
	TotalVotes int            `json:"total_votes"`
	Results    []OptionResult `json:"results"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type Option struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

type Poll struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Description string   `json:"description,omitempty"`
	Options     []Option `json:"options"`
	Category    string   `json:"category"`
	CreatedAt   int64    `json:"created_at"` // epoch milliseconds
	ImageURL    string   `json:"image_url,omitempty"`
}

// Ledger maps poll ID to the option ID this installation chose.
// At most one entry per poll; an entry never changes until its poll
// is deleted.
type Ledger map[string]string

// OptionResult is one option's share of a poll's votes.
type OptionResult struct {
	OptionID string `json:"option_id"`
	Text     string `json:"text"`
	Votes    int    `json:"votes"`
	Percent  int    `json:"percent"`
	Rank     int    `json:"rank"` // 1-indexed, ties share the better (lower) rank
}

// Option returns the option with the given ID, or nil if the poll has
// no such option.
func (p *Poll) Option(optionID string) *Option {
	for i := range p.Options {
		if p.Options[i].ID == optionID {
			return &p.Options[i]
		}
	}
	return nil
}

// TotalVotes sums the vote counts across all of the poll's options.
func (p *Poll) TotalVotes() int {
	total := 0
	for _, opt := range p.Options {
		total += opt.Votes
	}
	return total
}

// Clone returns a deep copy of the poll so readers never alias
// store-owned option slices.
func (p Poll) Clone() Poll {
	out := p
	out.Options = make([]Option, len(p.Options))
	copy(out.Options, p.Options)
	return out
}
