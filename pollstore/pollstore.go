// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pollstore

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/pollpad/ident"
	"github.com/danielhkuo/pollpad/models"
	"github.com/danielhkuo/pollpad/persist"
	"github.com/danielhkuo/pollpad/remotesync"
)

// Store owns the in-memory poll collection and the vote ledger.
//
// Mutations are serialized by the mutex and run to completion before
// another mutation is observed: validate, mutate memory, persist, then
// fire the remote mirror on a goroutine whose outcome is never awaited.
// The poll collection is newest-first by construction; new polls are
// prepended, never re-sorted.
type Store struct {
	mu      sync.Mutex
	polls   []models.Poll
	votes   models.Ledger
	persist *persist.Store
	remote  *remotesync.Client

	// lastCreatedAt keeps creation timestamps non-decreasing even if
	// the wall clock steps backwards.
	lastCreatedAt int64
}

func New(p *persist.Store, rc *remotesync.Client) *Store {
	return &Store{
		polls:   []models.Poll{},
		votes:   models.Ledger{},
		persist: p,
		remote:  rc,
	}
}

// Hydrate loads the poll collection and vote ledger from persistence.
// Called once after construction, before the store is shared.
func (s *Store) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.polls = s.persist.LoadPolls()
	s.votes = s.persist.LoadVotes()
	for _, p := range s.polls {
		if p.CreatedAt > s.lastCreatedAt {
			s.lastCreatedAt = p.CreatedAt
		}
	}
	slog.Info("store hydrated", "polls", len(s.polls), "votes", len(s.votes))
}

// CreatePoll validates the draft and, on success, prepends the new poll
// to the collection, persists it, and mirrors the creation remotely
// without awaiting the result. A rejected draft (blank question, or
// fewer than 2 non-empty options after trimming) creates nothing, has
// no side effects, and reports ok=false.
func (s *Store) CreatePoll(draft models.CreatePollRequest) (models.Poll, bool) {
	question := strings.TrimSpace(draft.Question)
	if question == "" {
		return models.Poll{}, false
	}

	texts := make([]string, 0, len(draft.Options))
	for _, raw := range draft.Options {
		if text := strings.TrimSpace(raw); text != "" {
			texts = append(texts, text)
		}
	}
	if len(texts) < 2 {
		return models.Poll{}, false
	}

	pollID, err := ident.NewPollID()
	if err != nil {
		slog.Error("failed to generate poll ID", "error", err)
		return models.Poll{}, false
	}

	options := make([]models.Option, 0, len(texts))
	for _, text := range texts {
		optionID, err := ident.NewOptionID()
		if err != nil {
			slog.Error("failed to generate option ID", "error", err)
			return models.Poll{}, false
		}
		options = append(options, models.Option{ID: optionID, Text: text, Votes: 0})
	}

	category := strings.TrimSpace(draft.Category)
	if category == "" {
		category = models.DefaultCategory
	}

	poll := models.Poll{
		ID:          pollID,
		Question:    question,
		Description: strings.TrimSpace(draft.Description),
		Options:     options,
		Category:    category,
		ImageURL:    draft.ImageURL,
	}

	s.mu.Lock()
	poll.CreatedAt = s.nextCreatedAt()
	s.polls = append([]models.Poll{poll}, s.polls...)
	s.flushPolls()
	// Clone before releasing the lock: the store-owned options are
	// votable the moment the lock drops, and nothing outside the
	// critical section may alias them.
	cloned := poll.Clone()
	s.mu.Unlock()

	slog.Info("poll created", "poll_id", cloned.ID, "category", cloned.Category, "options", len(options))

	go s.mirrorCreate(cloned)

	return cloned.Clone(), true
}

// Vote records this installation's vote for an option. A second vote
// on the same poll, or an option ID the poll does not have, is a
// silent no-op: counts and ledger are left untouched and recorded is
// false. On success the option's count is incremented by exactly 1,
// the ledger entry is written, both stores are persisted, and the vote
// is mirrored remotely without awaiting the result.
func (s *Store) Vote(pollID, optionID string) (recorded bool) {
	s.mu.Lock()

	if _, voted := s.votes[pollID]; voted {
		s.mu.Unlock()
		return false
	}

	poll := s.find(pollID)
	if poll == nil {
		s.mu.Unlock()
		return false
	}
	option := poll.Option(optionID)
	if option == nil {
		s.mu.Unlock()
		return false
	}

	option.Votes++
	s.votes[pollID] = optionID
	s.flushPolls()
	s.flushVotes()
	s.mu.Unlock()

	slog.Info("vote recorded", "poll_id", pollID, "option_id", optionID)

	go s.mirrorVote(pollID, optionID)

	return true
}

// DeletePoll removes the poll and its ledger entry as one unit; no
// reader can observe the poll gone while its vote record lingers, or
// the other way around. Unknown IDs are a no-op.
func (s *Store) DeletePoll(pollID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.polls {
		if s.polls[i].ID == pollID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	s.polls = append(s.polls[:idx], s.polls[idx+1:]...)
	delete(s.votes, pollID)
	s.flushPolls()
	s.flushVotes()

	slog.Info("poll deleted", "poll_id", pollID)
}

// Polls returns a deep copy of the collection, newest-first.
func (s *Store) Polls() []models.Poll {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Poll, len(s.polls))
	for i, p := range s.polls {
		out[i] = p.Clone()
	}
	return out
}

// Poll returns a copy of the poll with the given ID.
func (s *Store) Poll(pollID string) (models.Poll, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.find(pollID); p != nil {
		return p.Clone(), true
	}
	return models.Poll{}, false
}

// VotedOption returns the option this installation chose on the poll,
// if it has voted.
func (s *Store) VotedOption(pollID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	optionID, ok := s.votes[pollID]
	return optionID, ok
}

// Votes returns a copy of the vote ledger.
func (s *Store) Votes() models.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(models.Ledger, len(s.votes))
	for k, v := range s.votes {
		out[k] = v
	}
	return out
}

// find returns a pointer into the store-owned slice. Callers hold the
// mutex and clone before releasing it.
func (s *Store) find(pollID string) *models.Poll {
	for i := range s.polls {
		if s.polls[i].ID == pollID {
			return &s.polls[i]
		}
	}
	return nil
}

// nextCreatedAt returns the current epoch milliseconds, clamped so
// timestamps never decrease across creations in this process.
func (s *Store) nextCreatedAt() int64 {
	ts := time.Now().UnixMilli()
	if ts < s.lastCreatedAt {
		ts = s.lastCreatedAt
	}
	s.lastCreatedAt = ts
	return ts
}

// flushPolls and flushVotes persist the two stores. Write failures are
// logged and swallowed; the in-memory state stays authoritative for
// this process.
func (s *Store) flushPolls() {
	if err := s.persist.SavePolls(s.polls); err != nil {
		slog.Error("failed to persist polls", "error", err)
	}
}

func (s *Store) flushVotes() {
	if err := s.persist.SaveVotes(s.votes); err != nil {
		slog.Error("failed to persist vote ledger", "error", err)
	}
}

func (s *Store) mirrorCreate(poll models.Poll) {
	s.remote.CreatePoll(poll)
}

func (s *Store) mirrorVote(pollID, optionID string) {
	s.remote.Vote(pollID, optionID)
}
