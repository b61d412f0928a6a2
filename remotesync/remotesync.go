// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package remotesync

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/pollpad/models"
)

// Client mirrors poll creation and vote casting to a remote service.
// Every failure is absorbed here: callers get a best-effort boolean and
// never an error, and local state is never rolled back on a miss.
//
// With an empty endpoint the client is disabled and both operations
// behave as if they trivially succeeded.
type Client struct {
	endpoint string
	clientID string
	http     *http.Client
}

// New builds a client for the given endpoint. The clientID identifies
// this installation to the remote service via the X-Client-ID header.
func New(endpoint, clientID string) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		clientID: clientID,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether an endpoint is configured.
func (c *Client) Enabled() bool {
	return c.endpoint != ""
}

type createPollBody struct {
	Question    string   `json:"question"`
	Description string   `json:"description,omitempty"`
	Options     []string `json:"options"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url,omitempty"`
}

type createPollReply struct {
	ID string `json:"id"`
}

type voteBody struct {
	OptionID string `json:"option_id"`
}

// CreatePoll notifies the remote service of a newly created poll and
// returns the remote ID on success. The poll's local ID and timestamp
// are not sent; the remote assigns its own.
func (c *Client) CreatePoll(p models.Poll) (string, bool) {
	if !c.Enabled() {
		return "", true
	}

	options := make([]string, len(p.Options))
	for i, opt := range p.Options {
		options[i] = opt.Text
	}

	body := createPollBody{
		Question:    p.Question,
		Description: p.Description,
		Options:     options,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
	}

	var reply createPollReply
	if !c.post(c.endpoint+"/polls", body, &reply) {
		slog.Warn("remote poll create failed", "poll_id", p.ID)
		return "", false
	}

	slog.Debug("poll mirrored to remote", "poll_id", p.ID, "remote_id", reply.ID)
	return reply.ID, true
}

// Vote notifies the remote service of a cast vote.
func (c *Client) Vote(pollID, optionID string) bool {
	if !c.Enabled() {
		return true
	}

	if !c.post(c.endpoint+"/polls/"+pollID+"/votes", voteBody{OptionID: optionID}, nil) {
		slog.Warn("remote vote failed", "poll_id", pollID, "option_id", optionID)
		return false
	}

	slog.Debug("vote mirrored to remote", "poll_id", pollID, "option_id", optionID)
	return true
}

// post sends a JSON body and decodes a JSON reply into out (when out is
// non-nil). Any network error or non-2xx status reduces to false.
func (c *Client) post(url string, body, out any) bool {
	raw, err := json.Marshal(body)
	if err != nil {
		slog.Warn("failed to encode sync request", "error", err)
		return false
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		slog.Warn("failed to build sync request", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	if c.clientID != "" {
		req.Header.Set("X-Client-ID", c.clientID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Warn("sync request failed", "url", url, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("sync request rejected", "url", url, "status", resp.StatusCode)
		return false
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			slog.Warn("failed to decode sync response", "url", url, "error", err)
			return false
		}
	}
	return true
}
