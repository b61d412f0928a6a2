// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Byte lengths for generated identifiers. Collisions are a theoretical
// risk only and are not actively checked.
const (
	PollIDLen   = 8
	OptionIDLen = 6
)

// NewID creates a random hex ID of the specified byte length
func NewID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewPollID creates an identifier sized for polls
func NewPollID() (string, error) {
	return NewID(PollIDLen)
}

// NewOptionID creates an identifier sized for options
func NewOptionID() (string, error) {
	return NewID(OptionIDLen)
}
