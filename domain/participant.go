// Package domain contains core concepts of the chat relay.
// This file defines Participant names and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"chat-relay/errors"
	"strings"
)

// DisplayName identifies a participant while its session is active.
// A committed name is never empty and never contains DirectedDelimiter.
type DisplayName string

func (n DisplayName) String() string { return string(n) }

// NewDisplayName validates a name proposed during the handshake.
// Surrounding whitespace is not part of the name.
func NewDisplayName(proposed string) (DisplayName, error) {
	name := strings.TrimSpace(proposed)
	if name == "" {
		return "", errors.ErrEmptyName
	}
	if strings.Contains(name, DirectedDelimiter) {
		return "", errors.ErrNameDelimiter
	}
	return DisplayName(name), nil
}
