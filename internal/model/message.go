// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents who a conversation entry is attributed to.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Assistant"
	default:
		return string(r)
	}
}

// =============================================================================
// ENTRY TYPE
// =============================================================================

// EntryKind distinguishes message entries from action controls.
type EntryKind int

const (
	// KindMessage is a normal attributed message.
	KindMessage EntryKind = iota
	// KindAction is an activatable control appended below the last
	// message (the demo's "open details" button).
	KindAction
)

// Entry represents a single item in the conversation log: either an
// attributed message or an action control.
type Entry struct {
	// Identity
	ID        string
	Kind      EntryKind
	Role      Role
	Timestamp time.Time

	// Content: markdown for messages, the label for actions.
	Content string

	// AvatarPath is the sprite resource shown next to the entry, if any.
	AvatarPath string

	// Activate runs when an action entry is triggered. Nil for messages.
	Activate func()

	// top is the entry's first line offset within the rendered log,
	// maintained by the conversation for scroll targeting.
	top int
}

// NewMessageEntry creates an attributed message entry.
func NewMessageEntry(role Role, content, avatarPath string) *Entry {
	return &Entry{
		ID:         uuid.NewString(),
		Kind:       KindMessage,
		Role:       role,
		Timestamp:  time.Now(),
		Content:    content,
		AvatarPath: avatarPath,
	}
}

// NewActionEntry creates an action control entry.
func NewActionEntry(label string, activate func()) *Entry {
	return &Entry{
		ID:        uuid.NewString(),
		Kind:      KindAction,
		Role:      RoleAssistant,
		Timestamp: time.Now(),
		Content:   label,
		Activate:  activate,
	}
}

// Top returns the entry's top edge as a scroll offset within the rendered
// log. Implemented on the entry so it can serve as an opaque scroll-target
// handle.
func (e *Entry) Top() float64 {
	return float64(e.top)
}
