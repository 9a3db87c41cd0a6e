// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"time"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds the session's conversation log. It lives only for the
// current process; nothing is persisted.
type Conversation struct {
	// Identity
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Entries in append order.
	Entries []*Entry
}

// NewConversation creates an empty conversation for this session.
func NewConversation(sessionID string) *Conversation {
	return &Conversation{
		ID:        sessionID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Entries:   make([]*Entry, 0),
	}
}

// =============================================================================
// ENTRY MANAGEMENT
// =============================================================================

// Append adds an entry to the log and returns it. The entry's top offset
// is assigned from the running line count of the rendered log so the UI
// can scroll the new content's first line to the viewport top.
func (c *Conversation) Append(e *Entry) *Entry {
	e.top = c.lineCount()
	c.Entries = append(c.Entries, e)
	c.UpdatedAt = time.Now()
	return e
}

// AppendMessage creates and appends an attributed message entry.
func (c *Conversation) AppendMessage(role Role, content, avatarPath string) *Entry {
	return c.Append(NewMessageEntry(role, content, avatarPath))
}

// AppendAction creates and appends an action control entry.
func (c *Conversation) AppendAction(label string, activate func()) *Entry {
	return c.Append(NewActionEntry(label, activate))
}

// Len returns the number of entries.
func (c *Conversation) Len() int {
	return len(c.Entries)
}

// Last returns the most recent entry, or nil for an empty log.
func (c *Conversation) Last() *Entry {
	if len(c.Entries) == 0 {
		return nil
	}
	return c.Entries[len(c.Entries)-1]
}

// lineCount approximates the rendered log's current line count: each
// entry's content lines plus one separator line. The chat view uses the
// same shape when it renders entries, keeping scroll targets aligned.
func (c *Conversation) lineCount() int {
	lines := 0
	for _, e := range c.Entries {
		lines += strings.Count(e.Content, "\n") + 1
		lines++ // separator between entries
	}
	return lines
}
