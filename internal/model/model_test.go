// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"
)

func TestRoleDisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleAssistant, "Assistant"},
		{Role("other"), "other"},
	}
	for _, tc := range tests {
		if got := tc.role.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%v) = %q, want %q", tc.role, got, tc.want)
		}
	}
}

func TestConversationAppend(t *testing.T) {
	c := NewConversation("session-1")

	if c.Len() != 0 || c.Last() != nil {
		t.Fatal("new conversation should be empty")
	}

	e := c.AppendMessage(RoleUser, "hello", "")
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	if c.Last() != e {
		t.Error("Last() should return the appended entry")
	}
	if e.ID == "" {
		t.Error("entry should have a generated ID")
	}
	if e.Kind != KindMessage {
		t.Errorf("Kind = %v, want KindMessage", e.Kind)
	}
}

func TestConversationAppendAction(t *testing.T) {
	c := NewConversation("session-1")
	ran := false

	e := c.AppendAction("See details", func() { ran = true })
	if e.Kind != KindAction {
		t.Errorf("Kind = %v, want KindAction", e.Kind)
	}
	e.Activate()
	if !ran {
		t.Error("Activate should run the callback")
	}
}

func TestConversationScrollTargets(t *testing.T) {
	c := NewConversation("session-1")

	first := c.AppendMessage(RoleUser, "line one\nline two", "")
	second := c.AppendMessage(RoleAssistant, "reply", "assets/character/idle.png")

	if first.Top() != 0 {
		t.Errorf("first.Top() = %v, want 0", first.Top())
	}
	// First entry: 2 content lines + 1 separator = 3.
	if second.Top() != 3 {
		t.Errorf("second.Top() = %v, want 3", second.Top())
	}
}
