// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view for the TUI.
//
// This file defines the Bubble Tea message types used by the chat view.
package chat

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// ANIMATION MESSAGES
// =============================================================================

// FrameTickMsg drives animation frames (sequencer repaint, exit
// transitions, smooth scroll application) at ~30fps while anything is
// animating.
type FrameTickMsg struct {
	Time time.Time
}

// frameTickCmd schedules the next animation frame.
func frameTickCmd() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg {
		return FrameTickMsg{Time: t}
	})
}

// =============================================================================
// SEQUENCER MESSAGES
// =============================================================================

// SequenceStartedMsg signals that the submission was accepted and the
// scripted sequence is running.
type SequenceStartedMsg struct {
	SessionID string
}
