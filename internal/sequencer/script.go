// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sequencer

import "time"

// =============================================================================
// TIMING CONSTANTS
// =============================================================================

// Timings holds every fixed duration in the scripted sequence.
type Timings struct {
	// TypeSpeed is the delay between revealed runes while typing.
	TypeSpeed time.Duration
	// DeleteSpeed is the delay between removed runes while deleting.
	DeleteSpeed time.Duration
	// Hold is how long a fully typed stanza stays on screen.
	Hold time.Duration
	// Settle is the pause after the final stanza's hold, before the exit
	// transitions begin.
	Settle time.Duration
	// Exit is how long the exit transitions run before the character
	// region is hidden.
	Exit time.Duration
	// Scroll is the duration of the smooth scroll to the revealed reply.
	Scroll time.Duration
}

// DefaultTimings returns the demo's canonical timing set.
func DefaultTimings() Timings {
	return Timings{
		TypeSpeed:   50 * time.Millisecond,
		DeleteSpeed: 30 * time.Millisecond,
		Hold:        3000 * time.Millisecond,
		Settle:      500 * time.Millisecond,
		Exit:        1000 * time.Millisecond,
		Scroll:      1500 * time.Millisecond,
	}
}

// =============================================================================
// THOUGHT SCRIPT
// =============================================================================

// Script is an ordered, immutable sequence of thought stanzas. The
// sequencer types each stanza, holds it, and deletes it before the next;
// the final stanza is never deleted.
type Script []string

// DefaultScript is the fixed thought script compiled into the demo.
var DefaultScript = Script{
	"Hmm, let me think about that...",
	"Checking what the survey data says...",
	"Okay, I know how to answer this!",
}

// =============================================================================
// FIXED CONVERSATION CONTENT
// =============================================================================

// The demo has no backend: whatever the user types is discarded and the
// same canned exchange is logged every time.

// DemoUserLine is the fixed content logged as the user's message.
const DemoUserLine = "What do the latest survey results look like?"

// DemoReply is the fixed assistant reply revealed after the thinking
// sequence, in markdown.
const DemoReply = "Here's what the latest survey says: **68%** of respondents " +
	"prefer the new layout, up from 54% last quarter. The biggest gains came " +
	"from returning users.\n\n" +
	"A quick way to slice the raw numbers yourself:\n\n" +
	"```python\nimport statistics\n\nscores = [54, 59, 63, 68]\n" +
	"print(statistics.mean(scores))\n```\n\n" +
	"Open the details view for the full breakdown."

// DemoAvatarPath is the assistant avatar resource attached to the reply.
const DemoAvatarPath = "assets/character/idle.png"

// DemoActionLabel is the label of the action control appended after the
// reply; activating it opens the auxiliary detail view.
const DemoActionLabel = "See full breakdown"
