// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"sync"
	"time"

	"github.com/jeranaias/mascot-tui/internal/ui/styles"
)

// =============================================================================
// THOUGHT BUBBLE
// =============================================================================

// ThoughtBubble is the mascot's thought surface. It satisfies the
// sequencer's thought contract: a text sink with visibility and an
// upward-float exit transition.
//
// SetText, Show, Hide and FloatUp arrive from the sequencer goroutine;
// View runs on the Bubble Tea loop. All state is mutex-guarded.
type ThoughtBubble struct {
	mu sync.Mutex

	theme *styles.Theme
	width int

	text     string
	visible  bool
	floating bool
	rise     int // rows risen since FloatUp
}

// NewThoughtBubble creates a hidden, empty thought bubble.
func NewThoughtBubble(theme *styles.Theme) *ThoughtBubble {
	return &ThoughtBubble{theme: theme, width: 40}
}

// SetText replaces the bubble's text. Called per revealed/deleted unit by
// the typewriter.
func (b *ThoughtBubble) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
}

// Text returns the bubble's current text.
func (b *ThoughtBubble) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// Show makes the bubble visible.
func (b *ThoughtBubble) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.visible = true
}

// Hide removes the bubble.
func (b *ThoughtBubble) Hide() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.visible = false
}

// Visible reports whether the bubble is shown.
func (b *ThoughtBubble) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

// FloatUp starts the upward exit transition. Fire-and-forget: the float
// advances on frame ticks.
func (b *ThoughtBubble) FloatUp() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.floating = true
}

// Floating reports whether the exit transition is active.
func (b *ThoughtBubble) Floating() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.floating && b.visible
}

// StepFrame advances the float by one row per frame.
func (b *ThoughtBubble) StepFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.floating && b.visible {
		b.rise++
	}
}

// SetWidth sets the bubble's wrap width.
func (b *ThoughtBubble) SetWidth(width int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width = width
}

// View renders the bubble with a blinking cursor while text is present.
// The float transition clips rows off the top so the bubble appears to
// drift up and out of its region.
func (b *ThoughtBubble) View() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.visible {
		return ""
	}

	cursor := styles.TypingCursor[0]
	if (time.Now().UnixMilli()/int64(styles.CursorBlinkRate/time.Millisecond))%2 == 1 {
		cursor = styles.TypingCursor[1]
	}

	bubble := b.theme.ThoughtBubble.Width(b.width).Render(
		b.theme.ThoughtText.Render(b.text + cursor))

	if b.rise > 0 {
		lines := strings.Split(bubble, "\n")
		if b.rise >= len(lines) {
			return ""
		}
		bubble = strings.Join(lines[b.rise:], "\n")
	}
	return bubble
}
