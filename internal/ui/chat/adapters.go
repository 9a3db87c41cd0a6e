// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view for the TUI.
//
// This file adapts the chat view's components to the surfaces the
// sequencer and the direction tracker consume. The sequencer runs in its
// own goroutine, so every adapter it touches is mutex-guarded.
package chat

import (
	"sync"

	"github.com/jeranaias/mascot-tui/internal/model"
	"github.com/jeranaias/mascot-tui/internal/sequencer"
	"github.com/jeranaias/mascot-tui/internal/ui/components"
)

// =============================================================================
// CONVERSATION LOG ADAPTER
// =============================================================================

// convLog wraps the conversation so the sequencer goroutine can append the
// revealed reply while the Bubble Tea loop renders the log on frame ticks.
type convLog struct {
	mu   sync.Mutex
	conv *model.Conversation
}

func newConvLog(conv *model.Conversation) *convLog {
	return &convLog{conv: conv}
}

// Append implements sequencer.ConversationLog.
func (l *convLog) Append(who sequencer.Participant, content, avatarPath string) sequencer.EntryHandle {
	l.mu.Lock()
	defer l.mu.Unlock()

	role := model.RoleUser
	if who == sequencer.ParticipantAssistant {
		role = model.RoleAssistant
	}
	return l.conv.AppendMessage(role, content, avatarPath)
}

// AppendAction implements sequencer.ConversationLog.
func (l *convLog) AppendAction(label string, activate func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.conv.AppendAction(label, activate)
}

// AppendUser logs the fixed user line from the UI side.
func (l *convLog) AppendUser(content string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.conv.AppendMessage(model.RoleUser, content, "")
}

// Render renders the whole log under the lock.
func (l *convLog) Render(r *components.MessageRenderer) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return r.RenderAll(l.conv)
}

// LastAction returns the most recent action entry, or nil.
func (l *convLog) LastAction() *model.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := len(l.conv.Entries) - 1; i >= 0; i-- {
		if l.conv.Entries[i].Kind == model.KindAction {
			return l.conv.Entries[i]
		}
	}
	return nil
}

// Len returns the entry count.
func (l *convLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.conv.Len()
}

// =============================================================================
// SCROLLER ADAPTER
// =============================================================================

// pendingScroller decouples the sequencer's smooth scroll from the
// viewport: the scroll loop writes interpolated offsets here, and the
// update loop applies the latest one on each frame tick. Intermediate
// offsets between two ticks are coalesced.
type pendingScroller struct {
	mu     sync.Mutex
	offset float64
	dirty  bool
}

// ScrollOffset implements sequencer.Scroller.
func (p *pendingScroller) ScrollOffset() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.offset
}

// SetScrollOffset implements sequencer.Scroller.
func (p *pendingScroller) SetScrollOffset(offset float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.offset = offset
	p.dirty = true
}

// Sync records the viewport's actual offset after a user-driven scroll, so
// a later smooth scroll starts from where the viewport really is.
func (p *pendingScroller) Sync(offset float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.offset = offset
	p.dirty = false
}

// TakePending returns the latest written offset once per write burst.
func (p *pendingScroller) TakePending() (float64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.dirty {
		return 0, false
	}
	p.dirty = false
	return p.offset, true
}

// =============================================================================
// INPUT SURFACE ADAPTER
// =============================================================================

// inputSurface exposes the text input to the direction tracker: content,
// caret offset in runes, and the box geometry the measurement surrogate
// mirrors. Bubble Tea copies the model value on every update, so the
// surface holds a snapshot the update loop refreshes right before each
// sample rather than a pointer into a moving struct.
type inputSurface struct {
	value string
	caret int
	width int
}

// Snapshot records the input's current content and caret position.
func (s *inputSurface) Snapshot(value string, caret int) {
	s.value = value
	s.caret = caret
}

func (s *inputSurface) Value() string    { return s.value }
func (s *inputSurface) CaretOffset() int { return s.caret }
func (s *inputSurface) Width() int       { return s.width }

// Padding mirrors the input container's single column of horizontal
// padding before the first glyph.
func (s *inputSurface) Padding() int { return 1 }
