// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view for the TUI.
//
// This file contains the Update method and its handlers.
package chat

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/mascot-tui/internal/character"
	"github.com/jeranaias/mascot-tui/internal/sequencer"
)

// =============================================================================
// MAIN UPDATE DISPATCH
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case FrameTickMsg:
		return m.handleFrameTick()

	case SequenceStartedMsg:
		m.statusMsg = "Thinking..."
		return m, frameTickCmd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.Close()
		return m, tea.Quit

	case m.modal.Visible():
		// Modal captures everything; only Close dismisses it.
		if key.Matches(msg, m.keyMap.Close) {
			m.modal.Hide()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Sidebar):
		m.sidebar.Toggle()
		m.setSize(m.width, m.height)
		return m, nil

	case key.Matches(msg, m.keyMap.Details):
		if action := m.log.LastAction(); action != nil && action.Activate != nil {
			action.Activate()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		m.viewport.LineUp(1)
		m.scroller.Sync(float64(m.viewport.YOffset))
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.viewport.LineDown(1)
		m.scroller.Sync(float64(m.viewport.YOffset))
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		return m.handleSubmit()
	}

	// Typing is disabled once the submission is claimed.
	if m.guard.Claimed() {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Every content or caret change feeds the direction tracker. The
	// tracker throttles itself; sampling on each key is intentional.
	m.inputSurface.Snapshot(m.input.Value(), m.input.Position())
	m.tracker.SampleAndUpdate()

	return m, cmd
}

// =============================================================================
// SUBMISSION
// =============================================================================

// handleSubmit claims the session's single submission slot and starts the
// scripted sequence. Later submissions are silently ignored: no log entry,
// no animation, no sequencer.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	if !m.guard.TryClaim() {
		return m, nil
	}

	// The typed text is discarded; the demo logs its fixed line.
	m.input.SetValue("")
	m.input.Blur()
	m.inputSurface.Snapshot("", 0)
	m.tracker.SetDirection(character.DirIdle)

	m.log.AppendUser(sequencer.DemoUserLine)
	m.refreshViewport()

	seq := sequencer.New(sequencer.Config{
		Timings: sequencer.Timings{
			TypeSpeed:   m.cfg.Animation.TypeSpeed(),
			DeleteSpeed: m.cfg.Animation.DeleteSpeed(),
			Hold:        m.cfg.Animation.Hold(),
			Settle:      m.cfg.Animation.Settle(),
			Exit:        m.cfg.Animation.Exit(),
			Scroll:      m.cfg.Animation.Scroll(),
		},
		Thought:  m.thought,
		Mascot:   m.sprite,
		Log:      m.log,
		Scroller: m.scroller,
		OpenView: m.modal.Show,
		OnTransition: func(s sequencer.State) {
			m.seqState.Store(int32(s))
		},
	})
	m.seq = seq
	m.animating = true
	go seq.Run()

	sessionID := m.guard.SessionID()
	return m, func() tea.Msg {
		return SequenceStartedMsg{SessionID: sessionID}
	}
}

// =============================================================================
// FRAME TICKS
// =============================================================================

// handleFrameTick advances the fire-and-forget animations and repaints
// whatever the sequencer goroutine changed since the last frame.
func (m Model) handleFrameTick() (tea.Model, tea.Cmd) {
	if !m.animating {
		return m, nil
	}

	m.sprite.StepFrame()
	m.thought.StepFrame()

	m.refreshViewport()
	if offset, ok := m.scroller.TakePending(); ok {
		m.viewport.SetYOffset(int(offset))
	}

	// The sequence is done once the reply is revealed and the exit
	// transitions have settled.
	if m.revealed() && !m.sprite.Sliding() && !m.thought.Floating() {
		m.animating = false
		m.statusMsg = ""
		m.setSize(m.width, m.height) // reclaim the mascot's rows
		return m, nil
	}
	return m, frameTickCmd()
}
