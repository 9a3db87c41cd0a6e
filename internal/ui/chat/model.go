// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view for the TUI.
package chat

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/mascot-tui/internal/character"
	"github.com/jeranaias/mascot-tui/internal/config"
	"github.com/jeranaias/mascot-tui/internal/model"
	"github.com/jeranaias/mascot-tui/internal/sequencer"
	"github.com/jeranaias/mascot-tui/internal/session"
	"github.com/jeranaias/mascot-tui/internal/ui/components"
	"github.com/jeranaias/mascot-tui/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the demo's chat view. It composes the
// mascot, the thought bubble, the conversation viewport, and the input
// area, and owns the two engines behind them: the direction tracker
// (driven synchronously from key events) and the scripted sequencer
// (started once, in its own goroutine, on the first submission).
type Model struct {
	// Styling
	theme *styles.Theme
	cfg   *config.Config

	// Dimensions
	width  int
	height int

	// Session
	guard *session.Guard

	// Conversation
	log      *convLog
	renderer *components.MessageRenderer

	// UI components
	sprite  *components.Sprite
	thought *components.ThoughtBubble
	sidebar *components.Sidebar
	chart   *components.Chart
	modal   *components.DetailModal
	watcher *components.SpriteWatcher

	viewport viewport.Model
	input    textinput.Model
	keyMap   KeyMap

	// Direction tracking
	inputSurface *inputSurface
	tracker      *character.Tracker

	// Scripted sequence
	seq      *sequencer.Sequencer
	seqState *atomic.Int32 // latest sequencer.State, written from its goroutine
	scroller *pendingScroller

	// Frame ticks run only while something animates.
	animating bool

	statusMsg string
}

// New creates the chat view from the loaded configuration.
func New(cfg *config.Config, theme *styles.Theme) Model {
	input := textinput.New()
	input.Placeholder = "Ask me anything..."
	input.Prompt = "> "
	input.CharLimit = 500
	input.Focus()

	vp := viewport.New(80, 20)

	sprite := components.NewSprite(theme)
	sprite.LoadOverrides(cfg.Character.AssetDir)

	var watcher *components.SpriteWatcher
	if cfg.Character.WatchAssets {
		watcher = components.NewSpriteWatcher(sprite, cfg.Character.AssetDir)
	}

	guard := session.NewGuard()

	m := Model{
		theme:    theme,
		cfg:      cfg,
		guard:    guard,
		log:      newConvLog(model.NewConversation(guard.SessionID())),
		renderer: components.NewMessageRenderer(theme, 80),
		sprite:   sprite,
		thought:  components.NewThoughtBubble(theme),
		sidebar:  components.NewSidebar(theme, cfg.UI.SidebarOpen),
		chart:    components.NewChart(theme),
		modal:    components.NewDetailModal(theme),
		watcher:  watcher,
		viewport: vp,
		input:    input,
		keyMap:   DefaultKeyMap(),
		seqState: new(atomic.Int32),
		scroller: &pendingScroller{},
	}

	m.inputSurface = &inputSurface{width: 80}
	m.tracker = character.NewTracker(m.sprite, m.inputSurface,
		character.WithScheme(bucketScheme(cfg.Character.BucketScheme)))
	return m
}

// bucketScheme maps the config string to a classification scheme.
func bucketScheme(name string) character.BucketScheme {
	if name == "three" {
		return character.SchemeThreeBucket
	}
	return character.SchemeFiveBucket
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Close releases background resources (the sprite art watcher).
func (m Model) Close() {
	if m.watcher != nil {
		m.watcher.Close()
	}
}

// sequencerState returns the latest state reported by the sequencer
// goroutine.
func (m Model) sequencerState() sequencer.State {
	return sequencer.State(m.seqState.Load())
}

// revealed reports whether the cinematic has finished.
func (m Model) revealed() bool {
	return m.sequencerState() == sequencer.StateRevealed
}

// mascotActive reports whether the mascot region still occupies layout
// space.
func (m Model) mascotActive() bool {
	return !m.sprite.Hidden()
}

// setSize recomputes the layout after a terminal resize.
func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)

	contentWidth := width - m.sidebar.Width() - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	mascotRows := 0
	if m.mascotActive() {
		mascotRows = 8
	}
	vpHeight := height - mascotRows - 6 // header, input, status bar
	if vpHeight < 3 {
		vpHeight = 3
	}

	m.viewport.Width = contentWidth
	m.viewport.Height = vpHeight
	m.input.Width = contentWidth - 6
	m.sidebar.SetHeight(height - 2)
	m.chart.SetWidth(contentWidth - 2)

	thoughtWidth := contentWidth - 20
	if thoughtWidth < 16 {
		thoughtWidth = 16
	}
	m.thought.SetWidth(thoughtWidth)
	m.renderer.SetWidth(contentWidth)

	m.inputSurface.width = contentWidth - 4
	m.tracker.Resize()

	m.refreshViewport()
}

// refreshViewport re-renders the conversation into the viewport.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.log.Render(m.renderer))
}
