// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sequencer

// =============================================================================
// STATE
// =============================================================================

// State is the sequencer's position in the scripted cinematic. Transitions
// are strictly forward through the stanzas; Revealed is terminal.
type State int

const (
	StateIdle State = iota
	StateTyping
	StateHolding
	StateDeleting
	StateExitAnimating
	StateRevealed
)

// String returns a short state name for status displays and tests.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTyping:
		return "typing"
	case StateHolding:
		return "holding"
	case StateDeleting:
		return "deleting"
	case StateExitAnimating:
		return "exit-animating"
	case StateRevealed:
		return "revealed"
	}
	return "unknown"
}

// =============================================================================
// COLLABORATOR SURFACES
// =============================================================================

// ThoughtSurface is the thought bubble: a text sink with visibility and an
// upward-float exit transition. FloatUp is fire-and-forget; the sequencer
// never awaits it individually.
type ThoughtSurface interface {
	TextSink
	Show()
	Hide()
	FloatUp()
}

// CharacterRegion is the mascot's screen region. SlideDown starts the
// downward exit transition (fire-and-forget); Hide removes the region.
type CharacterRegion interface {
	SlideDown()
	Hide()
}

// Participant identifies who a conversation entry is attributed to.
type Participant int

const (
	ParticipantUser Participant = iota
	ParticipantAssistant
)

// EntryHandle is the opaque handle a conversation log returns for an
// appended entry, used only for scroll targeting.
type EntryHandle interface {
	// Top returns the entry's top edge as a scroll offset in the log.
	Top() float64
}

// ConversationLog is the sink the revealed reply is appended to.
type ConversationLog interface {
	// Append adds an entry and returns its handle. avatarPath may be empty.
	Append(who Participant, content, avatarPath string) EntryHandle

	// AppendAction adds an activatable control below the last entry; the
	// demo uses it to open the auxiliary detail view.
	AppendAction(label string, activate func())
}

// =============================================================================
// SEQUENCER
// =============================================================================

// Sequencer runs the fixed, non-interruptible thinking cinematic exactly
// once. Re-entrancy is the caller's problem: the submission guard must
// prevent a second Run before the first completes, and the sequencer is
// not safe to run concurrently with itself.
type Sequencer struct {
	script  Script
	timings Timings
	clock   Clock

	thought   ThoughtSurface
	character CharacterRegion
	log       ConversationLog
	scroller  Scroller // optional; nil disables the smooth scroll
	openView  func()   // opens the auxiliary detail view

	writer *TypeWriter
	state  State

	// onTransition, when set, observes every state change. The TUI layer
	// uses it to repaint; tests use it to record the path taken.
	onTransition func(State)
}

// Config wires a sequencer to its collaborator surfaces.
type Config struct {
	Script   Script
	Timings  Timings
	Clock    Clock
	Thought  ThoughtSurface
	Mascot   CharacterRegion
	Log      ConversationLog
	Scroller Scroller
	OpenView func()

	// OnTransition observes state changes (optional).
	OnTransition func(State)
}

// New builds a sequencer in the Idle state. Zero-value Script and Timings
// fall back to the compiled-in defaults; a nil Clock falls back to the
// wall clock.
func New(cfg Config) *Sequencer {
	if len(cfg.Script) == 0 {
		cfg.Script = DefaultScript
	}
	if cfg.Timings == (Timings{}) {
		cfg.Timings = DefaultTimings()
	}
	if cfg.Clock == nil {
		cfg.Clock = NewClock()
	}
	s := &Sequencer{
		script:       cfg.Script,
		timings:      cfg.Timings,
		clock:        cfg.Clock,
		thought:      cfg.Thought,
		character:    cfg.Mascot,
		log:          cfg.Log,
		scroller:     cfg.Scroller,
		openView:     cfg.OpenView,
		state:        StateIdle,
		onTransition: cfg.OnTransition,
	}
	s.writer = NewTypeWriter(cfg.Thought, cfg.Clock, cfg.Timings)
	return s
}

// State returns the sequencer's current state.
func (s *Sequencer) State() State {
	return s.state
}

// Stop forwards the teardown signal to the typewriter. The default script
// never calls this; it exists so the surrounding program can interrupt a
// sequence when it is torn down.
func (s *Sequencer) Stop() {
	s.writer.Stop()
}

func (s *Sequencer) transition(next State) {
	s.state = next
	if s.onTransition != nil {
		s.onTransition(next)
	}
}

// Run executes the whole cinematic: show the thought bubble, type each
// stanza, hold it, delete all but the last, then run the exit transitions
// and reveal the fixed reply. Run blocks on its clock; callers start it in
// a goroutine and drive a FakeClock in tests.
func (s *Sequencer) Run() {
	s.thought.Show()

	for i, stanza := range s.script {
		s.transition(StateTyping)
		if !s.writer.Type(stanza) {
			return // torn down mid-type; partial text remains
		}

		s.transition(StateHolding)
		<-s.clock.After(s.timings.Hold)
		if s.writer.Stopped() {
			return
		}

		if i < len(s.script)-1 {
			s.transition(StateDeleting)
			if !s.writer.Delete() {
				return
			}
		}
	}

	// Final stanza stays on screen through the settle delay, then both
	// exit transitions start together and run unawaited.
	<-s.clock.After(s.timings.Settle)
	s.transition(StateExitAnimating)
	s.thought.FloatUp()
	s.character.SlideDown()
	<-s.clock.After(s.timings.Exit)
	s.thought.Hide()
	s.character.Hide()

	s.reveal()
	s.transition(StateRevealed)
}

// reveal appends the fixed assistant reply, scrolls it into view, and adds
// the action control that opens the detail view.
func (s *Sequencer) reveal() {
	handle := s.log.Append(ParticipantAssistant, DemoReply, DemoAvatarPath)
	if s.scroller != nil && handle != nil {
		SmoothScrollTo(s.clock, s.scroller, handle.Top(), s.timings.Scroll)
	}
	s.log.AppendAction(DemoActionLabel, func() {
		if s.openView != nil {
			s.openView()
		}
	})
}
