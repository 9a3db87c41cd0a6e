// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sequencer

import (
	"math"
	"sync"
	"testing"
	"time"
)

// =============================================================================
// TEST FAKES
// =============================================================================

// fakeThought is an in-memory thought surface.
type fakeThought struct {
	mu       sync.Mutex
	text     string
	texts    []string
	shows    int
	hides    int
	floatUps int
}

func (f *fakeThought) SetText(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = text
	f.texts = append(f.texts, text)
}

func (f *fakeThought) Show()    { f.mu.Lock(); f.shows++; f.mu.Unlock() }
func (f *fakeThought) Hide()    { f.mu.Lock(); f.hides++; f.mu.Unlock() }
func (f *fakeThought) FloatUp() { f.mu.Lock(); f.floatUps++; f.mu.Unlock() }

func (f *fakeThought) Text() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text
}

// fakeRegion is an in-memory character region.
type fakeRegion struct {
	mu     sync.Mutex
	slides int
	hides  int
}

func (f *fakeRegion) SlideDown() { f.mu.Lock(); f.slides++; f.mu.Unlock() }
func (f *fakeRegion) Hide()      { f.mu.Lock(); f.hides++; f.mu.Unlock() }

// fakeHandle reports a fixed top offset.
type fakeHandle struct{ top float64 }

func (h fakeHandle) Top() float64 { return h.top }

// logEntry is one recorded Append call.
type logEntry struct {
	who     Participant
	content string
	avatar  string
}

// fakeLog records appended entries and actions.
type fakeLog struct {
	mu      sync.Mutex
	entries []logEntry
	actions []string
	act     func()
	top     float64
}

func (f *fakeLog) Append(who Participant, content, avatarPath string) EntryHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, logEntry{who, content, avatarPath})
	return fakeHandle{top: f.top}
}

func (f *fakeLog) AppendAction(label string, activate func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, label)
	f.act = activate
}

// fakeScroller records offsets.
type fakeScroller struct {
	mu      sync.Mutex
	offset  float64
	history []float64
}

func (f *fakeScroller) ScrollOffset() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.offset
}

func (f *fakeScroller) SetScrollOffset(offset float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.offset = offset
	f.history = append(f.history, offset)
}

// transitionRecorder collects the state path.
type transitionRecorder struct {
	mu     sync.Mutex
	states []State
}

func (r *transitionRecorder) record(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *transitionRecorder) count(s State) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, st := range r.states {
		if st == s {
			n++
		}
	}
	return n
}

// runToCompletion drives a sequencer on a fake clock until Run returns.
func runToCompletion(t *testing.T, seq *Sequencer, clock *FakeClock) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		seq.Run()
		close(done)
	}()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-done:
			return
		case <-deadline:
			t.Fatal("sequencer did not complete")
		default:
		}
		if clock.BlockUntilWaiters(1) {
			clock.Advance(5 * time.Second)
		}
	}
}

// =============================================================================
// TYPEWRITER TESTS
// =============================================================================

func TestTypeWriter_RevealsOneRuneAtATime(t *testing.T) {
	clock := NewFakeClock()
	sink := &fakeThought{}
	tw := NewTypeWriter(sink, clock, DefaultTimings())

	done := make(chan bool, 1)
	go func() { done <- tw.Type("abc") }()

	for i := 0; i < 3; i++ {
		if !clock.BlockUntilWaiters(1) {
			t.Fatal("typewriter never suspended")
		}
		clock.Advance(50 * time.Millisecond)
	}
	if !<-done {
		t.Fatal("Type was interrupted")
	}

	want := []string{"a", "ab", "abc"}
	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.texts) != len(want) {
		t.Fatalf("sink received %d updates, want %d: %v", len(sink.texts), len(want), sink.texts)
	}
	for i, w := range want {
		if sink.texts[i] != w {
			t.Errorf("update %d = %q, want %q", i, sink.texts[i], w)
		}
	}
}

func TestTypeWriter_DeleteEmptiesSink(t *testing.T) {
	clock := NewFakeClock()
	sink := &fakeThought{}
	tw := NewTypeWriter(sink, clock, DefaultTimings())

	done := make(chan bool, 1)
	go func() {
		tw.Type("hi")
		done <- tw.Delete()
	}()

	// 2 typing units then 2 deleting units.
	for i := 0; i < 4; i++ {
		if !clock.BlockUntilWaiters(1) {
			t.Fatal("typewriter never suspended")
		}
		clock.Advance(time.Second)
	}
	if !<-done {
		t.Fatal("Delete was interrupted")
	}
	if got := sink.Text(); got != "" {
		t.Errorf("sink text = %q, want empty", got)
	}
}

func TestTypeWriter_StopLeavesPartialText(t *testing.T) {
	clock := NewFakeClock()
	sink := &fakeThought{}
	tw := NewTypeWriter(sink, clock, DefaultTimings())

	done := make(chan bool, 1)
	go func() { done <- tw.Type("abcdef") }()

	// Let two units through, then stop while the third is suspended.
	for i := 0; i < 2; i++ {
		if !clock.BlockUntilWaiters(1) {
			t.Fatal("typewriter never suspended")
		}
		clock.Advance(50 * time.Millisecond)
	}
	if !clock.BlockUntilWaiters(1) {
		t.Fatal("typewriter never suspended for third unit")
	}
	tw.Stop()
	clock.Advance(50 * time.Millisecond)

	if <-done {
		t.Fatal("Type should report interruption")
	}
	if got := sink.Text(); got != "ab" {
		t.Errorf("partial text = %q, want %q", got, "ab")
	}
}

// =============================================================================
// SEQUENCER TESTS
// =============================================================================

func newTestSequencer(script Script) (*Sequencer, *FakeClock, *fakeThought, *fakeRegion, *fakeLog, *fakeScroller, *transitionRecorder) {
	clock := NewFakeClock()
	thought := &fakeThought{}
	region := &fakeRegion{}
	log := &fakeLog{top: 100}
	scroller := &fakeScroller{}
	rec := &transitionRecorder{}

	seq := New(Config{
		Script:       script,
		Clock:        clock,
		Thought:      thought,
		Mascot:       region,
		Log:          log,
		Scroller:     scroller,
		OnTransition: rec.record,
	})
	return seq, clock, thought, region, log, scroller, rec
}

func TestSequencer_DeletePhaseCount(t *testing.T) {
	// Three stanzas: stanzas 0 and 1 are deleted, the final one never is.
	seq, clock, _, _, _, _, rec := newTestSequencer(Script{"Thinking...", "Querying...", "Listening..."})

	runToCompletion(t, seq, clock)

	if got := rec.count(StateDeleting); got != 2 {
		t.Errorf("delete phases = %d, want 2", got)
	}
	if got := rec.count(StateTyping); got != 3 {
		t.Errorf("typing phases = %d, want 3", got)
	}
	if seq.State() != StateRevealed {
		t.Errorf("final state = %v, want %v", seq.State(), StateRevealed)
	}
}

func TestSequencer_StateOrderStrictlyForward(t *testing.T) {
	seq, clock, _, _, _, _, rec := newTestSequencer(Script{"one", "two"})

	runToCompletion(t, seq, clock)

	want := []State{
		StateTyping, StateHolding, StateDeleting,
		StateTyping, StateHolding,
		StateExitAnimating, StateRevealed,
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.states) != len(want) {
		t.Fatalf("transition path %v, want %v", rec.states, want)
	}
	for i, w := range want {
		if rec.states[i] != w {
			t.Errorf("transition %d = %v, want %v", i, rec.states[i], w)
		}
	}
}

func TestSequencer_RevealAppendsFixedReply(t *testing.T) {
	seq, clock, thought, region, log, _, _ := newTestSequencer(nil)

	runToCompletion(t, seq, clock)

	log.mu.Lock()
	defer log.mu.Unlock()
	if len(log.entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(log.entries))
	}
	e := log.entries[0]
	if e.who != ParticipantAssistant {
		t.Errorf("participant = %v, want assistant", e.who)
	}
	if e.content != DemoReply {
		t.Errorf("content = %q, want the fixed demo reply", e.content)
	}
	if e.avatar != DemoAvatarPath {
		t.Errorf("avatar = %q, want %q", e.avatar, DemoAvatarPath)
	}
	if len(log.actions) != 1 || log.actions[0] != DemoActionLabel {
		t.Errorf("actions = %v, want [%q]", log.actions, DemoActionLabel)
	}

	// Exit transitions both fired once, then the surfaces were hidden.
	if thought.floatUps != 1 || region.slides != 1 {
		t.Errorf("exit transitions = %d/%d, want 1/1", thought.floatUps, region.slides)
	}
	if thought.hides != 1 || region.hides != 1 {
		t.Errorf("hides = %d/%d, want 1/1", thought.hides, region.hides)
	}
}

func TestSequencer_ScrollEndsExactlyOnTarget(t *testing.T) {
	seq, clock, _, _, _, scroller, _ := newTestSequencer(Script{"only"})

	runToCompletion(t, seq, clock)

	if got := scroller.ScrollOffset(); got != 100 {
		t.Errorf("final scroll offset = %v, want exactly 100", got)
	}
}

func TestSequencer_ActionOpensDetailView(t *testing.T) {
	opened := 0
	clock := NewFakeClock()
	log := &fakeLog{}
	seq := New(Config{
		Script:   Script{"x"},
		Clock:    clock,
		Thought:  &fakeThought{},
		Mascot:   &fakeRegion{},
		Log:      log,
		OpenView: func() { opened++ },
	})

	runToCompletion(t, seq, clock)

	log.mu.Lock()
	act := log.act
	log.mu.Unlock()
	if act == nil {
		t.Fatal("no action control appended")
	}
	act()
	if opened != 1 {
		t.Errorf("detail view opened %d times, want 1", opened)
	}
}

// =============================================================================
// EASING / SCROLL TESTS
// =============================================================================

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 0},
		{0.25, 1 - 0.75*0.75*0.75},
		{0.5, 0.875},
		{1, 1},
	}
	for _, tc := range tests {
		if got := EaseOutCubic(tc.p); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("EaseOutCubic(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestSmoothScrollTo_InterpolatesPerFrame(t *testing.T) {
	clock := NewFakeClock()
	s := &fakeScroller{}

	const (
		target   = 200.0
		duration = 160 * time.Millisecond // 10 frames at 16ms
	)

	done := make(chan struct{})
	go func() {
		SmoothScrollTo(clock, s, target, duration)
		close(done)
	}()

	// Step one frame and verify the interpolated offset matches the
	// cubic ease-out formula at p = 16/160.
	if !clock.BlockUntilWaiters(1) {
		t.Fatal("scroll never suspended")
	}
	clock.Advance(scrollFrameInterval)
	if !clock.BlockUntilWaiters(1) {
		t.Fatal("scroll did not continue")
	}
	p := float64(scrollFrameInterval) / float64(duration)
	want := target * EaseOutCubic(p)
	if got := s.ScrollOffset(); math.Abs(got-want) > 1e-9 {
		t.Errorf("offset after one frame = %v, want %v", got, want)
	}

	// Run out the remaining frames; the final offset is exactly target.
	for i := 0; i < 12; i++ {
		select {
		case <-done:
		default:
			if clock.BlockUntilWaiters(1) {
				clock.Advance(scrollFrameInterval)
			}
		}
	}
	<-done
	if got := s.ScrollOffset(); got != target {
		t.Errorf("final offset = %v, want exactly %v", got, target)
	}
}

func TestSmoothScrollTo_ZeroDurationJumps(t *testing.T) {
	s := &fakeScroller{offset: 5}
	SmoothScrollTo(NewFakeClock(), s, 42, 0)
	if s.ScrollOffset() != 42 {
		t.Errorf("offset = %v, want 42", s.ScrollOffset())
	}
}
