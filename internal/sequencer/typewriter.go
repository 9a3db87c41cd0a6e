// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sequencer

import (
	"sync/atomic"
)

// TextSink receives the typewriter's progressively revealed text. The
// thought bubble implements it in the TUI; tests use an in-memory fake.
type TextSink interface {
	SetText(text string)
}

// =============================================================================
// TYPEWRITER
// =============================================================================

// TypeWriter reveals and deletes text one rune at a time against a
// TextSink, suspending on the clock between units. A sequencer owns one
// TypeWriter per invocation and discards it when the sequence completes.
type TypeWriter struct {
	sink    TextSink
	clock   Clock
	timings Timings

	// active is the stop signal. Stop flips it false; the current Type or
	// Delete loop finishes its in-flight unit and goes no further, leaving
	// partial text in place. The default script never calls Stop; it
	// exists so a surrounding page teardown can interrupt the writer.
	active atomic.Bool

	current []rune
}

// NewTypeWriter builds a typewriter over the given sink.
func NewTypeWriter(sink TextSink, clock Clock, timings Timings) *TypeWriter {
	tw := &TypeWriter{
		sink:    sink,
		clock:   clock,
		timings: timings,
	}
	tw.active.Store(true)
	return tw
}

// Stop signals the typewriter to stop after the unit in flight. Partial
// text remains on the sink.
func (tw *TypeWriter) Stop() {
	tw.active.Store(false)
}

// Stopped reports whether the stop signal has fired.
func (tw *TypeWriter) Stopped() bool {
	return !tw.active.Load()
}

// Text returns the text currently shown on the sink.
func (tw *TypeWriter) Text() string {
	return string(tw.current)
}

// Type reveals text one rune at a time at the typing speed. It returns
// false if the stop signal interrupted the reveal.
func (tw *TypeWriter) Type(text string) bool {
	runes := []rune(text)
	tw.current = tw.current[:0]
	for i := range runes {
		if tw.Stopped() {
			return false
		}
		<-tw.clock.After(tw.timings.TypeSpeed)
		if tw.Stopped() {
			return false
		}
		tw.current = runes[:i+1]
		tw.sink.SetText(string(tw.current))
	}
	return true
}

// Delete removes one rune from the end at the deleting speed until the
// sink is empty. It returns false if the stop signal interrupted it.
func (tw *TypeWriter) Delete() bool {
	for len(tw.current) > 0 {
		if tw.Stopped() {
			return false
		}
		<-tw.clock.After(tw.timings.DeleteSpeed)
		if tw.Stopped() {
			return false
		}
		tw.current = tw.current[:len(tw.current)-1]
		tw.sink.SetText(string(tw.current))
	}
	return true
}
