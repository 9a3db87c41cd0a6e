// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package character

import (
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// SURFACES
// =============================================================================

// SpriteSurface is any displayable surface with a settable sprite source.
// The tracker writes a resource path string whenever the direction changes.
type SpriteSurface interface {
	SetSprite(path string)
}

// TextSurface is the text input being tracked. The tracker only ever reads
// from it: current content, caret offset in runes, and visible geometry.
type TextSurface interface {
	Value() string
	CaretOffset() int
	Width() int
	Padding() int
}

// =============================================================================
// TRACKER
// =============================================================================

// sampleInterval is the minimum time between successful samples. This is a
// rate limit, not a debounce: a sample arriving inside the window is
// dropped, not deferred.
const sampleInterval = 50 * time.Millisecond

// Tracker maps the caret's visual position within the text surface to a
// facing direction and notifies the sprite surface exactly when the
// direction changes. It owns its throttle state and its measurement
// surrogate; the current direction is mutated only from its own event
// handlers.
//
// The tracker is a background UX embellishment: no code path in it returns
// an error or panics, because it must never break input handling.
type Tracker struct {
	sprite   SpriteSurface
	input    TextSurface
	measurer Measurer
	scheme   BucketScheme

	current Direction
	limiter *rate.Limiter
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithScheme selects the bucket scheme (default: five-bucket).
func WithScheme(scheme BucketScheme) Option {
	return func(t *Tracker) { t.scheme = scheme }
}

// WithMeasurer injects a measurement function, replacing the built-in
// surrogate. Used by tests to classify without a real rendering surface.
func WithMeasurer(m Measurer) Option {
	return func(t *Tracker) { t.measurer = m }
}

// NewTracker builds a tracker for the given sprite and text surfaces and
// attaches a measurement surrogate synchronized to the input's box model.
// The initial direction is idle; the initial sprite is applied immediately.
func NewTracker(sprite SpriteSurface, input TextSurface, opts ...Option) *Tracker {
	t := &Tracker{
		sprite:  sprite,
		input:   input,
		scheme:  SchemeFiveBucket,
		current: DirIdle,
		limiter: rate.NewLimiter(rate.Every(sampleInterval), 1),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.measurer == nil {
		t.measurer = NewSurrogate(input.Width(), input.Padding())
	}
	t.sprite.SetSprite(t.current.SpritePath())
	return t
}

// Current returns the current facing direction.
func (t *Tracker) Current() Direction {
	return t.current
}

// Resize re-synchronizes the measurement surrogate with the input
// surface's geometry. Called when the layout changes.
func (t *Tracker) Resize() {
	t.measurer.Resize(t.input.Width())
}

// SampleAndUpdate recomputes the facing direction from the current caret
// position. Invoked on input, caret-click, and key-release events.
//
// Samples inside the 50ms window of the previous successful update are
// dropped. Empty input forces idle regardless of the prior direction.
func (t *Tracker) SampleAndUpdate() {
	if !t.limiter.Allow() {
		return
	}

	text := t.input.Value()
	if text == "" {
		t.SetDirection(DirIdle)
		return
	}

	sample := t.measurer.Measure(text, t.input.CaretOffset())
	t.SetDirection(Classify(t.scheme, sample))
}

// SetDirection updates the current direction and fires the sprite-change
// side effect. Redundant re-renders are suppressed: setting the direction
// it already has is a no-op.
func (t *Tracker) SetDirection(d Direction) {
	if d == t.current {
		return
	}
	t.current = d
	t.sprite.SetSprite(d.SpritePath())
}
