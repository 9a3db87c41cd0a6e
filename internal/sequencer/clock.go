// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sequencer drives the scripted "AI thinking" cinematic: typewriter
// reveal and deletion of thought stanzas, timed holds, exit transitions,
// and the final conversation reveal. The whole sequence is one logical
// coroutine; every suspension point is a timed wait on the Clock.
package sequencer

import (
	"sort"
	"sync"
	"time"
)

// =============================================================================
// CLOCK ABSTRACTION
// =============================================================================

// Clock is the scheduler the sequencer suspends on. Production code uses
// the real clock; tests fast-forward a fake one instead of sleeping.
type Clock interface {
	// After returns a channel that delivers the current time once d has
	// elapsed.
	After(d time.Duration) <-chan time.Time

	// Now returns the current time.
	Now() time.Time
}

// realClock delegates to the time package.
type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
func (realClock) Now() time.Time                         { return time.Now() }

// NewClock returns the real wall clock.
func NewClock() Clock {
	return realClock{}
}

// =============================================================================
// FAKE CLOCK (test support)
// =============================================================================

// fakeTimer is one pending After call on a FakeClock.
type fakeTimer struct {
	due time.Time
	ch  chan time.Time
}

// FakeClock is a manually advanced Clock. Waiters registered through After
// fire when Advance moves the simulated time past their deadline. It lives
// in the package proper (not a _test file) so the TUI layer's tests can
// drive a sequencer too.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	pending []*fakeTimer
}

// NewFakeClock creates a fake clock starting at an arbitrary fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Unix(1700000000, 0)}
}

// Now returns the simulated time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// After registers a waiter due at now+d.
func (c *FakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTimer{due: c.now.Add(d), ch: make(chan time.Time, 1)}
	if d <= 0 {
		t.ch <- c.now
		return t.ch
	}
	c.pending = append(c.pending, t)
	return t.ch
}

// Advance moves the simulated time forward and fires every waiter whose
// deadline has passed, in deadline order.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now

	var due, rest []*fakeTimer
	for _, t := range c.pending {
		if !t.due.After(now) {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	c.pending = rest
	sort.Slice(due, func(i, j int) bool { return due[i].due.Before(due[j].due) })
	c.mu.Unlock()

	for _, t := range due {
		t.ch <- now
	}
}

// Waiters returns the number of pending After calls. Tests use this to
// synchronize with a sequencer goroutine before advancing.
func (c *FakeClock) Waiters() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// BlockUntilWaiters busy-waits (with a real-time cap) until at least n
// waiters are pending. Returns false if the cap elapses first.
func (c *FakeClock) BlockUntilWaiters(n int) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.Waiters() >= n {
			return true
		}
		time.Sleep(100 * time.Microsecond)
	}
	return false
}
