// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sequencer

import "time"

// =============================================================================
// SMOOTH SCROLL
// =============================================================================

// Scroller is a scrollable surface with a settable offset. The conversation
// viewport implements it.
type Scroller interface {
	ScrollOffset() float64
	SetScrollOffset(offset float64)
}

// scrollFrameInterval approximates one animation frame.
const scrollFrameInterval = 16 * time.Millisecond

// EaseOutCubic maps progress p in [0,1] to 1-(1-p)^3: fast start,
// decelerating to an exact stop.
func EaseOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// SmoothScrollTo interpolates the scroller's offset from its current value
// to target over the given duration, recomputing every animation frame
// with cubic ease-out. At the end the offset equals target exactly.
func SmoothScrollTo(clock Clock, s Scroller, target float64, duration time.Duration) {
	start := s.ScrollOffset()
	if duration <= 0 || start == target {
		s.SetScrollOffset(target)
		return
	}

	begin := clock.Now()
	for {
		<-clock.After(scrollFrameInterval)
		elapsed := clock.Now().Sub(begin)
		p := float64(elapsed) / float64(duration)
		if p >= 1 {
			s.SetScrollOffset(target)
			return
		}
		s.SetScrollOffset(start + (target-start)*EaseOutCubic(p))
	}
}
