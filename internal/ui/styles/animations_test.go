// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	funcs := map[string]EasingFunc{
		"Linear":   EaseLinear,
		"InQuad":   EaseInQuad,
		"OutQuad":  EaseOutQuad,
		"OutCubic": EaseOutCubic,
	}

	for name, f := range funcs {
		t.Run(name, func(t *testing.T) {
			if got := f(0); math.Abs(got) > 1e-12 {
				t.Errorf("%s(0) = %v, want 0", name, got)
			}
			if got := f(1); math.Abs(got-1) > 1e-12 {
				t.Errorf("%s(1) = %v, want 1", name, got)
			}
		})
	}
}

func TestEaseOutCubicMidpoint(t *testing.T) {
	if got := EaseOutCubic(0.5); math.Abs(got-0.875) > 1e-12 {
		t.Errorf("EaseOutCubic(0.5) = %v, want 0.875", got)
	}
}

func TestEasingMonotonic(t *testing.T) {
	const steps = 100
	prev := -1.0
	for i := 0; i <= steps; i++ {
		v := EaseOutCubic(float64(i) / steps)
		if v < prev {
			t.Fatalf("EaseOutCubic not monotonic at step %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}
