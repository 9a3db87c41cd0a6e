// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package character

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/jeranaias/mascot-tui/internal/util"
)

// =============================================================================
// MEASUREMENT SURROGATE
// =============================================================================

// Measurer computes the caret's visual horizontal offset for a given text
// and caret index. The tracker owns one; tests inject fakes.
type Measurer interface {
	// Measure returns the geometric sample for text with the caret at rune
	// index caret. It never fails; unmeasurable geometry yields a sample
	// that classifies as centered.
	Measure(text string, caret int) CursorSample

	// Resize re-synchronizes the surrogate with the input surface's
	// visible width. Called on terminal resize.
	Resize(width int)
}

// Surrogate mirrors the text input's box model (visible width, padding) and
// reproduces its line wrapping to locate the caret. It is the measurement
// surrogate from the tracker's contract: never displayed, never part of any
// rendered view, owned exclusively by the tracker.
type Surrogate struct {
	width   int // visible content width in columns
	padding int // horizontal padding mirrored from the input surface
}

// NewSurrogate builds a surrogate synchronized to the given visible width
// and horizontal padding.
func NewSurrogate(width, padding int) *Surrogate {
	return &Surrogate{width: width, padding: padding}
}

// Resize re-synchronizes the surrogate's width with the input surface.
func (s *Surrogate) Resize(width int) {
	s.width = width
}

// Measure renders text up to the caret into the surrogate's wrap model and
// reads back the horizontal offset of the position marker: the display
// width of the last wrapped line. The offset can equal or slightly exceed
// the container width at wrap boundaries; classification tie-breaks that
// into the nearest edge bucket.
func (s *Surrogate) Measure(text string, caret int) CursorSample {
	content := s.width - 2*s.padding
	if content <= 0 {
		// Unmeasurable geometry: degrade to a centered sample.
		return CursorSample{HorizontalOffset: 0, ContainerWidth: 0}
	}

	prefix := util.SafeSubstring(text, 0, caret)

	// Reproduce the input's wrapping: word wrap first, then a hard wrap so
	// words longer than the line break the way the rendered input breaks
	// them.
	wrapped := wrap.String(wordwrap.String(prefix, content), content)
	lines := strings.Split(wrapped, "\n")
	last := lines[len(lines)-1]

	return CursorSample{
		HorizontalOffset: float64(s.padding + runewidth.StringWidth(last)),
		ContainerWidth:   float64(s.width),
	}
}
