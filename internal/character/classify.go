// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package character

// =============================================================================
// CURSOR CLASSIFICATION
// =============================================================================

// CursorSample is an ephemeral geometric sample: the caret's horizontal
// offset from the input's origin and the visible width of the input. It is
// recomputed on every update and never persisted.
type CursorSample struct {
	HorizontalOffset float64
	ContainerWidth   float64
}

// Normalized returns the caret position as a fraction of the container
// width, approximately in [0, 1]. It can exceed the range at text-wrap
// boundaries; callers tie-break into the nearest edge bucket, which the
// classifiers below do naturally.
//
// A zero-width container is unmeasurable geometry: the sample degrades to
// centered rather than dividing by zero.
func (s CursorSample) Normalized() float64 {
	if s.ContainerWidth <= 0 {
		return 0.5
	}
	return s.HorizontalOffset / s.ContainerWidth
}

// BucketScheme selects how a cursor sample is bucketed into a direction.
type BucketScheme int

const (
	// SchemeFiveBucket is the canonical scheme: five facing directions with
	// thresholds expressed as multiples of the container's half-width.
	SchemeFiveBucket BucketScheme = iota
	// SchemeThreeBucket is the simpler variant: three facing directions
	// with fractional thresholds on the normalized position.
	SchemeThreeBucket
)

// ClassifyThreeBucket maps a sample to one of three directions using fixed
// fractional thresholds: below 0.4 looks left, above 0.6 looks right, and
// the boundaries themselves are inclusive on the down side.
func ClassifyThreeBucket(s CursorSample) Direction {
	n := s.Normalized()
	switch {
	case n < 0.4:
		return DirLeft
	case n > 0.6:
		return DirRight
	default:
		return DirDown
	}
}

// ClassifyFiveBucket maps a sample to one of five directions. Thresholds
// are multiples of the container's half-width (centerX), not of the
// normalized 0-1 range; the resulting bucket widths are intentionally
// asymmetric relative to the three-bucket scheme.
func ClassifyFiveBucket(s CursorSample) Direction {
	if s.ContainerWidth <= 0 {
		return DirDown
	}
	centerX := s.ContainerWidth / 2
	x := s.HorizontalOffset
	switch {
	case x < 0.5*centerX:
		return DirLeft
	case x < 0.85*centerX:
		return DirDownLeft
	case x < 1.15*centerX:
		return DirDown
	case x < 1.5*centerX:
		return DirDownRight
	default:
		return DirRight
	}
}

// Classify applies the configured bucket scheme to a sample.
func Classify(scheme BucketScheme, s CursorSample) Direction {
	if scheme == SchemeThreeBucket {
		return ClassifyThreeBucket(s)
	}
	return ClassifyFiveBucket(s)
}
