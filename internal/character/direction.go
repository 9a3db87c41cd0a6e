// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package character implements the animated mascot: a discrete facing
// direction derived from the caret position of a text input, and the sprite
// side effect that keeps the rendered character in sync with it.
package character

// =============================================================================
// DIRECTION
// =============================================================================

// Direction is the discrete facing state of the mascot. Exactly one
// direction is current at any time; the rendered sprite always corresponds
// to it.
type Direction int

const (
	DirIdle      Direction = iota // No input, or nothing to track
	DirLeft                       // Caret in the left region
	DirDownLeft                   // Caret left of center (5-bucket only)
	DirDown                       // Caret near center
	DirDownRight                  // Caret right of center (5-bucket only)
	DirRight                      // Caret in the right region
)

// spriteDir is the on-disk directory all character sprites live in. The
// naming scheme (assets/character/<direction>.png) is the only wire format
// in this system and must be preserved exactly for asset compatibility.
const spriteDir = "assets/character/"

// String returns the canonical direction name used in sprite file names.
func (d Direction) String() string {
	switch d {
	case DirIdle:
		return "idle"
	case DirLeft:
		return "look-left"
	case DirDownLeft:
		return "look-down-left"
	case DirDown:
		return "look-down"
	case DirDownRight:
		return "look-down-right"
	case DirRight:
		return "look-right"
	}
	return "idle"
}

// Valid reports whether d is one of the recognized directions.
func (d Direction) Valid() bool {
	return d >= DirIdle && d <= DirRight
}

// SpritePath resolves a direction to its sprite resource path. Idle has the
// distinguished idle.png; every other valid direction maps to
// "<direction>.png". Anything outside the recognized set silently falls
// back to the idle resource - this never errors.
func (d Direction) SpritePath() string {
	if !d.Valid() {
		return spriteDir + "idle.png"
	}
	return spriteDir + d.String() + ".png"
}
