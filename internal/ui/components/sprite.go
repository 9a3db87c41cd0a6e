// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/harmonica"

	"github.com/jeranaias/mascot-tui/internal/ui/styles"
)

// =============================================================================
// BUILT-IN SPRITE ART
// =============================================================================

// Sprite art is keyed by the sprite resource path. The resource naming
// scheme (assets/character/<direction>.png) is fixed; the art shown for a
// resource can be overridden by a .txt file next to where the .png would
// live (see Watcher).
var builtinArt = map[string]string{
	"assets/character/idle.png": `
  /\_/\
 ( o.o )
  > ^ <
 /|   |\
  |___|`,
	"assets/character/look-left.png": `
  /\_/\
 (o.o  )
  > ^ <
 /|   |\
  |___|`,
	"assets/character/look-down-left.png": `
  /\_/\
 (o_,  )
  > ^ <
 /|   |\
  |___|`,
	"assets/character/look-down.png": `
  /\_/\
 ( -.- )
  > ^ <
 /|   |\
  |___|`,
	"assets/character/look-down-right.png": `
  /\_/\
 (  ,_o)
  > ^ <
 /|   |\
  |___|`,
	"assets/character/look-right.png": `
  /\_/\
 (  o.o)
  > ^ <
 /|   |\
  |___|`,
}

// spriteFPS is the frame rate the exit spring is stepped at.
const spriteFPS = 30

// =============================================================================
// SPRITE COMPONENT
// =============================================================================

// Sprite is the mascot's displayable surface. It satisfies the tracker's
// sprite contract (SetSprite with a resource path) and the sequencer's
// character region contract (SlideDown, Hide).
//
// SetSprite is called from the Bubble Tea loop; SlideDown and Hide are
// called from the sequencer goroutine. All state is mutex-guarded.
type Sprite struct {
	mu sync.Mutex

	theme *styles.Theme

	// Current sprite resource path and the art overrides loaded from disk.
	path      string
	overrides map[string]string

	// Exit animation: a spring drives the vertical offset once SlideDown
	// fires. The spring is stepped on frame ticks from the update loop.
	sliding bool
	hidden  bool
	spring  harmonica.Spring
	offset  float64 // rows slid down so far
	vel     float64
	target  float64
}

// NewSprite creates the mascot surface showing the idle sprite.
func NewSprite(theme *styles.Theme) *Sprite {
	return &Sprite{
		theme:     theme,
		path:      "assets/character/idle.png",
		overrides: make(map[string]string),
		spring:    harmonica.NewSpring(harmonica.FPS(spriteFPS), 4.0, 0.9),
	}
}

// SetSprite sets the current sprite resource path. Unknown paths render as
// the idle art; the path itself is kept verbatim.
func (s *Sprite) SetSprite(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
}

// Path returns the current sprite resource path.
func (s *Sprite) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// SetOverride installs (or removes, when art is empty) on-disk art for a
// sprite resource path.
func (s *Sprite) SetOverride(path, art string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if art == "" {
		delete(s.overrides, path)
		return
	}
	s.overrides[path] = art
}

// LoadOverrides scans assetDir/character for *.txt art files and installs
// them as overrides for the matching sprite resources. Missing directories
// are fine; the built-in art covers everything.
func (s *Sprite) LoadOverrides(assetDir string) {
	dir := filepath.Join(assetDir, "character")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".txt")
		s.SetOverride("assets/character/"+name+".png", string(data))
	}
}

// =============================================================================
// EXIT ANIMATION
// =============================================================================

// SlideDown starts the downward exit transition. Fire-and-forget: the
// spring runs on subsequent frame ticks.
func (s *Sprite) SlideDown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sliding {
		return
	}
	s.sliding = true
	s.target = float64(s.artHeightLocked() + 1)
}

// Hide removes the mascot region entirely.
func (s *Sprite) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hidden = true
}

// Hidden reports whether the region has been removed.
func (s *Sprite) Hidden() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hidden
}

// Sliding reports whether the exit spring is active, so the update loop
// knows to keep ticking frames.
func (s *Sprite) Sliding() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sliding && !s.hidden
}

// StepFrame advances the exit spring by one frame.
func (s *Sprite) StepFrame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.sliding || s.hidden {
		return
	}
	s.offset, s.vel = s.spring.Update(s.offset, s.vel, s.target)
}

// =============================================================================
// RENDERING
// =============================================================================

// art resolves the current resource path to displayable art.
func (s *Sprite) artLocked() string {
	if art, ok := s.overrides[s.path]; ok {
		return art
	}
	if art, ok := builtinArt[s.path]; ok {
		return art
	}
	return builtinArt["assets/character/idle.png"]
}

func (s *Sprite) artHeightLocked() int {
	return strings.Count(strings.TrimPrefix(s.artLocked(), "\n"), "\n") + 1
}

// View renders the mascot, applying the exit slide by dropping rows off
// the bottom and padding the top, so the art appears to sink out of its
// region.
func (s *Sprite) View() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hidden {
		return ""
	}

	art := strings.TrimPrefix(s.artLocked(), "\n")
	lines := strings.Split(art, "\n")

	drop := int(s.offset)
	if drop >= len(lines) {
		return ""
	}
	if drop > 0 {
		kept := lines[:len(lines)-drop]
		pad := make([]string, drop)
		lines = append(pad, kept...)
	}

	return s.theme.Mascot.Render(strings.Join(lines, "\n"))
}
