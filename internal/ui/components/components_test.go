// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/mascot-tui/internal/model"
	"github.com/jeranaias/mascot-tui/internal/ui/styles"
)

// =============================================================================
// SPRITE TESTS
// =============================================================================

func TestSpriteDefaultsToIdle(t *testing.T) {
	s := NewSprite(styles.NewTheme())

	if s.Path() != "assets/character/idle.png" {
		t.Errorf("initial path = %q, want idle resource", s.Path())
	}
	if s.View() == "" {
		t.Error("idle sprite should render art")
	}
}

func TestSpriteKeepsUnknownPathButRendersIdleArt(t *testing.T) {
	s := NewSprite(styles.NewTheme())
	idleView := s.View()

	s.SetSprite("assets/character/bogus.png")
	if s.Path() != "assets/character/bogus.png" {
		t.Errorf("path = %q, want the verbatim resource path", s.Path())
	}
	if s.View() != idleView {
		t.Error("unknown resource should render the idle art")
	}
}

func TestSpriteDirectionalArtDiffers(t *testing.T) {
	s := NewSprite(styles.NewTheme())
	idleView := s.View()

	s.SetSprite("assets/character/look-left.png")
	if s.View() == idleView {
		t.Error("look-left art should differ from idle art")
	}
}

func TestSpriteOverride(t *testing.T) {
	s := NewSprite(styles.NewTheme())

	s.SetOverride("assets/character/idle.png", "custom art")
	if !strings.Contains(s.View(), "custom art") {
		t.Error("override art should be rendered")
	}

	s.SetOverride("assets/character/idle.png", "")
	if strings.Contains(s.View(), "custom art") {
		t.Error("cleared override should fall back to built-in art")
	}
}

func TestSpriteSlideDownEventuallyEmpties(t *testing.T) {
	s := NewSprite(styles.NewTheme())

	s.SlideDown()
	if !s.Sliding() {
		t.Fatal("sprite should report sliding")
	}
	for i := 0; i < 600; i++ {
		s.StepFrame()
	}
	if s.View() != "" {
		t.Error("fully slid sprite should render nothing")
	}
}

func TestSpriteHide(t *testing.T) {
	s := NewSprite(styles.NewTheme())
	s.Hide()

	if !s.Hidden() {
		t.Error("sprite should report hidden")
	}
	if s.View() != "" {
		t.Error("hidden sprite should render nothing")
	}
}

// =============================================================================
// THOUGHT BUBBLE TESTS
// =============================================================================

func TestThoughtBubbleVisibility(t *testing.T) {
	b := NewThoughtBubble(styles.NewTheme())

	if b.Visible() || b.View() != "" {
		t.Error("new bubble should be hidden")
	}

	b.Show()
	b.SetText("Thinking")
	if !b.Visible() {
		t.Error("bubble should be visible after Show")
	}
	if !strings.Contains(b.View(), "Thinking") {
		t.Error("bubble view should contain its text")
	}

	b.Hide()
	if b.View() != "" {
		t.Error("hidden bubble should render nothing")
	}
}

func TestThoughtBubbleFloatClipsRows(t *testing.T) {
	b := NewThoughtBubble(styles.NewTheme())
	b.Show()
	b.SetText("floating away")

	full := strings.Count(b.View(), "\n")
	b.FloatUp()
	b.StepFrame()

	if got := strings.Count(b.View(), "\n"); got >= full {
		t.Errorf("floated bubble has %d newlines, want fewer than %d", got, full)
	}

	// Enough frames and the bubble is gone entirely.
	for i := 0; i < 50; i++ {
		b.StepFrame()
	}
	if b.View() != "" {
		t.Error("fully floated bubble should render nothing")
	}
}

// =============================================================================
// SIDEBAR TESTS
// =============================================================================

func TestSidebarToggle(t *testing.T) {
	s := NewSidebar(styles.NewTheme(), true)

	if !s.Open() || s.Width() != sidebarWidth {
		t.Error("sidebar should start open at full width")
	}

	s.Toggle()
	if s.Open() || s.Width() != 0 || s.View() != "" {
		t.Error("collapsed sidebar should occupy no space")
	}

	s.Toggle()
	if !strings.Contains(s.View(), "Chats") {
		t.Error("expanded sidebar should render its title")
	}
}

// =============================================================================
// CHART TESTS
// =============================================================================

func TestChartRendersAllBars(t *testing.T) {
	c := NewChart(styles.NewTheme())
	c.SetWidth(60)

	view := c.View()
	for _, p := range DemoChartData {
		if !strings.Contains(view, p.Label) {
			t.Errorf("chart missing label %q", p.Label)
		}
	}
	if !strings.Contains(view, "68") {
		t.Error("chart should render the Q4 value")
	}
}

func TestChartCachesUntilLayoutChange(t *testing.T) {
	c := NewChart(styles.NewTheme())
	c.SetWidth(60)

	first := c.View()
	if got := c.View(); got != first {
		t.Error("same width should reuse the cached render")
	}

	c.SetWidth(40)
	if got := c.View(); got == first {
		t.Error("width change should re-render the chart")
	}
}

// =============================================================================
// MODAL TESTS
// =============================================================================

func TestDetailModalToggle(t *testing.T) {
	m := NewDetailModal(styles.NewTheme())

	if m.Visible() || m.View(80, 24) != "" {
		t.Error("new modal should be hidden")
	}

	m.Show()
	if !strings.Contains(m.View(80, 24), "Survey breakdown") {
		t.Error("visible modal should render the breakdown")
	}

	m.Hide()
	if m.View(80, 24) != "" {
		t.Error("hidden modal should render nothing")
	}
}

// =============================================================================
// MESSAGE RENDERER TESTS
// =============================================================================

func TestMessageRendererUserAndAssistant(t *testing.T) {
	r := NewMessageRenderer(styles.NewTheme(), 80)

	user := model.NewMessageEntry(model.RoleUser, "hello there", "")
	if !strings.Contains(r.Render(user), "hello there") {
		t.Error("user message content missing from render")
	}

	asst := model.NewMessageEntry(model.RoleAssistant, "a reply", "assets/character/idle.png")
	out := r.Render(asst)
	if !strings.Contains(out, "reply") {
		t.Error("assistant message content missing from render")
	}
	if !strings.Contains(out, "assets/character/idle.png") {
		t.Error("assistant avatar path missing from render")
	}
}

func TestMessageRendererAction(t *testing.T) {
	r := NewMessageRenderer(styles.NewTheme(), 80)

	action := model.NewActionEntry("See full breakdown", func() {})
	if !strings.Contains(r.Render(action), "See full breakdown") {
		t.Error("action label missing from render")
	}
}

// =============================================================================
// CODE BLOCK TESTS
// =============================================================================

func TestHighlightFences(t *testing.T) {
	md := "before\n```python\nprint(1)\n```\nafter"
	out := HighlightFences(md)

	if !strings.Contains(out, "before") || !strings.Contains(out, "after") {
		t.Error("prose around the fence should be preserved")
	}
	if strings.Contains(out, "```") {
		t.Error("fence markers should be consumed")
	}
}

func TestHighlightFences_Unterminated(t *testing.T) {
	md := "text\n```go\nfunc main() {}"
	out := HighlightFences(md)

	if !strings.Contains(out, "```go") {
		t.Error("unterminated fence should be emitted verbatim")
	}
}

func TestHighlightCode_UnknownLanguageFallsBack(t *testing.T) {
	code := "totally plain text"
	if out := HighlightCode(code, "no-such-language"); out == "" {
		t.Error("highlighting should never produce empty output")
	}
}
