// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/mascot-tui/internal/model"
	"github.com/jeranaias/mascot-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE RENDERER
// =============================================================================

// MessageRenderer renders conversation entries for the chat viewport.
// Assistant markdown goes through glamour; user messages render as plain
// bubbles.
type MessageRenderer struct {
	theme    *styles.Theme
	width    int
	markdown *glamour.TermRenderer
}

// NewMessageRenderer creates a renderer for the given content width.
func NewMessageRenderer(theme *styles.Theme, width int) *MessageRenderer {
	r := &MessageRenderer{theme: theme}
	r.SetWidth(width)
	return r
}

// SetWidth updates the render width and rebuilds the markdown renderer's
// word wrap to match.
func (r *MessageRenderer) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	r.width = width

	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-8),
	)
	if err == nil {
		r.markdown = md
	}
}

// Render renders one conversation entry.
func (r *MessageRenderer) Render(e *model.Entry) string {
	switch e.Kind {
	case model.KindAction:
		return r.renderAction(e)
	default:
		return r.renderMessage(e)
	}
}

// RenderAll renders the whole log with separator lines between entries,
// matching the line shape the conversation uses for scroll targets.
func (r *MessageRenderer) RenderAll(c *model.Conversation) string {
	var sb strings.Builder
	for _, e := range c.Entries {
		sb.WriteString(r.Render(e))
		sb.WriteString("\n\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (r *MessageRenderer) renderMessage(e *model.Entry) string {
	header := r.theme.HeaderSubtitle.Render(e.Role.DisplayName())

	switch e.Role {
	case model.RoleUser:
		return header + "\n" + r.theme.UserBubble.Width(r.width-8).Render(e.Content)
	default:
		content := e.Content
		if r.markdown != nil {
			if out, err := r.markdown.Render(content); err == nil {
				content = strings.TrimRight(out, "\n")
			}
		} else {
			// No markdown renderer (degraded terminal): still highlight
			// fenced code blocks.
			content = HighlightFences(content)
		}
		if e.AvatarPath != "" {
			header = r.theme.HeaderSubtitle.Render(e.Role.DisplayName() + "  [" + e.AvatarPath + "]")
		}
		return header + "\n" + r.theme.AssistantBubble.Width(r.width-8).Render(content)
	}
}

func (r *MessageRenderer) renderAction(e *model.Entry) string {
	return r.theme.ActionControl.Render("[ " + e.Content + " ]")
}
