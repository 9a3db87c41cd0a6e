// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/mascot-tui/internal/ui/styles"
	"github.com/jeranaias/mascot-tui/internal/util"
)

// =============================================================================
// SIDEBAR
// =============================================================================

// sidebarWidth is the expanded sidebar's column width.
const sidebarWidth = 22

// Sidebar is the collapsible chat-list panel. The demo ships a fixed set
// of placeholder chats; only visibility is real state.
type Sidebar struct {
	theme    *styles.Theme
	open     bool
	height   int
	items    []string
	selected int
}

// NewSidebar creates the sidebar with the demo's placeholder entries.
func NewSidebar(theme *styles.Theme, open bool) *Sidebar {
	return &Sidebar{
		theme: theme,
		open:  open,
		items: []string{
			"Survey results",
			"Quarterly review",
			"Layout feedback",
			"Archived chats",
		},
	}
}

// Toggle flips the sidebar open or closed.
func (s *Sidebar) Toggle() {
	s.open = !s.open
}

// Open reports whether the sidebar is expanded.
func (s *Sidebar) Open() bool {
	return s.open
}

// Width returns the columns the sidebar currently occupies.
func (s *Sidebar) Width() int {
	if !s.open {
		return 0
	}
	return sidebarWidth
}

// SetHeight sets the sidebar's render height.
func (s *Sidebar) SetHeight(height int) {
	s.height = height
}

// View renders the sidebar, or nothing when collapsed.
func (s *Sidebar) View() string {
	if !s.open {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(s.theme.SidebarTitle.Render("Chats"))
	sb.WriteString("\n\n")
	for i, item := range s.items {
		label := util.TruncateWidth(item, sidebarWidth-4)
		if i == s.selected {
			sb.WriteString(s.theme.SidebarSelected.Render(" " + label + " "))
		} else {
			sb.WriteString(s.theme.SidebarItem.Render(" " + label))
		}
		sb.WriteString("\n")
	}

	return s.theme.Sidebar.
		Width(sidebarWidth - 2).
		Height(s.height).
		Render(sb.String())
}
