// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view for the TUI.
//
// This file contains the View method and its layout helpers.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// MAIN VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.modal.Visible() {
		return m.modal.View(m.width, m.height)
	}

	var column []string
	column = append(column, m.renderHeader())

	if m.mascotActive() {
		column = append(column, m.renderMascotRegion())
	}

	column = append(column, m.viewport.View())

	if m.revealed() {
		column = append(column, m.chart.View())
	}

	column = append(column, m.renderInput())
	column = append(column, m.renderStatusBar())

	main := lipgloss.JoinVertical(lipgloss.Left, column...)

	if m.sidebar.Open() {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), main)
	}
	return main
}

// =============================================================================
// REGIONS
// =============================================================================

func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("Mascot Chat")
	subtitle := m.theme.HeaderSubtitle.Render("demo")
	return m.theme.Header.Width(m.contentWidth()).Render(title + "  " + subtitle)
}

// renderMascotRegion places the thought bubble beside the mascot while
// both are active. Either side may render empty mid-transition.
func (m Model) renderMascotRegion() string {
	sprite := m.sprite.View()
	thought := m.thought.View()

	if thought == "" {
		return sprite
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, sprite, "  ", thought)
}

func (m Model) renderInput() string {
	if m.guard.Claimed() {
		label := "Watching the demo..."
		if m.revealed() {
			label = "Demo complete. Ctrl+O reopens the breakdown."
		}
		return m.theme.InputContainer.Width(m.contentWidth()).
			Render(m.theme.InputDisabled.Render(label))
	}
	return m.theme.InputContainer.Width(m.contentWidth()).Render(m.input.View())
}

func (m Model) renderStatusBar() string {
	shortcuts := []string{
		m.shortcut("Enter", "send"),
		m.shortcut("C-b", "sidebar"),
		m.shortcut("C-c", "quit"),
	}
	if m.revealed() {
		shortcuts = append(shortcuts, m.shortcut("C-o", "details"))
	}

	bar := strings.Join(shortcuts, "  ")
	if m.statusMsg != "" {
		bar = m.theme.ShortcutDesc.Render(m.statusMsg) + "  " + bar
	}
	return m.theme.StatusBar.Width(m.contentWidth()).Render(bar)
}

func (m Model) shortcut(keyLabel, desc string) string {
	return m.theme.ShortcutKey.Render(keyLabel) + " " + m.theme.ShortcutDesc.Render(desc)
}

// contentWidth is the width of the main column next to the sidebar.
func (m Model) contentWidth() int {
	w := m.width - m.sidebar.Width() - 2
	if w < 20 {
		w = 20
	}
	return w
}
