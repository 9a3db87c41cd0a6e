// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/mascot-tui/internal/ui/styles"
)

// =============================================================================
// DETAIL MODAL
// =============================================================================

// DetailModal is the auxiliary detail view opened by the revealed action
// control: the full survey breakdown as an overlay. Pure visibility
// toggle; it owns no other state.
type DetailModal struct {
	theme   *styles.Theme
	visible bool
}

// NewDetailModal creates a hidden detail modal.
func NewDetailModal(theme *styles.Theme) *DetailModal {
	return &DetailModal{theme: theme}
}

// Show makes the modal visible.
func (m *DetailModal) Show() { m.visible = true }

// Hide dismisses the modal.
func (m *DetailModal) Hide() { m.visible = false }

// Visible reports whether the modal is shown.
func (m *DetailModal) Visible() bool { return m.visible }

// View renders the modal centered in the given area, or nothing when
// hidden.
func (m *DetailModal) View(width, height int) string {
	if !m.visible {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.theme.ModalTitle.Render("Survey breakdown"))
	sb.WriteString("\n\n")
	for _, p := range DemoChartData {
		sb.WriteString(fmt.Sprintf("%-14s %5.0f%%\n", p.Label+" cohort", p.Value))
	}
	sb.WriteString("\n")
	sb.WriteString(m.theme.ShortcutDesc.Render("esc to close"))

	box := m.theme.ModalBox.Render(sb.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
