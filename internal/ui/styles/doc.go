// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for mascot-tui:
// adaptive colors, the lipgloss theme for every component, and the easing
// functions backing the exit transitions.
package styles
