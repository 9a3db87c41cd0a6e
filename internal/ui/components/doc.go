// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the UI components for mascot-tui: the mascot
// sprite, the thought bubble, the sidebar, the statistics chart, the detail
// modal, and the conversation message renderer.
//
// Components that the scripted sequencer writes to from its own goroutine
// (the sprite, the thought bubble) guard their state with a mutex; the
// Bubble Tea loop only ever reads through accessor methods.
package components
