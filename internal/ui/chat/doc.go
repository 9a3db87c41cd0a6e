// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view for the TUI.
//
// The view composes two independent engines around a Bubble Tea model:
//
//   - The direction tracker (internal/character) runs synchronously on key
//     events and points the mascot at the caret.
//   - The scripted sequencer (internal/sequencer) runs once, in its own
//     goroutine, after the single allowed submission. It writes to
//     mutex-guarded surfaces (the sprite, the thought bubble, the
//     conversation log, the scroll adapter); the update loop repaints
//     from them on ~33ms frame ticks while anything animates.
//
// The submission guard (internal/session) makes the demo single-shot:
// the first Enter claims the slot, disables the input, and starts the
// sequence; every later Enter is ignored.
package chat
