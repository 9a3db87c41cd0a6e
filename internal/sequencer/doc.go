// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sequencer runs the demo's scripted thinking cinematic: type each
// thought stanza into the bubble, hold it, delete it, and after the last
// stanza run the exit transitions and reveal the fixed reply.
//
// The sequencer blocks on a Clock abstraction and writes only through
// small collaborator interfaces, so the TUI drives it in a goroutine with
// the wall clock while tests drive it deterministically with a FakeClock.
package sequencer
