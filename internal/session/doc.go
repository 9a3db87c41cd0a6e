// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks page-session state for the demo: a session
// identity and the one-shot submission guard that makes the scripted
// conversation fire at most once per session.
package session
