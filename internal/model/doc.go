// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the demo conversation.
//
// The conversation here is a fixed, in-memory log: there is no backend and
// nothing is persisted across runs. The types still carry identity and
// timestamps so the UI can attribute, order, and scroll-target entries.
//
// # Key Types
//
//   - Conversation: ordered log of entries for one session
//   - Entry: a single attributed message or action control
//   - Role: entry attribution (user, assistant)
package model
