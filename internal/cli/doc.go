// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the command-line surface around the demo: flag
// parsing, terminal detection, the config subcommands, and the plain
// line-oriented rendition of the scripted sequence.
package cli
