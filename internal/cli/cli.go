// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for mascot-tui.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdPlain
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	NoWatch bool   // disable live sprite art reload
	Scheme  string // direction bucket scheme override: "three" or "five"

	// Command-specific
	Subcommand string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `mascot - an animated chat demo for your terminal

A self-contained demo: type in the input box and the mascot follows your
caret; press Enter once and it acts out a scripted thinking sequence
before revealing its reply. Nothing is sent anywhere.

Usage:
  mascot                 Start the TUI (default)
  mascot plain           Run the demo in plain line mode (no TUI)
  mascot config [show|path]  Configuration
  mascot version         Show version
  mascot help            Show this help

Flags:
  --plain                Same as the plain command
  --scheme three|five    Direction bucket scheme (default: five)
  --no-watch             Disable live sprite art reload
  --quiet                Suppress the banner in plain mode

Environment:
  MASCOT_THEME           dark, light, or auto
  MASCOT_BUCKET_SCHEME   three or five
  MASCOT_ASSET_DIR       sprite art override directory
`

// Parse parses os.Args into a command and its arguments.
func Parse() (Command, Args) {
	args := Args{}
	rest := []string{}

	for _, arg := range os.Args[1:] {
		switch {
		case arg == "--quiet" || arg == "-q":
			args.Quiet = true
		case arg == "--no-watch":
			args.NoWatch = true
		case arg == "--plain":
			rest = append(rest, "plain")
		case strings.HasPrefix(arg, "--scheme="):
			args.Scheme = strings.TrimPrefix(arg, "--scheme=")
		case arg == "--help" || arg == "-h":
			return CmdHelp, args
		case arg == "--version" || arg == "-v":
			return CmdVersion, args
		default:
			rest = append(rest, arg)
		}
	}

	if len(rest) == 0 {
		return CmdTUI, args
	}

	cmd := rest[0]
	args.Raw = rest[1:]
	if len(args.Raw) > 0 {
		args.Subcommand = args.Raw[0]
	}

	switch cmd {
	case "plain", "chat":
		return CmdPlain, args
	case "config":
		return CmdConfig, args
	case "version":
		return CmdVersion, args
	case "help":
		return CmdHelp, args
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, args
	}
}

// PrintUsage prints the usage text.
func PrintUsage() {
	fmt.Print(usageText)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("mascot %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}
