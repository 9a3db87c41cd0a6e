// mascot TUI - an animated chat demo for your terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/mascot-tui/internal/cli"
	"github.com/jeranaias/mascot-tui/internal/config"
	"github.com/jeranaias/mascot-tui/internal/ui/chat"
	"github.com/jeranaias/mascot-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdPlain:
		if err := cli.HandlePlain(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdConfig:
		if err := cli.HandleConfig(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	}
}

// runTUI starts the TUI interface.
func runTUI(args cli.Args) {
	// The demo is pointless against a pipe: bail out before taking over
	// the screen.
	if !cli.IsInteractive() {
		fmt.Fprintln(os.Stderr, "mascot needs an interactive terminal (try a real TTY, or 'mascot help')")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override config.
	if args.Scheme != "" {
		cfg.Character.BucketScheme = args.Scheme
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if args.NoWatch {
		cfg.Character.WatchAssets = false
	}

	theme := styles.NewTheme()
	m := chat.New(cfg, theme)
	defer m.Close()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running mascot: %v\n", err)
		os.Exit(1)
	}
}
