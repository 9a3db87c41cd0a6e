// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// plain.go - Line-mode rendition of the demo for terminals where the full
// TUI is unwanted. The same sequencer drives it; only the surfaces differ:
// the thought bubble becomes a rewritten stdout line and the conversation
// log becomes printed blocks.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/peterh/liner"

	"github.com/jeranaias/mascot-tui/internal/config"
	"github.com/jeranaias/mascot-tui/internal/sequencer"
	"github.com/jeranaias/mascot-tui/internal/session"
	"github.com/jeranaias/mascot-tui/internal/ui/components"
	"github.com/jeranaias/mascot-tui/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	speakerStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Bold(true)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// PlainCLI provides input history and line editing for plain mode.
type PlainCLI struct {
	line        *liner.State
	historyFile string
}

// NewPlainCLI creates a PlainCLI with input history support.
func NewPlainCLI() *PlainCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	cli := &PlainCLI{
		line:        line,
		historyFile: filepath.Join(configDir, "plain_history"),
	}
	cli.LoadHistory()
	return cli
}

// LoadHistory loads input history from file.
func (c *PlainCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt, with history
// navigation on arrow keys.
func (c *PlainCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists input history with owner-only permissions.
func (c *PlainCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *PlainCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// SEQUENCER SURFACES
// =============================================================================

// lineThought renders the thought bubble as a single stdout line rewritten
// in place. The previous render's width is tracked so shorter text blanks
// the leftovers.
type lineThought struct {
	lastWidth int
}

func (t *lineThought) SetText(text string) {
	line := "(thinking) " + text
	pad := t.lastWidth - runewidth.StringWidth(line)
	if pad < 0 {
		pad = 0
	}
	fmt.Printf("\r%s%s", infoStyle.Render(line), strings.Repeat(" ", pad))
	t.lastWidth = runewidth.StringWidth(line)
}

func (t *lineThought) Show()    {}
func (t *lineThought) FloatUp() {}

func (t *lineThought) Hide() {
	fmt.Printf("\r%s\r", strings.Repeat(" ", t.lastWidth+11))
}

// lineMascot is the character region in plain mode. There is no region to
// animate; both exits are no-ops.
type lineMascot struct{}

func (lineMascot) SlideDown() {}
func (lineMascot) Hide()      {}

// printedEntry is the scroll handle for a printed block. Plain mode has no
// viewport, so the top offset is meaningless and the smooth scroll is
// disabled by passing a nil scroller.
type printedEntry struct{}

func (printedEntry) Top() float64 { return 0 }

// lineLog prints conversation entries as blocks.
type lineLog struct {
	width int
}

func (l *lineLog) Append(who sequencer.Participant, content, avatarPath string) sequencer.EntryHandle {
	speaker := "You"
	if who == sequencer.ParticipantAssistant {
		speaker = "Assistant"
	}
	fmt.Println(speakerStyle.Render(speaker + ":"))
	fmt.Println(components.HighlightFences(content))
	fmt.Println()
	return printedEntry{}
}

func (l *lineLog) AppendAction(label string, activate func()) {
	fmt.Println(infoStyle.Render("[ " + label + " ]  (type 'breakdown' to open)"))
	fmt.Println()
}

// =============================================================================
// PLAIN MODE
// =============================================================================

// HandlePlain runs the demo as a line-oriented session.
func HandlePlain(args Args) error {
	if !IsInteractive() {
		return fmt.Errorf("plain mode needs an interactive terminal")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	input := NewPlainCLI()
	defer input.Close()

	if !args.Quiet {
		fmt.Println(welcomeStyle.Render("mascot (plain mode)"))
		fmt.Println(infoStyle.Render("Type anything and press Enter. 'exit' leaves."))
		fmt.Println()
	}

	guard := session.NewGuard()

	for {
		line, err := input.ReadInput(promptStyle.Render("you> "))
		if err != nil {
			// Ctrl+C or EOF both end the session.
			if err == liner.ErrPromptAborted {
				fmt.Println()
			}
			return nil
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit"):
			return nil
		case strings.EqualFold(line, "breakdown"):
			printBreakdown()
			continue
		}

		if !guard.TryClaim() {
			fmt.Println(warningStyle.Render("The demo only answers once per session."))
			continue
		}

		runPlainSequence(cfg)
	}
}

// runPlainSequence plays the scripted sequence against the line surfaces.
// The typed text was already discarded by the caller; the log shows the
// fixed demo line.
func runPlainSequence(cfg *config.Config) {
	thought := &lineThought{}
	log := &lineLog{width: GetTerminalWidth()}

	log.Append(sequencer.ParticipantUser, sequencer.DemoUserLine, "")

	seq := sequencer.New(sequencer.Config{
		Timings: sequencer.Timings{
			TypeSpeed:   cfg.Animation.TypeSpeed(),
			DeleteSpeed: cfg.Animation.DeleteSpeed(),
			Hold:        cfg.Animation.Hold(),
			Settle:      cfg.Animation.Settle(),
			Exit:        cfg.Animation.Exit(),
			Scroll:      cfg.Animation.Scroll(),
		},
		Thought:  thought,
		Mascot:   lineMascot{},
		Log:      log,
		OpenView: printBreakdown,
	})
	seq.Run()
}

// printBreakdown prints the detail view's survey table.
func printBreakdown() {
	fmt.Println(welcomeStyle.Render("Survey breakdown"))
	for _, p := range components.DemoChartData {
		fmt.Printf("  %-14s %5.0f%%\n", p.Label+" cohort", p.Value)
	}
	fmt.Println()
}
