package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	inputtypes "tokengrip/internal/ui/input/types"
	"tokengrip/internal/ui/state"
)

// HelpEntries lists the key bindings shown on the help screen
func HelpEntries(keys inputtypes.KeyMap) []state.HelpEntry {
	entries := keys.Entries()
	out := make([]state.HelpEntry, 0, len(entries)+3)
	for _, e := range entries {
		out = append(out, state.HelpEntry{Keys: e[0], Description: e[1]})
	}
	// text input bindings are not part of the normal key map
	out = append(out,
		state.HelpEntry{Keys: "enter", Description: "apply edited token or secret"},
		state.HelpEntry{Keys: "esc", Description: "leave edit mode"},
		state.HelpEntry{Keys: "b64:<secret>", Description: "secret given as base64"},
	)
	return out
}

// renderHelpContent renders the key bindings as plain text for the pager
func renderHelpContent(entries []state.HelpEntry) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Keys))
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("tokengrip Help"))
	help.WriteString("\n")
	for _, e := range entries {
		help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-*s", width, e.Keys)), e.Description))
	}
	return help.String()
}

// Pager shows long content outside the Bubble Tea screen
type Pager interface {
	Show(content string) error
}

// PagerOps runs the ov pager over the program's terminal
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program whose terminal the pager borrows
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show shows content using ov pager
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("failed to release terminal: %w", err)
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
