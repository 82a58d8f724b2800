// Package output holds terminal styling for the Teller CLI.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles groups the lipgloss styles used by the CLI.
type Styles struct {
	Banner  lipgloss.Style // REPL welcome banner
	Success lipgloss.Style // successful outcome lines
	Notice  lipgloss.Style // rejected-but-non-fatal outcome lines
	Error   lipgloss.Style // lex/parse error lines
	Muted   lipgloss.Style // hints and secondary text
}

// NewStyles returns the CLI styles. With styled false every style is a
// no-op passthrough, for piped output and tests.
func NewStyles(styled bool) *Styles {
	if !styled {
		return &Styles{}
	}
	return &Styles{
		Banner:  lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
