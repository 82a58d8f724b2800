package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/teller-lang/teller/internal/cli/config"
	"github.com/teller-lang/teller/internal/cli/output"
	"github.com/teller-lang/teller/pkg/interp"
	"github.com/teller-lang/teller/pkg/token"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Teller session",
		Long: `Start an interactive session against a fresh in-memory account store.

The store lives for the session and is dropped on exit; nothing persists.
Type .help inside the session for the available commands.`,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cfg := config.GetCurrentConfig()
	session := newSession(cmd)
	styles := output.NewStyles(output.IsTerminal(os.Stdout))

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), styles.Banner.Render("Teller REPL"))
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), styles.Muted.Render("Type .help for commands, .quit to exit"))
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(cmd, session, styles, line, cfg.Format); quit {
				break
			}
			continue
		}

		outcomes, err := session.Exec(line)
		if err != nil {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), styles.Error.Render(err.Error()))
			continue
		}
		printOutcomes(cmd.OutOrStdout(), styles, outcomes)
	}

	return nil
}

// handleDotCommand executes a REPL meta-command. It returns true when the
// session should end.
func handleDotCommand(cmd *cobra.Command, session *interp.Session, styles *output.Styles, line, format string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(cmd.OutOrStdout())

	case ".accounts":
		if err := renderAccounts(cmd.OutOrStdout(), session.Store(), format); err != nil {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), styles.Error.Render(err.Error()))
		}

	case ".debug":
		switch {
		case len(parts) < 2:
			session.SetDebug(!session.Debug())
		case parts[1] == "on":
			session.SetDebug(true)
		case parts[1] == "off":
			session.SetDebug(false)
		default:
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Usage: .debug [on|off]")
			return false
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "debug %s\n", onOff(session.Debug()))

	case ".clear":
		fmt.Print("\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .accounts       List all accounts
  .debug [on|off] Toggle token/statement debug logging
  .clear          Clear the screen
  .quit / .exit   Exit the REPL

Language:
  CREATE FIRSTNAME <first> LASTNAME <last> [ACCOUNT <id>] [BALANCE <amount>]
  DEPOSIT <account> <amount>
  WITHDRAW <account> <amount>
  BALANCE <account>

Tips:
  - Submit one statement per line; a CREATE consumes the rest of its line
  - Use arrow keys to navigate history
  - Tab completion works for keywords
`
	_, _ = fmt.Fprintln(w, help)
}

// newREPLCompleter creates a readline completer for keywords and
// dot-commands.
func newREPLCompleter() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, kw := range token.Keywords {
		items = append(items, readline.PcItem(kw))
	}
	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".accounts"),
		readline.PcItem(".debug"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
	return readline.NewPrefixCompleter(items...)
}
