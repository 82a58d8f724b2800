package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/teller-lang/teller/internal/cli/config"
	"github.com/teller-lang/teller/internal/cli/output"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	ShowAccounts bool
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Execute a Teller script",
		Long: `Execute a script file, or standard input when no file (or "-") is given.

Each non-empty line is one input chunk. Blank lines and lines starting with
'#' are skipped. The first lex or syntax error stops the script and reports
the offending line; semantic rejections are printed and execution continues.`,
		Example: `  # Run a script file
  teller run examples/accounts.tel

  # Pipe a script in, then show the resulting accounts
  cat accounts.tel | teller run --accounts`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			name := "stdin"
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
				name = args[0]
			}

			session := newSession(cmd)
			styles := output.NewStyles(output.IsTerminal(os.Stdout))

			scanner := bufio.NewScanner(in)
			lineNo := 0
			for scanner.Scan() {
				lineNo++
				line := strings.TrimSpace(scanner.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				outcomes, err := session.Exec(line)
				if err != nil {
					return fmt.Errorf("%s:%d: %w", name, lineNo, err)
				}
				printOutcomes(cmd.OutOrStdout(), styles, outcomes)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read script: %w", err)
			}

			if opts.ShowAccounts {
				return renderAccounts(cmd.OutOrStdout(), session.Store(), config.GetCurrentConfig().Format)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.ShowAccounts, "accounts", false, "Render the account table after the script finishes")
	return cmd
}
