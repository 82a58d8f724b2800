package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/teller-lang/teller/internal/cli/output"
)

// NewExecCommand creates the exec command.
func NewExecCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <commands>",
		Short: "Execute one chunk of Teller commands",
		Long: `Execute the given commands as a single input chunk.

A lex or syntax error anywhere in the chunk aborts the whole chunk before
anything executes. Semantic rejections (account not found, insufficient
funds, duplicate account) are reported per statement and do not stop the
statements that follow.`,
		Example: `  # Open an account with an explicit identifier
  teller exec "CREATE FIRSTNAME Ann LASTNAME Lee ACCOUNT AL000001 BALANCE 100"

  # Deposit into it
  teller exec "DEPOSIT AL000001 50"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session := newSession(cmd)
			styles := output.NewStyles(output.IsTerminal(os.Stdout))

			outcomes, err := session.Exec(strings.Join(args, " "))
			if err != nil {
				return err
			}
			printOutcomes(cmd.OutOrStdout(), styles, outcomes)
			return nil
		},
	}
}
