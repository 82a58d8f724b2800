// Package commands implements the Teller CLI subcommands.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/teller-lang/teller/internal/cli/config"
	"github.com/teller-lang/teller/pkg/interp"
)

// newSession builds an interpreter session from the command's configuration
// and context logger. Each command invocation owns its session and store;
// nothing is process-global.
func newSession(cmd *cobra.Command) *interp.Session {
	cfg := config.GetCurrentConfig()
	return interp.NewSession(interp.Options{
		Logger: config.GetLogger(cmd.Context()),
		Debug:  cfg.Debug,
	})
}
