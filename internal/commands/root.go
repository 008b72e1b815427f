package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerview/ledgerview/internal/buildinfo"
	"github.com/ledgerview/ledgerview/internal/config"
)

// rootOptions holds the global flags shared by every subcommand.
type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "ledgerview",
		Short:   "Startup financial statements from a handful of line items",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.FileName, "path to the config file")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "log debug output to stderr")

	rootCmd.AddCommand(
		newInitCommand(opts),
		newShowCommand(opts),
		newSummaryCommand(opts),
		newCompanyCommand(opts),
		newInvestmentCommand(opts),
		newExpenseCommand(opts),
		newNoteCommand(opts),
		newResetCommand(opts),
		newExportCommand(opts),
		newImportCommand(opts),
	)

	return rootCmd
}
