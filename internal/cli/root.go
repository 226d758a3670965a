package cli

import (
	"github.com/pyskel-labs/pyskel/internal/branding"
	"github.com/pyskel-labs/pyskel/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates a Python project skeleton: an entry point, tests, a
dependency manifest, ignore rules, a README, a src package and, on Windows,
numbered helper scripts for the virtual environment lifecycle.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err.Error())
	}
	return err
}
