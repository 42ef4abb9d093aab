package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "probe",
	Short: "Instant HTTP API testing suite",
	Long: `probe builds HTTP requests from the terminal, sends them, and shows
colorized responses. Run it with no arguments for interactive mode,
point it at a probe.toml request file, or fire a one-off request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand defaults to interactive mode.
		return runInteractiveSession()
	},
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitFailure)
	}
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(requestCmd)
	rootCmd.AddCommand(versionCmd)
}
