package cmd

import (
	"github.com/spf13/cobra"

	"github.com/probehttp/probe/packages/interactive"
	"github.com/probehttp/probe/packages/output"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Build and send requests from an interactive prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractiveSession()
	},
}

func runInteractiveSession() error {
	formatter := output.NewConsoleFormatter(output.WithNoColor(noColorFlag))

	session, err := interactive.NewSession(formatter.DisplayResponse)
	if err != nil {
		return err
	}
	defer session.Close()

	return session.Run()
}
