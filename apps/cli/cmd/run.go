package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/probehttp/probe/packages/core/config"
	"github.com/probehttp/probe/packages/core/runner"
	"github.com/probehttp/probe/packages/output"
)

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	configFlag  string
	nameFlag    string
	watchFlag   bool
	verboseFlag int
	noColorFlag bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run requests from a probe request file",
	Long: `Run the requests defined in a probe request file, in order.

Examples:
  probe run
  probe run --config api.toml
  probe run --config api.yaml --name "create user"
  probe run --name "users*" --watch`,
	RunE: runCommand,
}

func init() {
	runCmd.Flags().StringVarP(&configFlag, "config", "c", config.DefaultFilename, "Path to request file")
	runCmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Run only requests matching name pattern (* wildcard)")
	runCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch the request file and re-run on change")
	runCmd.Flags().CountVarP(&verboseFlag, "verbose", "v", "Verbose output")
	runCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verboseFlag > 0 {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func runCommand(cmd *cobra.Command, args []string) error {
	formatter := output.NewConsoleFormatter(output.WithNoColor(noColorFlag))
	r := runner.New(
		runner.WithDisplay(formatter.DisplayResponse),
		runner.WithLogger(newLogger()),
	)

	runOnce := func() error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		return r.Run(cfg, nameFlag)
	}

	if !watchFlag {
		return runOnce()
	}

	// Watch mode: a run failure is reported but keeps the watcher alive.
	if err := runOnce(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(configFlag); err != nil {
		return fmt.Errorf("failed to watch %s: %w", configFlag, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s for changes... (press Ctrl+C to stop)\n", configFlag)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var debounceTimer *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "\nFile changed: %s\nRe-running...\n", event.Name)
				if err := runOnce(); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s for changes... (press Ctrl+C to stop)\n", configFlag)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watcher error: %v\n", err)

		case <-stop:
			return nil
		}
	}
}
