package cmd

// Exit codes for the probe CLI
const (
	// ExitSuccess indicates the command completed without error
	ExitSuccess = 0

	// ExitFailure indicates a request, assertion or config failure
	ExitFailure = 1

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
