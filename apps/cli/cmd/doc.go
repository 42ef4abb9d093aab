// Package cmd implements the probe CLI: an interactive mode (the
// default), request-file execution via run, and one-off quick requests.
package cmd
