package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/probehttp/probe/packages/http"
	"github.com/probehttp/probe/packages/output"
)

var (
	requestHeaderFlag []string
	requestBodyFlag   string
	requestJSONFlag   bool
)

var requestCmd = &cobra.Command{
	Use:   "request <method> <url>",
	Short: "Send a one-off request",
	Long: `Send a single request and print the response.

Examples:
  probe request GET https://api.example.com/users
  probe request POST https://api.example.com/users --json --body '{"name": "John"}'
  probe request GET https://api.example.com -H "Authorization: Bearer token"`,
	Args: cobra.ExactArgs(2),
	RunE: requestCommand,
}

func init() {
	requestCmd.Flags().StringArrayVarP(&requestHeaderFlag, "header", "H", nil, "Request header as key:value (repeatable)")
	requestCmd.Flags().StringVarP(&requestBodyFlag, "body", "b", "", "Request body")
	requestCmd.Flags().BoolVarP(&requestJSONFlag, "json", "j", false, "Treat the body as JSON")
	requestCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

func requestCommand(cmd *cobra.Command, args []string) error {
	method, ok := http.ParseMethod(args[0])
	if !ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "Invalid method: %s\n", args[0])
		os.Exit(ExitUsageError)
	}

	req := http.NewRequest(method, args[1])

	for _, header := range requestHeaderFlag {
		key, value, ok := strings.Cut(header, ":")
		if ok {
			req.Header(strings.TrimSpace(key), strings.TrimSpace(value))
		}
	}

	if requestBodyFlag != "" {
		if requestJSONFlag {
			var v any
			if err := json.Unmarshal([]byte(requestBodyFlag), &v); err != nil {
				return &http.JSONError{Err: err}
			}
			var err error
			if req, err = req.JSON(v); err != nil {
				return err
			}
		} else {
			req.Text(requestBodyFlag)
		}
	}

	resp, err := req.Send()
	if err != nil {
		return err
	}

	formatter := output.NewConsoleFormatter(output.WithNoColor(noColorFlag))
	return formatter.DisplayResponse(resp)
}
