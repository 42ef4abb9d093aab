// Package output renders responses to the terminal. It only reads
// response accessors; nothing here mutates a response.
package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/tidwall/pretty"

	"github.com/probehttp/probe/packages/http"
)

const ruleWidth = 80

// ConsoleFormatter writes colorized response dumps: status colored by
// range, headers, and the body with JSON pretty-printed and
// syntax-colored.
type ConsoleFormatter struct {
	writer  io.Writer
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// DisplayResponse renders one response.
func (f *ConsoleFormatter) DisplayResponse(resp *http.Response) error {
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	rule := color.New(color.FgBlue).Sprint(strings.Repeat("━", ruleWidth))

	fmt.Fprintln(f.writer, rule)
	fmt.Fprintf(f.writer, "%s %s\n", bold("Status:"), f.formatStatus(resp.StatusCode))
	fmt.Fprintf(f.writer, "%s %s\n", bold("Duration:"), resp.Duration)

	fmt.Fprintf(f.writer, "\n%s\n", cyan(bold("Headers:")))
	for _, key := range sortedHeaderKeys(resp) {
		fmt.Fprintf(f.writer, "  %s: %s\n", green(key), resp.Header(key))
	}

	text, err := resp.Text()
	if err != nil {
		fmt.Fprintf(f.writer, "\n%s\n", dim("Body: <binary data>"))
		fmt.Fprintln(f.writer, rule)
		return nil
	}

	fmt.Fprintf(f.writer, "\n%s\n", cyan(bold("Body:")))
	if resp.IsJSON() {
		f.displayJSON(resp.Body)
	} else {
		fmt.Fprintln(f.writer, text)
	}

	fmt.Fprintln(f.writer, rule)
	return nil
}

func (f *ConsoleFormatter) formatStatus(status int) string {
	s := fmt.Sprintf("%d", status)
	switch {
	case status >= 200 && status < 300:
		return color.GreenString(s)
	case status >= 300 && status < 400:
		return color.YellowString(s)
	case status >= 400:
		return color.RedString(s)
	default:
		return s
	}
}

func (f *ConsoleFormatter) displayJSON(body []byte) {
	formatted := pretty.Pretty(body)
	if !f.noColor && !color.NoColor {
		formatted = pretty.Color(formatted, nil)
	}
	fmt.Fprint(f.writer, string(formatted))
}

func sortedHeaderKeys(resp *http.Response) []string {
	keys := make([]string, 0, len(resp.Headers))
	for k := range resp.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
