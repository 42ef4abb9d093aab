// Package interactive implements probe's terminal prompt loop: method,
// URL, headers and body are prompted one request at a time, the request
// is sent, and the rendered response is shown. Errors are printed and
// the loop re-prompts; only Ctrl-C/Ctrl-D end the session.
package interactive

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/probehttp/probe/packages/http"
)

var methodChoices = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete,
	http.MethodPatch, http.MethodHead, http.MethodOptions,
}

// DisplayFunc renders a received response.
type DisplayFunc func(*http.Response) error

// Session drives the prompt loop over a readline instance.
type Session struct {
	rl      *readline.Instance
	display DisplayFunc
}

func NewSession(display DisplayFunc) (*Session, error) {
	items := make([]readline.PrefixCompleterInterface, len(methodChoices))
	for i, m := range methodChoices {
		items[i] = readline.PcItem(m)
	}
	completer := readline.NewPrefixCompleter(items...)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:       "> ",
		AutoComplete: completer,
	})
	if err != nil {
		return nil, fmt.Errorf("interactive prompt error: %w", err)
	}

	return &Session{rl: rl, display: display}, nil
}

func (s *Session) Close() error {
	return s.rl.Close()
}

// Run loops until the user exits. A failed request or assertion is
// non-fatal: the error prints and the next prompt starts.
func (s *Session) Run() error {
	fmt.Println("probe interactive mode")
	fmt.Println("Press Ctrl+C to exit")
	fmt.Println()

	for {
		again, err := s.promptAndExecute()
		switch {
		case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
			return nil
		case err != nil:
			fmt.Fprintf(s.rl.Stderr(), "Error: %v\n", err)
		case !again:
			return nil
		}
	}
}

func (s *Session) promptAndExecute() (bool, error) {
	method, err := s.promptMethod()
	if err != nil {
		return false, err
	}

	url, err := s.promptLine("URL: ")
	if err != nil {
		return false, err
	}

	headers, err := s.promptHeaders()
	if err != nil {
		return false, err
	}

	req := http.NewRequest(method, url)
	for _, h := range headers {
		req.Header(h[0], h[1])
	}

	if method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch {
		req, err = s.promptBody(req)
		if err != nil {
			return false, err
		}
	}

	fmt.Println("\nSending request...")
	fmt.Println()

	resp, err := req.Send()
	if err != nil {
		return true, err
	}
	if err := s.display(resp); err != nil {
		return true, err
	}

	return s.promptConfirm("Make another request?", true)
}

func (s *Session) promptMethod() (string, error) {
	fmt.Println("Select HTTP method:")
	for i, m := range methodChoices {
		fmt.Printf("  %d) %s\n", i+1, m)
	}

	for {
		line, err := s.promptLine("Method [GET]: ")
		if err != nil {
			return "", err
		}
		if line == "" {
			return http.MethodGet, nil
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(methodChoices) {
			return methodChoices[n-1], nil
		}
		if m, ok := http.ParseMethod(line); ok {
			return m, nil
		}
		fmt.Printf("Invalid method: %s\n", line)
	}
}

func (s *Session) promptHeaders() ([][2]string, error) {
	var headers [][2]string
	for {
		line, err := s.promptLine("Header (key:value, or press Enter to skip): ")
		if err != nil {
			return nil, err
		}
		if line == "" {
			return headers, nil
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			fmt.Println("Invalid header format. Use key:value")
			continue
		}
		headers = append(headers, [2]string{strings.TrimSpace(key), strings.TrimSpace(value)})
	}
}

func (s *Session) promptBody(req *http.Request) (*http.Request, error) {
	hasBody, err := s.promptConfirm("Include request body?", false)
	if err != nil {
		return nil, err
	}
	if !hasBody {
		return req, nil
	}

	isJSON, err := s.promptConfirm("Is the body JSON?", true)
	if err != nil {
		return nil, err
	}

	label := "Body: "
	if isJSON {
		label = "JSON body: "
	}
	body, err := s.promptLine(label)
	if err != nil {
		return nil, err
	}

	if isJSON {
		var v any
		if err := json.Unmarshal([]byte(body), &v); err != nil {
			return nil, &http.JSONError{Err: err}
		}
		return req.JSON(v)
	}
	return req.Text(body), nil
}

func (s *Session) promptConfirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	line, err := s.promptLine(fmt.Sprintf("%s [%s]: ", question, hint))
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (s *Session) promptLine(prompt string) (string, error) {
	s.rl.SetPrompt(prompt)
	line, err := s.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
