// Package runner executes the requests of a probe request file in
// order, resolving variables and handing each response to a display
// callback. The first failing request stops the run.
package runner

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/probehttp/probe/packages/assertions"
	"github.com/probehttp/probe/packages/core/config"
	"github.com/probehttp/probe/packages/http"
)

// DisplayFunc receives each response after a successful send.
type DisplayFunc func(*http.Response) error

// Runner executes configured requests through a shared client.
type Runner struct {
	client  *http.Client
	display DisplayFunc
	logger  zerolog.Logger
}

type Option func(*Runner)

func New(opts ...Option) *Runner {
	r := &Runner{
		client:  http.NewClient(),
		display: func(*http.Response) error { return nil },
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func WithClient(c *http.Client) Option {
	return func(r *Runner) {
		r.client = c
	}
}

func WithDisplay(fn DisplayFunc) Option {
	return func(r *Runner) {
		r.display = fn
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// Run executes the requests in cfg whose names match namePattern, in
// file order. An empty pattern selects every request; patterns may use
// the * wildcard. The first error is fatal.
func (r *Runner) Run(cfg *config.Config, namePattern string) error {
	selected := selectRequests(cfg, namePattern)
	if len(selected) == 0 {
		if namePattern != "" {
			return fmt.Errorf("no requests found with name %q", namePattern)
		}
		return fmt.Errorf("no requests found")
	}

	injectBuiltins(cfg)

	for _, rc := range selected {
		fmt.Printf("\nRunning: %s\n", rc.Name)
		if err := r.execute(cfg, rc); err != nil {
			return fmt.Errorf("%s: %w", rc.Name, err)
		}
	}
	return nil
}

func selectRequests(cfg *config.Config, namePattern string) []*config.RequestConfig {
	var selected []*config.RequestConfig
	for i := range cfg.Requests {
		rc := &cfg.Requests[i]
		if namePattern == "" || assertions.MatchesPattern(rc.Name, namePattern) {
			selected = append(selected, rc)
		}
	}
	return selected
}

// injectBuiltins defines per-run generated variables. User-defined
// variables of the same name win.
func injectBuiltins(cfg *config.Config) {
	if _, ok := cfg.Variables["uuid"]; !ok {
		cfg.Variables["uuid"] = uuid.NewString()
	}
	if _, ok := cfg.Variables["timestamp"]; !ok {
		cfg.Variables["timestamp"] = fmt.Sprintf("%d", time.Now().Unix())
	}
}

func (r *Runner) execute(cfg *config.Config, rc *config.RequestConfig) error {
	req, err := Build(cfg, rc)
	if err != nil {
		return err
	}

	r.logger.Debug().
		Str("name", rc.Name).
		Str("method", req.Method).
		Str("url", req.URL).
		Msg("sending request")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}

	r.logger.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", resp.Duration).
		Msg("received response")

	return r.display(resp)
}

// Build turns one request config into a sendable request, applying
// variable substitution to the URL, header values and body.
func Build(cfg *config.Config, rc *config.RequestConfig) (*http.Request, error) {
	method, err := config.ParseMethod(rc.Method)
	if err != nil {
		return nil, err
	}

	req := http.NewRequest(method, cfg.Substitute(rc.URL))

	for key, value := range rc.Headers {
		req.Header(key, cfg.Substitute(value))
	}

	if rc.Body != "" {
		body := cfg.Substitute(rc.Body)
		if rc.JSON {
			var v any
			if err := json.Unmarshal([]byte(body), &v); err != nil {
				return nil, fmt.Errorf("request body is not valid JSON: %w", err)
			}
			if req, err = req.JSON(v); err != nil {
				return nil, err
			}
		} else {
			req.Text(body)
		}
	}

	return req, nil
}
