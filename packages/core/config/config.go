// Package config loads probe request files and performs variable
// substitution. Files are TOML by default, or YAML when the extension
// says so. Substitution is a literal string replace of {{key}}
// placeholders with no escaping.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/probehttp/probe/packages/http"
)

// DefaultFilename is the request file probe looks for when none is
// given.
const DefaultFilename = "probe.toml"

// Config is a probe request file: a variable table and an ordered list
// of named requests.
type Config struct {
	Variables map[string]string `toml:"variables" yaml:"variables"`
	Requests  []RequestConfig   `toml:"requests" yaml:"requests"`
}

// RequestConfig describes one request in a file. Body is optional;
// JSON marks the body as a JSON document, setting the content type and
// validating it before send.
type RequestConfig struct {
	Name    string            `toml:"name" yaml:"name"`
	Method  string            `toml:"method" yaml:"method"`
	URL     string            `toml:"url" yaml:"url"`
	Headers map[string]string `toml:"headers" yaml:"headers"`
	Body    string            `toml:"body" yaml:"body"`
	JSON    bool              `toml:"json" yaml:"json"`
}

// Load reads and parses a request file. The format is chosen by
// extension: .yaml/.yml parse as YAML, everything else as TOML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if cfg.Variables == nil {
		cfg.Variables = make(map[string]string)
	}
	return cfg, nil
}

// Substitute replaces every {{key}} placeholder in text with the
// variable's value. Unknown placeholders are left as-is.
func (c *Config) Substitute(text string) string {
	result := text
	for key, value := range c.Variables {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return result
}

// ParseMethod validates a request file's method string.
func ParseMethod(method string) (string, error) {
	m, ok := http.ParseMethod(method)
	if !ok {
		return "", fmt.Errorf("invalid HTTP method: %s", method)
	}
	return m, nil
}
