package runner

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probehttp/probe/packages/core/config"
	"github.com/probehttp/probe/packages/http"
)

func TestBuild_Substitution(t *testing.T) {
	cfg := &config.Config{
		Variables: map[string]string{
			"base_url": "https://api.example.com",
			"token":    "secret",
		},
	}
	rc := &config.RequestConfig{
		Name:    "create",
		Method:  "post",
		URL:     "{{base_url}}/users",
		Headers: map[string]string{"Authorization": "Bearer {{token}}"},
		Body:    `{"name": "John"}`,
		JSON:    true,
	}

	req, err := Build(cfg, rc)
	require.NoError(t, err)

	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "https://api.example.com/users", req.URL)
	assert.Equal(t, "Bearer secret", req.HeaderValue("Authorization"))
	assert.Equal(t, "application/json", req.HeaderValue("Content-Type"))
}

func TestBuild_InvalidMethod(t *testing.T) {
	cfg := &config.Config{Variables: map[string]string{}}
	rc := &config.RequestConfig{Name: "bad", Method: "YEET", URL: "https://example.com"}

	_, err := Build(cfg, rc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid HTTP method")
}

func TestBuild_InvalidJSONBody(t *testing.T) {
	cfg := &config.Config{Variables: map[string]string{}}
	rc := &config.RequestConfig{
		Name:   "bad body",
		Method: "POST",
		URL:    "https://example.com",
		Body:   `{broken`,
		JSON:   true,
	}

	_, err := Build(cfg, rc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestRun_ExecutesInOrder(t *testing.T) {
	var paths []string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		Variables: map[string]string{"base": server.URL},
		Requests: []config.RequestConfig{
			{Name: "first", Method: "GET", URL: "{{base}}/one"},
			{Name: "second", Method: "GET", URL: "{{base}}/two"},
		},
	}

	displayed := 0
	r := New(WithDisplay(func(*http.Response) error {
		displayed++
		return nil
	}))

	require.NoError(t, r.Run(cfg, ""))
	assert.Equal(t, []string{"/one", "/two"}, paths)
	assert.Equal(t, 2, displayed)
}

func TestRun_NameFilterGlob(t *testing.T) {
	var paths []string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		Variables: map[string]string{},
		Requests: []config.RequestConfig{
			{Name: "users list", Method: "GET", URL: server.URL + "/users"},
			{Name: "users create", Method: "GET", URL: server.URL + "/users/new"},
			{Name: "health", Method: "GET", URL: server.URL + "/health"},
		},
	}

	require.NoError(t, New().Run(cfg, "users*"))
	assert.Equal(t, []string{"/users", "/users/new"}, paths)
}

func TestRun_NoMatches(t *testing.T) {
	cfg := &config.Config{Variables: map[string]string{}}

	err := New().Run(cfg, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no requests found with name "missing"`)
}

func TestRun_FirstErrorIsFatal(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		Variables: map[string]string{},
		Requests: []config.RequestConfig{
			{Name: "broken", Method: "GET", URL: "http://127.0.0.1:1/"},
			{Name: "never runs", Method: "GET", URL: server.URL},
		},
	}

	displayed := 0
	r := New(WithDisplay(func(*http.Response) error {
		displayed++
		return nil
	}))

	err := r.Run(cfg, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, 0, displayed)
}

func TestInjectBuiltins(t *testing.T) {
	cfg := &config.Config{Variables: map[string]string{"uuid": "fixed"}}
	injectBuiltins(cfg)

	// User-defined values win; missing built-ins get generated.
	assert.Equal(t, "fixed", cfg.Variables["uuid"])
	assert.NotEmpty(t, cfg.Variables["timestamp"])
}
