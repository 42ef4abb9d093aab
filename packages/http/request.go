package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"
)

// Supported HTTP methods.
const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodDelete  = "DELETE"
	MethodPatch   = "PATCH"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
)

var methods = map[string]bool{
	MethodGet:     true,
	MethodPost:    true,
	MethodPut:     true,
	MethodDelete:  true,
	MethodPatch:   true,
	MethodHead:    true,
	MethodOptions: true,
}

// ParseMethod normalizes s to upper case and reports whether it names a
// supported HTTP method.
func ParseMethod(s string) (string, bool) {
	m := strings.ToUpper(strings.TrimSpace(s))
	return m, methods[m]
}

// Request accumulates everything needed for a single HTTP call. It is
// built through chained calls on an owned handle and becomes
// effectively immutable once sent.
type Request struct {
	Method string
	URL    string

	headers         http.Header
	body            []byte
	queryParams     map[string]string
	timeout         time.Duration
	noTimeout       bool
	followRedirects bool
}

// NewRequest creates a request with a 30 second timeout and redirect
// following enabled.
func NewRequest(method, url string) *Request {
	return &Request{
		Method:          method,
		URL:             url,
		headers:         make(http.Header),
		queryParams:     make(map[string]string),
		timeout:         DefaultTimeout,
		followRedirects: true,
	}
}

func Get(url string) *Request     { return NewRequest(MethodGet, url) }
func Post(url string) *Request    { return NewRequest(MethodPost, url) }
func Put(url string) *Request     { return NewRequest(MethodPut, url) }
func Delete(url string) *Request  { return NewRequest(MethodDelete, url) }
func Patch(url string) *Request   { return NewRequest(MethodPatch, url) }
func Head(url string) *Request    { return NewRequest(MethodHead, url) }
func Options(url string) *Request { return NewRequest(MethodOptions, url) }

// Header sets a header with case-insensitive, last-write-wins
// semantics. A key or value that is invalid per the HTTP grammar is
// silently dropped; callers rely on best-effort attachment.
func (r *Request) Header(key, value string) *Request {
	if !httpguts.ValidHeaderFieldName(key) || !httpguts.ValidHeaderFieldValue(value) {
		return r
	}
	r.headers.Set(key, value)
	return r
}

// Headers applies Header for every pair in the map.
func (r *Request) Headers(headers map[string]string) *Request {
	for k, v := range headers {
		r.Header(k, v)
	}
	return r
}

// HeaderValue returns the currently set value for key, or "".
func (r *Request) HeaderValue(key string) string {
	return r.headers.Get(key)
}

// JSON serializes v, sets it as the request body and sets Content-Type
// to application/json.
func (r *Request) JSON(v any) (*Request, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, &JSONError{Err: err}
	}
	r.body = data
	return r.Header("Content-Type", "application/json"), nil
}

// Body sets the raw request body.
func (r *Request) Body(body []byte) *Request {
	r.body = body
	return r
}

// Text sets the body and a text/plain Content-Type.
func (r *Request) Text(text string) *Request {
	return r.Body([]byte(text)).Header("Content-Type", "text/plain")
}

// Query stores a query parameter, URL-encoded and appended to the URL
// at send time. Last write per key wins.
func (r *Request) Query(key, value string) *Request {
	r.queryParams[key] = value
	return r
}

// Timeout sets the per-request ceiling.
func (r *Request) Timeout(d time.Duration) *Request {
	r.timeout = d
	r.noTimeout = false
	return r
}

// NoTimeout disables the per-request ceiling entirely.
func (r *Request) NoTimeout() *Request {
	r.noTimeout = true
	return r
}

// FollowRedirects controls the redirect policy for this request.
func (r *Request) FollowRedirects(follow bool) *Request {
	r.followRedirects = follow
	return r
}

// buildURL parses the request URL and merges in the query parameters.
func (r *Request) buildURL() (string, error) {
	u, err := neturl.Parse(r.URL)
	if err != nil {
		return "", &InvalidURLError{URL: r.URL, Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &InvalidURLError{URL: r.URL, Err: fmt.Errorf("unsupported scheme %q", u.Scheme)}
	}
	if u.Host == "" {
		return "", &InvalidURLError{URL: r.URL, Err: fmt.Errorf("URL must have a host")}
	}

	if len(r.queryParams) > 0 {
		q := u.Query()
		for k, v := range r.queryParams {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

// Send issues the request with a one-shot client configured from the
// request's own redirect policy, blocking until the response is fully
// read or the timeout expires.
func (r *Request) Send() (*Response, error) {
	client := NewClient(
		WithFollowRedirects(r.followRedirects),
		WithTimeout(0),
	)
	return client.Do(r)
}
