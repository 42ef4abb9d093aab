package http

import (
	"encoding/json"
	"net/http"
	"net/textproto"
	"strings"
	"time"
	"unicode/utf8"
)

// Response captures a completed HTTP exchange: status, headers, the
// fully-read body and the elapsed wall-clock time of the send. It is
// created exactly once by the client and is read-only thereafter;
// assertion methods consume and return it.
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
	Duration   time.Duration
}

// Header returns the value of a header by case-insensitive lookup, or
// "" if absent.
func (r *Response) Header(key string) string {
	return r.Headers.Get(key)
}

// HasHeader reports whether the header is present at all, so empty
// values can be told apart from missing ones.
func (r *Response) HasHeader(key string) bool {
	_, ok := r.Headers[textproto.CanonicalMIMEHeaderKey(key)]
	return ok
}

// ContentType returns the Content-Type header, or "" if absent.
func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

// IsJSON reports whether the content-type claims application/json.
func (r *Response) IsJSON() bool {
	return strings.Contains(r.ContentType(), "application/json")
}

// IsSuccess reports whether the status is in [200, 300).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError reports whether the status is a client or server error,
// [400, 600).
func (r *Response) IsError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 600
}

// DurationMs returns the elapsed send time in milliseconds.
func (r *Response) DurationMs() int64 {
	return r.Duration.Milliseconds()
}

// Text returns the body decoded as UTF-8 text.
func (r *Response) Text() (string, error) {
	if !utf8.Valid(r.Body) {
		return "", newAssertionError("response body is not valid UTF-8")
	}
	return string(r.Body), nil
}

// JSON parses the body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return &JSONError{Err: err}
	}
	return nil
}

// JSONValue parses the body into a generic JSON value.
func (r *Response) JSONValue() (any, error) {
	var v any
	if err := r.JSON(&v); err != nil {
		return nil, err
	}
	return v, nil
}
