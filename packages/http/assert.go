package http

import (
	"encoding/json"
	"strings"

	"github.com/probehttp/probe/packages/assertions"
	"github.com/tidwall/gjson"
)

// The assertion chain: each method returns the response on success so
// checks compose left to right, aborting at the first failure.

// ExpectStatus fails unless the status equals expected.
func (r *Response) ExpectStatus(expected int) (*Response, error) {
	if r.StatusCode != expected {
		return nil, &StatusMismatchError{Expected: expected, Actual: r.StatusCode}
	}
	return r, nil
}

// ExpectSuccess fails unless the status is in [200, 300).
func (r *Response) ExpectSuccess() (*Response, error) {
	if !r.IsSuccess() {
		return nil, newAssertionError("expected success status, got %d", r.StatusCode)
	}
	return r, nil
}

// ExpectError fails unless the status is in the client or server error
// range [400, 600).
func (r *Response) ExpectError() (*Response, error) {
	if !r.IsError() {
		return nil, newAssertionError("expected error status, got %d", r.StatusCode)
	}
	return r, nil
}

// ExpectJSON fails unless the content-type contains application/json
// and the body parses as JSON.
func (r *Response) ExpectJSON() (*Response, error) {
	contentType := r.ContentType()
	if contentType == "" {
		contentType = "unknown"
	}
	if !strings.Contains(contentType, "application/json") {
		return nil, &NotJSONError{ContentType: contentType}
	}
	if _, err := r.JSONValue(); err != nil {
		return nil, err
	}
	return r, nil
}

// ExpectText fails unless the body decodes as valid UTF-8 text.
func (r *Response) ExpectText() (*Response, error) {
	if _, err := r.Text(); err != nil {
		return nil, err
	}
	return r, nil
}

// ExpectBodyContains fails unless the decoded body contains substr.
func (r *Response) ExpectBodyContains(substr string) (*Response, error) {
	body, err := r.Text()
	if err != nil {
		return nil, err
	}
	if !strings.Contains(body, substr) {
		return nil, newAssertionError("expected body to contain %q, but it didn't", substr)
	}
	return r, nil
}

// ExpectHeader fails if the header is absent or holds a value other
// than expected (exact string compare).
func (r *Response) ExpectHeader(key, expected string) (*Response, error) {
	if !r.HasHeader(key) {
		return nil, newAssertionError("header %q not found", key)
	}
	actual := r.Header(key)
	if actual != expected {
		return nil, &HeaderMismatchError{Key: key, Expected: expected, Actual: actual}
	}
	return r, nil
}

// ExpectContentType is sugar for ExpectHeader("Content-Type", ct).
func (r *Response) ExpectContentType(contentType string) (*Response, error) {
	return r.ExpectHeader("Content-Type", contentType)
}

// AssertField fails with PathNotFoundError if the path misses, or
// FieldMismatchError if the value there is not structurally equal to
// expected. Expected may be any JSON-serializable value; it is
// normalized into the JSON value model before comparison.
func (r *Response) AssertField(path string, expected any) (*Response, error) {
	root, err := r.parsedBody()
	if err != nil {
		return nil, err
	}

	actual, ok := assertions.ExtractPath(root, path)
	if !ok {
		return nil, &PathNotFoundError{Path: path}
	}

	expectedValue := assertions.Normalize(expected)
	if !assertions.Match(actual.Value(), expectedValue) {
		return nil, &FieldMismatchError{
			Field:    path,
			Expected: jsonString(expectedValue),
			Actual:   actual.Raw,
		}
	}
	return r, nil
}

// AssertFieldExists fails with PathNotFoundError unless the path
// resolves to a value.
func (r *Response) AssertFieldExists(path string) (*Response, error) {
	root, err := r.parsedBody()
	if err != nil {
		return nil, err
	}
	if _, ok := assertions.ExtractPath(root, path); !ok {
		return nil, &PathNotFoundError{Path: path}
	}
	return r, nil
}

// AssertArrayLength fails unless the path resolves to an array of
// exactly the expected length.
func (r *Response) AssertArrayLength(path string, expected int) (*Response, error) {
	root, err := r.parsedBody()
	if err != nil {
		return nil, err
	}

	value, ok := assertions.ExtractPath(root, path)
	if !ok || !value.IsArray() {
		return nil, newAssertionError("path %q is not an array", path)
	}

	actual := len(value.Array())
	if actual != expected {
		return nil, newAssertionError("array at %q expected length %d, got %d", path, expected, actual)
	}
	return r, nil
}

// parsedBody validates and parses the body as JSON for path-based
// assertions.
func (r *Response) parsedBody() (gjson.Result, error) {
	if _, err := r.JSONValue(); err != nil {
		return gjson.Result{}, err
	}
	return gjson.ParseBytes(r.Body), nil
}

func jsonString(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}
