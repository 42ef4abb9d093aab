package http

import "fmt"

// RequestError wraps an underlying transport or network failure,
// including timeout expiry.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("HTTP request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// InvalidURLError indicates the request URL failed to parse.
type InvalidURLError struct {
	URL string
	Err error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL: %v", e.Err)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }

// JSONError indicates a body failed to serialize or deserialize as JSON.
type JSONError struct {
	Err error
}

func (e *JSONError) Error() string {
	return fmt.Sprintf("JSON parsing error: %v", e.Err)
}

func (e *JSONError) Unwrap() error { return e.Err }

// AssertionError is a generic check failure carrying a human-readable
// message.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: %s", e.Message)
}

func newAssertionError(format string, args ...any) *AssertionError {
	return &AssertionError{Message: fmt.Sprintf(format, args...)}
}

// StatusMismatchError indicates the response status did not equal the
// expected status.
type StatusMismatchError struct {
	Expected int
	Actual   int
}

func (e *StatusMismatchError) Error() string {
	return fmt.Sprintf("status code %d expected, got %d", e.Expected, e.Actual)
}

// HeaderMismatchError indicates a header was present with the wrong
// value.
type HeaderMismatchError struct {
	Key      string
	Expected string
	Actual   string
}

func (e *HeaderMismatchError) Error() string {
	return fmt.Sprintf("header %q expected value %q, got %q", e.Key, e.Expected, e.Actual)
}

// NotJSONError indicates a JSON response was expected but the
// content-type disagreed.
type NotJSONError struct {
	ContentType string
}

func (e *NotJSONError) Error() string {
	return fmt.Sprintf("expected JSON response, got content-type: %s", e.ContentType)
}

// PathNotFoundError indicates a JSON path lookup missed.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("JSON path %q not found", e.Path)
}

// FieldMismatchError indicates a JSON field held a value other than the
// expected one. Expected and Actual are JSON-serialized for display.
type FieldMismatchError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *FieldMismatchError) Error() string {
	return fmt.Sprintf("field %q expected value %s, got %s", e.Field, e.Expected, e.Actual)
}
