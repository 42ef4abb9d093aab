package output

import (
	"bytes"
	nethttp "net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probehttp/probe/packages/http"
)

func makeResponse(status int, body string, contentType string) *http.Response {
	h := make(nethttp.Header)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: status,
		Headers:    h,
		Body:       []byte(body),
		Duration:   42 * time.Millisecond,
	}
}

func TestDisplayResponse_JSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	resp := makeResponse(200, `{"message":"hello"}`, "application/json")
	require.NoError(t, f.DisplayResponse(resp))

	out := buf.String()
	assert.Contains(t, out, "Status: 200")
	assert.Contains(t, out, "Duration: 42ms")
	assert.Contains(t, out, "Content-Type: application/json")
	// Pretty-printed, so key and value are separated by ": ".
	assert.Contains(t, out, `"message": "hello"`)
}

func TestDisplayResponse_PlainText(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	resp := makeResponse(404, "not found", "text/plain")
	require.NoError(t, f.DisplayResponse(resp))

	out := buf.String()
	assert.Contains(t, out, "Status: 404")
	assert.Contains(t, out, "not found")
}

func TestDisplayResponse_BinaryBody(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	resp := makeResponse(200, string([]byte{0xff, 0xfe, 0x00}), "application/octet-stream")
	require.NoError(t, f.DisplayResponse(resp))

	assert.Contains(t, buf.String(), "<binary data>")
}
