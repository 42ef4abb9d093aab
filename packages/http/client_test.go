package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/probehttp/probe/packages/assertions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message": "hello"}`))
	}))
	defer server.Close()

	resp, err := Get(server.URL + "/users").Send()

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header("content-type"))
	assert.Contains(t, string(resp.Body), "hello")
	assert.Greater(t, resp.Duration, time.Duration(0))
}

func TestSend_QueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "a b", r.URL.Query().Get("q"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := Get(server.URL).Query("page", "1").Query("q", "a b").Send()
	require.NoError(t, err)
}

func TestSend_JSONRoundTrip(t *testing.T) {
	sent := map[string]any{
		"name":  "test",
		"items": []any{float64(1), float64(2)},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var received any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.True(t, assertions.Match(received, assertions.Normalize(sent)))

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	req, err := Post(server.URL).JSON(sent)
	require.NoError(t, err)

	resp, err := req.Send()
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}

func TestSend_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := Get(server.URL).Timeout(50 * time.Millisecond).Send()

	require.Error(t, err)
	var reqErr *RequestError
	assert.ErrorAs(t, err, &reqErr)
}

func TestSend_ConnectionRefused(t *testing.T) {
	_, err := Get("http://127.0.0.1:1").Timeout(time.Second).Send()

	require.Error(t, err)
	var reqErr *RequestError
	assert.ErrorAs(t, err, &reqErr)
}

func TestSend_FollowRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/final" {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`final`))
			return
		}
		http.Redirect(w, r, "/final", http.StatusFound)
	}))
	defer server.Close()

	resp, err := Get(server.URL + "/start").Send()

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "final", string(resp.Body))
}

func TestSend_NoFollowRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	defer server.Close()

	resp, err := Get(server.URL).FollowRedirects(false).Send()

	require.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/elsewhere", resp.Header("Location"))
}

func TestClient_DefaultHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "probe-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "override", r.Header.Get("X-Env"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(WithDefaultHeaders(map[string]string{
		"User-Agent": "probe-test",
		"X-Env":      "default",
	}))

	// Request headers win over client defaults.
	_, err := client.Do(Get(server.URL).Header("X-Env", "override"))
	require.NoError(t, err)
}

func TestSend_BodyAndMethod(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "text/plain", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	resp, err := Put(server.URL).Text("payload").Send()

	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}
