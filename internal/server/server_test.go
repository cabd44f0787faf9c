package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/verdict/internal/config"
	"github.com/sozercan/verdict/internal/verify"
)

func newTestServer(t *testing.T, api http.HandlerFunc) (*httptest.Server, string) {
	t.Helper()
	backend := httptest.NewServer(api)
	t.Cleanup(backend.Close)

	endpoint := backend.URL + "/v1/verify"
	verifier, err := verify.NewClient(endpoint, 5*time.Second)
	require.NoError(t, err)

	srv := New(config.Config{Server: config.ServerConfig{Host: "127.0.0.1", Port: "0"}}, verifier)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, endpoint
}

func postQuery(t *testing.T, ts *httptest.Server, text string) (*http.Response, string) {
	t.Helper()
	resp, err := http.PostForm(ts.URL+"/query", url.Values{"query": {text}})
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestIndex(t *testing.T) {
	ts, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("index must not call the verification API")
	})

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, htmlContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, string(body), `id="user-input"`)
}

func TestQueryRendersVerdict(t *testing.T) {
	var got map[string]interface{}
	ts, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"decision_verdict":"likely_true","decision_confidence":0.873}`))
	})

	resp, body := postQuery(t, ts, "  the sun is a star ")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "the sun is a star", got["query"])
	assert.Contains(t, body, `class="accent-green">likely True</strong>`)
	assert.Contains(t, body, "87.3%")
	assert.Contains(t, body, `value="the sun is a star"`)
	assert.Contains(t, body, "#loader{display:none}")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(body), "</html>"))
}

func TestQueryRendersErrorPanel(t *testing.T) {
	ts, endpoint := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	resp, body := postQuery(t, ts, "anything")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "errors are rendered in the page")
	assert.Contains(t, body, "Connection Error:")
	assert.Contains(t, body, "500")
	assert.Contains(t, body, endpoint)
	assert.Contains(t, body, "#loader{display:none}")
}

func TestBlankQueryDoesNotCallAPI(t *testing.T) {
	var calls int32
	ts, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	_, body := postQuery(t, ts, "   ")
	assert.Zero(t, atomic.LoadInt32(&calls))
	assert.NotContains(t, body, `id="loader"`)
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	resp, err := http.Get(ts.URL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	var status map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "ok", status["status"])
}

func TestStaticStylesheet(t *testing.T) {
	ts, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	resp, err := http.Get(ts.URL + "/static/style.css")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")
}

func TestResponseWriterFlushes(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	_, _ = rw.Write([]byte("x"))
	rw.Flush()

	assert.Equal(t, http.StatusOK, rw.status)
	assert.True(t, rec.Flushed)
}
