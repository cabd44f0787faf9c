package view

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/verdict/apimodels"
	"github.com/sozercan/verdict/internal/render"
)

func resultPanel(t *testing.T, payload string) render.ResultPanel {
	t.Helper()
	var resp apimodels.VerdictResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	return render.Result(&resp)
}

func TestPageStreamsFragmentsInOrder(t *testing.T) {
	rec := httptest.NewRecorder()
	page := NewPage(rec)

	page.Open(PageData{Query: "is the sky blue"})
	page.ShowLoading()
	page.ShowResult(resultPanel(t, `{"decision_verdict":"likely_true","decision_confidence":0.873}`))
	page.HideLoading()
	page.Close()
	require.NoError(t, page.Err())

	body := rec.Body.String()
	assert.True(t, rec.Flushed, "fragments should be flushed")
	assert.Contains(t, body, `value="is the sky blue"`)
	assert.Contains(t, body, `class="accent-green">likely True</strong>`)
	assert.Contains(t, body, "87.3%")
	assert.Contains(t, body, render.Hint)
	assert.Contains(t, body, render.CollapsedLabel)
	assert.Contains(t, body, render.ExpandedLabel)
	assert.NotContains(t, body, `<details class="raw-intel" open>`, "raw viewer should start collapsed")

	loader := strings.Index(body, `id="loader"`)
	result := strings.Index(body, "bot-message")
	hide := strings.Index(body, "#loader{display:none}")
	assert.True(t, loader >= 0 && loader < result && result < hide, "expected loader, result, hide order")
}

func TestPageRendersExpandedViewer(t *testing.T) {
	var buf bytes.Buffer
	page := NewPage(&buf)

	panel := resultPanel(t, `{"decision_verdict":"likely_false","decision_confidence":0.5}`)
	panel.Raw.Toggle()
	page.ShowResult(panel)
	require.NoError(t, page.Err())

	assert.Contains(t, buf.String(), `<details class="raw-intel" open>`)
	assert.Contains(t, buf.String(), `class="accent-red">likely False</strong>`)
}

func TestPageEscapesPayload(t *testing.T) {
	var buf bytes.Buffer
	page := NewPage(&buf)

	page.ShowResult(resultPanel(t, `{"decision_verdict":"<img src=x onerror=alert(1)>","decision_confidence":0.1,"note":"</pre><script>alert(1)</script>"}`))
	page.ShowError(render.Error(errors.New("<b>bad</b>"), "http://localhost:8000/v1/verify?a=<x>"))
	require.NoError(t, page.Err())

	out := buf.String()
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<img")
	assert.NotContains(t, out, "<b>bad</b>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "confusing and is unsure")
}

func TestPageErrorPanel(t *testing.T) {
	var buf bytes.Buffer
	page := NewPage(&buf)

	page.ShowError(render.Error(errors.New("Status Code: 500"), "http://localhost:8000/v1/verify"))
	require.NoError(t, page.Err())

	out := buf.String()
	assert.Contains(t, out, "error-panel accent-error")
	assert.Contains(t, out, "Connection Error:")
	assert.Contains(t, out, "Status Code: 500")
	assert.Contains(t, out, "Is the backend running on http://localhost:8000/v1/verify?")
}

func TestRenderIdle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderIdle(&buf, PageData{}))

	out := buf.String()
	assert.Contains(t, out, `<form class="input-row" method="post" action="/query">`)
	assert.NotContains(t, out, "has-results")
	assert.NotContains(t, out, `id="loader"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</html>"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("client went away") }

func TestPageKeepsFirstError(t *testing.T) {
	page := NewPage(failingWriter{})
	page.Open(PageData{})
	page.ShowLoading()
	assert.ErrorContains(t, page.Err(), "client went away")
}

func TestStaticFS(t *testing.T) {
	data, err := fs.ReadFile(StaticFS(), "style.css")
	require.NoError(t, err)
	assert.Contains(t, string(data), "--accent-amber")
}
