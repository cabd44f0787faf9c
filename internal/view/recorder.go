package view

import (
	"sync"

	"github.com/sozercan/verdict/internal/render"
)

// Recorder is an in-memory view that remembers what was shown. It backs
// tests and headless callers.
type Recorder struct {
	mu      sync.Mutex
	events  []string
	loading bool
	result  *render.ResultPanel
	err     *render.ErrorPanel
}

func (r *Recorder) record(event string) {
	r.events = append(r.events, event)
}

func (r *Recorder) ShowLoading() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = true
	r.record("loading")
}

func (r *Recorder) HideLoading() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	r.record("hide")
}

func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result, r.err = nil, nil
	r.record("clear")
}

func (r *Recorder) ShowResult(panel render.ResultPanel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result = &panel
	r.record("result")
}

func (r *Recorder) ShowError(panel render.ErrorPanel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = &panel
	r.record("error")
}

// Events lists calls in order: loading, hide, clear, result, error.
func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *Recorder) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

func (r *Recorder) Result() *render.ResultPanel {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result
}

func (r *Recorder) Error() *render.ErrorPanel {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}
