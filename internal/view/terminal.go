package view

import (
	"fmt"
	"io"
	"sync"

	"github.com/sozercan/verdict/internal/render"
)

var ansi = map[render.Accent]string{
	render.AccentGreen: "\x1b[32m",
	render.AccentRed:   "\x1b[31m",
	render.AccentAmber: "\x1b[33m",
	render.AccentError: "\x1b[91m",
}

const ansiReset = "\x1b[0m"

// Terminal renders panels as text lines.
type Terminal struct {
	mu      sync.Mutex
	w       io.Writer
	color   bool
	raw     bool
	loading bool
}

type TerminalOption func(*Terminal)

// WithColor enables ANSI accents.
func WithColor(enabled bool) TerminalOption {
	return func(t *Terminal) { t.color = enabled }
}

// WithRawPacket expands the raw payload viewer under every result.
func WithRawPacket(enabled bool) TerminalOption {
	return func(t *Terminal) { t.raw = enabled }
}

func NewTerminal(w io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{w: w}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Terminal) paint(accent render.Accent, s string) string {
	if !t.color {
		return s
	}
	return ansi[accent] + s + ansiReset
}

func (t *Terminal) ShowLoading() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loading = true
	fmt.Fprintln(t.w, "Verifying...")
}

func (t *Terminal) HideLoading() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loading = false
}

// Clear is a no-op: earlier output stays in the scrollback.
func (t *Terminal) Clear() {}

func (t *Terminal) ShowResult(panel render.ResultPanel) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.w, "Our Intelligence thinks that this query is %s with this much confidence (%s).\n",
		t.paint(panel.Accent, panel.Label), panel.Percent)
	fmt.Fprintln(t.w, panel.Hint)

	if panel.Raw == nil {
		return
	}
	if t.raw && !panel.Raw.Expanded() {
		panel.Raw.Toggle()
	}
	fmt.Fprintln(t.w, panel.Raw.Label())
	if panel.Raw.Expanded() {
		fmt.Fprintln(t.w, panel.Raw.Payload())
	}
}

func (t *Terminal) ShowError(panel render.ErrorPanel) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.w, "%s %s\n", t.paint(panel.Accent(), render.ErrorTitle), panel.Message)
	fmt.Fprintln(t.w, panel.Hint())
}

func (t *Terminal) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}
