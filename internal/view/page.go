package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"

	"github.com/sozercan/verdict/internal/render"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplates = template.Must(template.New("page").Funcs(template.FuncMap{
	"collapsedLabel": func() string { return render.CollapsedLabel },
	"expandedLabel":  func() string { return render.ExpandedLabel },
	"errorTitle":     func() string { return render.ErrorTitle },
}).ParseFS(templateFS, "templates/*.html"))

// StaticFS holds the stylesheet, rooted so that "style.css" resolves.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// PageData fills the query form at the top of the page.
type PageData struct {
	Query string
}

// Page streams the query page to a browser. Each view call writes its
// fragment and flushes, so the loader shows while the verification runs
// and is hidden by a later style block.
type Page struct {
	mu      sync.Mutex
	w       io.Writer
	flusher http.Flusher
	err     error
}

func NewPage(w io.Writer) *Page {
	p := &Page{w: w}
	if f, ok := w.(http.Flusher); ok {
		p.flusher = f
	}
	return p
}

func (p *Page) execute(name string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return
	}
	if err := pageTemplates.ExecuteTemplate(p.w, name, data); err != nil {
		slog.Error("Failed to render page fragment", "fragment", name, "error", err)
		p.err = err
		return
	}
	if p.flusher != nil {
		p.flusher.Flush()
	}
}

// Open writes everything up to the response area.
func (p *Page) Open(data PageData) {
	p.execute("open", data)
}

// Close ends the document.
func (p *Page) Close() {
	p.execute("close", nil)
}

func (p *Page) ShowLoading() {
	p.execute("loader", nil)
}

func (p *Page) HideLoading() {
	p.execute("hide-loader", nil)
}

// Clear is a no-op: a fresh page has no earlier results to remove.
func (p *Page) Clear() {}

func (p *Page) ShowResult(panel render.ResultPanel) {
	p.execute("result", panel)
}

func (p *Page) ShowError(panel render.ErrorPanel) {
	p.execute("error", panel)
}

// Err returns the first write or template error.
func (p *Page) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// RenderIdle writes the page with an empty response area.
func RenderIdle(w io.Writer, data PageData) error {
	p := NewPage(w)
	p.Open(data)
	p.Close()
	return p.Err()
}
