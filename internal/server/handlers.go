package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sozercan/verdict/internal/query"
	"github.com/sozercan/verdict/internal/view"
)

const htmlContentType = "text/html; charset=utf-8"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", htmlContentType)
	if err := view.RenderIdle(w, view.PageData{}); err != nil {
		slog.Error("Failed to render index", "error", err)
	}
}

// handleQuery streams the page: form, loader, then the verdict or error
// panel once the verification API answers.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	text := strings.TrimSpace(r.PostFormValue("query"))
	w.Header().Set("Content-Type", htmlContentType)

	if text == "" {
		if err := view.RenderIdle(w, view.PageData{}); err != nil {
			slog.Error("Failed to render index", "error", err)
		}
		return
	}

	page := view.NewPage(w)
	page.Open(view.PageData{Query: text})

	err := query.New(s.verifier, page).Submit(r.Context(), text)
	if err != nil && !errors.Is(err, query.ErrSuperseded) {
		slog.Debug("Query rendered with error panel", "error", err)
	}

	page.Close()
	if err := page.Err(); err != nil {
		slog.Warn("Page stream interrupted", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.Error("Health check request failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
