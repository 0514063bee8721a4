package handlers

import (
	"html/template"
	"net/http"

	"github.com/aaronzipp/imposter-party/internal/game"
	"github.com/aaronzipp/imposter-party/internal/sse"
)

// Context holds shared application dependencies
type Context struct {
	Session   *game.Session
	Templates *template.Template
	Hub       *sse.Hub
	BaseURL   string
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// redirectHome tells htmx (or a plain browser) to reload the phase page.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
