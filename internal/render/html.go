package render

import (
	htmlpkg "html"
	"strconv"
	"strings"

	"github.com/aaronzipp/imposter-party/internal/models"
)

// PlayerCards generates HTML for the distribution card grid (inner
// content only, for sse-swap). Unviewed players get a tappable card,
// viewed players a checked one.
func PlayerCards(players []models.Player) string {
	var b strings.Builder
	b.WriteString(`<div class="card-grid">`)
	for _, p := range players {
		name := htmlpkg.EscapeString(p.Name)
		if p.HasViewed {
			b.WriteString(`<div class="player-card viewed"><span class="player-name">`)
			b.WriteString(name)
			b.WriteString(`</span><span class="check">✓</span></div>`)
			continue
		}
		b.WriteString(`<button class="player-card" hx-get="/card/`)
		b.WriteString(p.ID)
		b.WriteString(`" hx-target="body" hx-swap="innerHTML"><span class="player-name">`)
		b.WriteString(name)
		b.WriteString(`</span><span class="tap-hint">tap to view</span></button>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// ViewedCount generates HTML for the viewed progress line.
func ViewedCount(viewed, total int) string {
	var b strings.Builder
	b.WriteString(`<p class="ready-count">`)
	b.WriteString(strconv.Itoa(viewed))
	b.WriteString(`/`)
	b.WriteString(strconv.Itoa(total))
	b.WriteString(` players have seen their role</p>`)
	return b.String()
}

// ErrorBanner generates HTML for the dismissible error banner. Empty
// message renders nothing so the banner slot clears.
func ErrorBanner(msg string) string {
	if msg == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="error-banner"><span>`)
	b.WriteString(htmlpkg.EscapeString(msg))
	b.WriteString(`</span><form hx-post="/dismiss-error" hx-swap="none"><button type="submit">✕</button></form></div>`)
	return b.String()
}

// RedirectSnippet returns an HTMX snippet that triggers a client-side
// redirect to the given path.
func RedirectSnippet(to string) string {
	var b strings.Builder
	b.WriteString(`<div hx-get="`)
	b.WriteString(to)
	b.WriteString(`" hx-trigger="load" hx-target="body" hx-push-url="true"></div>`)
	return b.String()
}
