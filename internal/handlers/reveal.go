package handlers

import (
	"net/http"

	"github.com/aaronzipp/imposter-party/internal/logger"
	"github.com/aaronzipp/imposter-party/internal/render"
	"github.com/aaronzipp/imposter-party/internal/sse"
)

// HandleReveal ends the discussion and shows the reveal screen.
func (ctx *Context) HandleReveal(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	if err := ctx.Session.Reveal(); err != nil {
		logger.Warnf("HandleReveal: %v", err)
		redirectHome(w, r)
		return
	}

	ctx.Hub.Broadcast(sse.EventNavRedirect, render.RedirectSnippet("/"))
	redirectHome(w, r)
}

// HandlePlayAgain starts a fresh round with the same roster and settings.
func (ctx *Context) HandlePlayAgain(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	if err := ctx.Session.PlayAgain(r.Context()); err != nil {
		logger.Warnf("HandlePlayAgain: %v", err)
	}

	ctx.Hub.Broadcast(sse.EventNavRedirect, render.RedirectSnippet("/"))
	redirectHome(w, r)
}

// HandleChangeSettings returns to the setup screen.
func (ctx *Context) HandleChangeSettings(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	if err := ctx.Session.ChangeSettings(); err != nil {
		logger.Warnf("HandleChangeSettings: %v", err)
	}

	ctx.Hub.Broadcast(sse.EventNavRedirect, render.RedirectSnippet("/"))
	redirectHome(w, r)
}

// HandleDismissError clears the current error banner.
func (ctx *Context) HandleDismissError(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	ctx.Session.ClearError()
	ctx.Hub.Broadcast(sse.EventErrorMessage, "")
	w.WriteHeader(http.StatusOK)
}
