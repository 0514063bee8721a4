package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aaronzipp/imposter-party/internal/game"
	"github.com/aaronzipp/imposter-party/internal/logger"
	"github.com/aaronzipp/imposter-party/internal/models"
	"github.com/aaronzipp/imposter-party/internal/render"
	"github.com/aaronzipp/imposter-party/internal/sse"
)

// HandleStartGame validates the setup form and starts a new round.
func (ctx *Context) HandleStartGame(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	r.ParseForm()
	names := r.Form["player"]
	settings := parseSettings(r)

	if err := ctx.Session.StartGame(r.Context(), names, settings); err != nil {
		if errors.Is(err, game.ErrInvalidTransition) {
			http.Error(w, "A round is already in progress", http.StatusConflict)
			return
		}
		// Validation errors: the session recorded the user-visible
		// message, reloading the setup page shows it.
		logger.Warnf("HandleStartGame: %v", err)
		redirectHome(w, r)
		return
	}

	ctx.Hub.Broadcast(sse.EventNavRedirect, render.RedirectSnippet("/"))
	redirectHome(w, r)
}

// parseSettings reads the settings fields from the setup form, clamping
// out-of-range values to the original slider/button bounds.
func parseSettings(r *http.Request) models.Settings {
	settings := models.DefaultSettings()

	if enabled := r.Form["category"]; len(enabled) > 0 || r.Form.Has("categories-submitted") {
		for c := range settings.Categories {
			settings.Categories[c] = false
		}
		for _, c := range enabled {
			settings.Categories[c] = true
		}
	}

	if n, err := strconv.Atoi(r.FormValue("imposters")); err == nil {
		settings.ImposterCount = clamp(n, 1, 3)
	}
	if n, err := strconv.Atoi(r.FormValue("difficulty")); err == nil {
		settings.HintDifficulty = clamp(n, 1, 10)
	}
	settings.ShowCategoryToImposter = r.FormValue("show_category") != ""
	settings.ShowHintToImposter = r.FormValue("show_hint") != ""
	return settings
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
