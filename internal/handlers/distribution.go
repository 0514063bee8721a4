package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aaronzipp/imposter-party/internal/game"
	"github.com/aaronzipp/imposter-party/internal/logger"
	"github.com/aaronzipp/imposter-party/internal/models"
	"github.com/aaronzipp/imposter-party/internal/render"
	"github.com/aaronzipp/imposter-party/internal/sse"
)

// HandleRoleCard shows one player's private role view.
func (ctx *Context) HandleRoleCard(w http.ResponseWriter, r *http.Request) {
	playerID := strings.TrimPrefix(r.URL.Path, "/card/")

	snap := ctx.Session.Snapshot()
	if snap.Phase != models.PhaseDistribution || snap.Round == nil {
		redirectHome(w, r)
		return
	}

	var player *models.Player
	for i := range snap.Players {
		if snap.Players[i].ID == playerID {
			player = &snap.Players[i]
			break
		}
	}
	if player == nil {
		http.Error(w, "Player not found", http.StatusNotFound)
		return
	}

	data := struct {
		Player       models.Player
		Round        models.RoundContent
		ShowCategory bool
		ShowHint     bool
	}{
		Player:       *player,
		Round:        *snap.Round,
		ShowCategory: snap.Settings.ShowCategoryToImposter,
		ShowHint:     snap.Settings.ShowHintToImposter,
	}
	ctx.Templates.ExecuteTemplate(w, "card.html", data)
}

// HandleMarkViewed records that a player has seen their role. When the
// last player confirms, the session advances to discussion on its own
// and every connected device is redirected.
func (ctx *Context) HandleMarkViewed(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	playerID := strings.TrimPrefix(r.URL.Path, "/viewed/")

	allViewed, err := ctx.Session.MarkViewed(playerID)
	if err != nil {
		if errors.Is(err, game.ErrUnknownPlayer) {
			http.Error(w, "Player not found", http.StatusNotFound)
			return
		}
		logger.Warnf("HandleMarkViewed: %v", err)
		redirectHome(w, r)
		return
	}

	if allViewed {
		ctx.Hub.Broadcast(sse.EventNavRedirect, render.RedirectSnippet("/"))
	} else {
		snap := ctx.Session.Snapshot()
		ctx.Hub.Broadcast(sse.EventPlayersUpdate, render.PlayerCards(snap.Players))
	}
	redirectHome(w, r)
}
