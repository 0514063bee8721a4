package handlers

import (
	"html/template"
	"net/http"

	"github.com/aaronzipp/imposter-party/internal/game"
	"github.com/aaronzipp/imposter-party/internal/models"
	"github.com/aaronzipp/imposter-party/internal/render"
)

// HandleIndex serves the page for the session's current phase.
func (ctx *Context) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	snap := ctx.Session.Snapshot()

	switch snap.Phase {
	case models.PhaseLoading:
		ctx.Templates.ExecuteTemplate(w, "loading.html", nil)
	case models.PhaseDistribution:
		ctx.Templates.ExecuteTemplate(w, "distribution.html", distributionData(snap))
	case models.PhaseDiscussion:
		ctx.Templates.ExecuteTemplate(w, "discussion.html", nil)
	case models.PhaseReveal:
		data := struct {
			Players []models.Player
			Round   *models.RoundContent
			Stats   models.SessionStats
			Error   string
		}{snap.Players, snap.Round, snap.Stats, snap.Error}
		ctx.Templates.ExecuteTemplate(w, "reveal.html", data)
	default:
		data := struct {
			Categories []string
			Settings   models.Settings
			Error      string
		}{models.Categories, snap.Settings, snap.Error}
		ctx.Templates.ExecuteTemplate(w, "setup.html", data)
	}
}

func distributionData(snap game.Snapshot) any {
	viewed := 0
	for _, p := range snap.Players {
		if p.HasViewed {
			viewed++
		}
	}
	return struct {
		Players   []models.Player
		CardsHTML template.HTML
		Viewed    int
		Total     int
		Error     string
	}{snap.Players, template.HTML(render.PlayerCards(snap.Players)), viewed, len(snap.Players), snap.Error}
}
