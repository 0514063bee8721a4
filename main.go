package main

import (
	"html/template"
	"math/rand"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aaronzipp/imposter-party/internal/config"
	"github.com/aaronzipp/imposter-party/internal/content"
	"github.com/aaronzipp/imposter-party/internal/game"
	"github.com/aaronzipp/imposter-party/internal/handlers"
	"github.com/aaronzipp/imposter-party/internal/logger"
	"github.com/aaronzipp/imposter-party/internal/sse"
)

func main() {
	// .env is optional; real deployments set the environment directly
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	templates, err := template.ParseGlob("templates/*.html")
	if err != nil {
		logger.Fatalf("Failed to parse templates: %v", err)
	}

	provider := content.NewOpenAIProvider(content.OpenAIConfig{
		CompletionsURL: cfg.ContentAPIURL,
		APIKey:         cfg.ContentAPIKey,
		Model:          cfg.ContentModel,
		HTTPClient:     &http.Client{Timeout: cfg.ContentTimeout},
	})

	// Separate sources: math/rand.Rand is not safe for concurrent use and
	// the client runs outside the session lock.
	client := content.NewClient(provider, rand.New(rand.NewSource(time.Now().UnixNano())))
	session := game.NewSession(client, rand.New(rand.NewSource(time.Now().UnixNano())))
	hub := sse.NewHub()

	ctx := &handlers.Context{
		Session:   session,
		Templates: templates,
		Hub:       hub,
		BaseURL:   cfg.BaseURL,
	}

	// Routes
	http.HandleFunc("/", ctx.HandleIndex)
	http.HandleFunc("/start", ctx.HandleStartGame)
	http.HandleFunc("/card/", ctx.HandleRoleCard)
	http.HandleFunc("/viewed/", ctx.HandleMarkViewed)
	http.HandleFunc("/reveal", ctx.HandleReveal)
	http.HandleFunc("/play-again", ctx.HandlePlayAgain)
	http.HandleFunc("/change-settings", ctx.HandleChangeSettings)
	http.HandleFunc("/dismiss-error", ctx.HandleDismissError)
	http.HandleFunc("/events", ctx.HandleEvents)
	http.HandleFunc("/share/qr", ctx.HandleShareQR)
	http.Handle("/metrics", promhttp.Handler())

	// Static files
	http.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	logger.Infof("Server starting on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}
}
