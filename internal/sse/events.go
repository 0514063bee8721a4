package sse

// SSE event type constants
const (
	EventNavRedirect   = "nav-redirect"
	EventPlayersUpdate = "players-update"
	EventErrorMessage  = "error-message"
)
