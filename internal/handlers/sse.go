package handlers

import (
	"fmt"
	"net/http"

	"github.com/aaronzipp/imposter-party/internal/sse"
)

// HandleEvents streams session updates via Server-Sent Events so every
// open device follows phase changes.
func (ctx *Context) HandleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	client := make(chan sse.Message, 10)
	ctx.Hub.Add(client)
	defer ctx.Hub.Remove(client)

	// Confirm the stream is live before the first broadcast
	fmt.Fprint(w, "event: connected\ndata: ok\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-client:
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
			flusher.Flush()
		}
	}
}
