package handlers

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/aaronzipp/imposter-party/internal/logger"
)

// HandleShareQR serves a QR code of the server URL so players can pull
// the session up on their phones.
func (ctx *Context) HandleShareQR(w http.ResponseWriter, r *http.Request) {
	png, err := qrcode.Encode(ctx.BaseURL, qrcode.Medium, 256)
	if err != nil {
		logger.Errorf("HandleShareQR: %v", err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
