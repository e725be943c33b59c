package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server tuned for this service: validation requests are
// small and synchronous, so slow clients get cut off aggressively.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
