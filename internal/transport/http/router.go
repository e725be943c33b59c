// Package httptransport assembles the public HTTP surface. It owns routing and
// middleware only; feature handlers keep the transport logic for their own
// endpoints.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mpinguard/pkg/platform/httputil"
	"mpinguard/pkg/platform/middleware/requestid"
	"mpinguard/pkg/platform/middleware/requesttime"
)

// Registerer is implemented by feature handlers that mount their own routes.
type Registerer interface {
	Register(r chi.Router)
}

// NewRouter wires the middleware chain, operational endpoints, and every
// feature handler onto one router.
func NewRouter(handlers ...Registerer) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)

	r.Get("/healthz", handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	for _, h := range handlers {
		h.Register(r)
	}
	return r
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
