// Package requestid assigns every request a unique identifier for log and
// trace correlation.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"mpinguard/pkg/requestcontext"
)

// Header carries the request ID back to the client and accepts one supplied
// by an upstream proxy.
const Header = "X-Request-Id"

// Middleware reuses an inbound X-Request-Id when present, otherwise mints a
// UUID, and exposes the value via requestcontext and the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
