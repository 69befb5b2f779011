package middleware

import (
	"net/http"
	"time"
)

type requestRecorder interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

// Metrics records every request against the matched mux pattern. It must
// wrap the ServeMux directly so the request it holds is the one the mux
// annotates with Pattern.
func Metrics(rec requestRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			rec.ObserveRequest(r.Method, route, sw.status, time.Since(start))
		})
	}
}
