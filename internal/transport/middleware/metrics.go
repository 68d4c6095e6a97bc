package middleware

import (
	"net/http"
	"time"
)

type httpObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

const unmatchedRoute = "unmatched"

// Metrics records request count and latency per route pattern. Unknown
// routes share one label.
func Metrics(observer httpObserver, route RouteFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			label := route(r)
			if label == "" {
				label = unmatchedRoute
			}
			observer.ObserveHTTP(r.Method, label, sw.status, time.Since(start))
		})
	}
}
