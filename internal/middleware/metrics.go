package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestMetrics is the subset of metrics.Metrics the middleware needs.
type RequestMetrics interface {
	IncRequestsTotal(route string, status int)
	ObserveRequestDuration(route string, d time.Duration)
}

// NewMetrics returns a middleware that counts requests and observes their
// duration, labelled by the matched chi route pattern rather than the raw path
// to keep label cardinality bounded. Unmatched requests are labelled "unmatched".
func NewMetrics(m RequestMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.IncRequestsTotal(route, status)
			m.ObserveRequestDuration(route, time.Since(start))
		})
	}
}
