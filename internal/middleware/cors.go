package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// preflightMaxAge is how long, in seconds, browsers may cache a preflight.
const preflightMaxAge = 600

// NewCORSHandler returns a middleware that applies CORS headers for the
// browser logbook shell. Each entry in allowedOrigins must be a full origin
// (scheme + host, no trailing slash). The export headers are exposed so the
// shell can read the download filename and detect the JSON fallback.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{"Content-Disposition", "X-Export-Fallback"},
		MaxAge:         preflightMaxAge,
	})
	return c.Handler
}
