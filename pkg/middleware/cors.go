package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS lets the storefront pages on allowedOrigins call the API with the
// session cookie.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           600,
	})
	return c.Handler
}
