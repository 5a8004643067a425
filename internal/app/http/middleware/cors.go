package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// CORS takes a comma-separated origin list, "*" for any.
func CORS(allowOrigin string) func(http.Handler) http.Handler {
	var origins []string
	for _, o := range strings.Split(allowOrigin, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		// downloads read the filename from here
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	})
}
