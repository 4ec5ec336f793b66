package server

import (
	"net/http"
	"os"
)

// requireAdminAPI protects destructive endpoints with an API key from the
// ADMIN_API_KEY environment variable. With no key set, those endpoints are
// disabled entirely.
func (s *Server) requireAdminAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminAPIKey := os.Getenv("ADMIN_API_KEY")

		if adminAPIKey == "" {
			s.log.Warn("Admin API accessed but ADMIN_API_KEY not set")
			s.respondError(w, http.StatusForbidden, "admin API is disabled; set ADMIN_API_KEY to enable")
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			s.respondError(w, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		if authHeader != "Bearer "+adminAPIKey {
			s.log.Warn("Invalid admin API key attempt", "remote_addr", r.RemoteAddr)
			s.respondError(w, http.StatusUnauthorized, "invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}
