package middleware

import (
	"log/slog"
	"net/http"

	"Katta/services"
)

// RequireAuth gates the admin area. Anonymous requests are redirected to the
// login page rather than getting an error.
func RequireAuth(sessions *services.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sessions.CurrentUsername(r) == "" {
				slog.Info("unauthenticated admin request, redirecting to login", "path", r.URL.Path)
				http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
