package middleware

import (
	"net/http"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/auth"
)

// RequireRole rejects requests whose authenticated user does not carry the
// given role. It must run after UserTokenAuth.
func RequireRole(role auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := r.Context().Value(USER).(auth.User)
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte("missing user"))
				return
			}
			if user.Role != role {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte("forbidden"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
