package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

const bearerPrefix = "Bearer "

// TriggerAuth requires "Authorization: Bearer <token>" on POST requests.
// Reads stay open. An empty token disables the check.
func TriggerAuth(token string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) ||
				subtle.ConstantTimeCompare([]byte(strings.TrimPrefix(header, bearerPrefix)), []byte(token)) != 1 {
				w.Header().Set("WWW-Authenticate", `Bearer realm="disparo"`)
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, errorBody(ErrorCodeUnauthorized, ErrorMessageUnauthorized))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
