package validate

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// bearerAuth guards the API with a shared secret. A missing token is
// distinguished from a wrong one so clients can tell the two apart.
func bearerAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, http.StatusUnauthorized, "Authorization token is required")
				return
			}

			presented := strings.TrimPrefix(header, "Bearer ")
			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				writeError(w, http.StatusForbidden, "Invalid authorization token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
