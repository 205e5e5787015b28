package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/mailfleet/mailfleet/pkg/logger"
)

// RecoverMiddleware turns handler panics into 500 responses instead of
// killing the connection.
func RecoverMiddleware(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.WithFields(map[string]interface{}{
						"path":  r.URL.Path,
						"panic": fmt.Sprintf("%v", rec),
					}).Error(string(debug.Stack()))
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
