package middleware

import (
	"net/http"

	"github.com/weekwise/weekwise/internal/config"
	"github.com/weekwise/weekwise/internal/ctxkeys"
)

// Config puts the sanitized app configuration on the request context so
// views can read app name, environment and tagline. Secrets are stripped.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), cfg.Sanitized())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
