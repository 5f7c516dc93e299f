package middleware

import (
	"net/http"

	"github.com/weekwise/weekwise/internal/ctxkeys"
)

// WithURLPath adds the current URL's path to the context. The nav
// highlights the active item with it.
func WithURLPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := ctxkeys.WithURLPath(r.Context(), r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
