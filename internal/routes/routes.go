package routes

import (
	"io/fs"
	"net/http"

	"github.com/weekwise/weekwise/assets"
	"github.com/weekwise/weekwise/internal/app"
	"github.com/weekwise/weekwise/internal/handler"
	"github.com/weekwise/weekwise/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	home := handler.NewHomeHandler(app.ContentService)
	auth := handler.NewAuthHandler(app.AuthService)
	review := handler.NewReviewHandler(app.ReviewService)
	settings := handler.NewSettingsHandler(app.UserService, app.AuthService)

	mux := http.NewServeMux()

	// Static files
	sub, _ := fs.Sub(assets.AssetsFS, ".")
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))

	// Public pages
	mux.HandleFunc("GET /{$}", home.Home)
	mux.HandleFunc("GET /about", home.ContentPage)

	// Auth flow (code requests are rate limited, six digits brute-force
	// cheaply otherwise)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("GET /auth", middleware.RequireGuest(auth.AuthPage))
	mux.HandleFunc("POST /auth/code", rateLimiter(middleware.RequireGuest(auth.SendLoginCode)))
	mux.HandleFunc("POST /auth/verify", rateLimiter(middleware.RequireGuest(auth.VerifyLoginCode)))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// Weekly reviews
	mux.HandleFunc("GET /app/reviews", middleware.RequireAuth(review.ReviewsPage))
	mux.HandleFunc("POST /app/reviews", middleware.RequireAuth(review.Create))
	mux.HandleFunc("PATCH /app/reviews/{id}/entries/{goal}", middleware.RequireAuth(review.UpdateEntry))
	mux.HandleFunc("DELETE /app/reviews/{id}", middleware.RequireAuth(review.Reset))
	mux.HandleFunc("GET /app/reviews/history", middleware.RequireAuth(review.History))
	mux.HandleFunc("GET /app/reviews/export", middleware.RequireAuth(review.Export))

	// Settings
	mux.HandleFunc("GET /app/settings", middleware.RequireAuth(settings.SettingsPage))
	mux.HandleFunc("DELETE /app/account", middleware.RequireAuth(settings.DeleteAccount))

	// 404
	mux.HandleFunc("/{path...}", home.NotFound)

	// Global middleware, executed top to bottom
	return middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.Nonce,
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.Auth(app.AuthService, app.UserService),
		middleware.WithURLPath,
	)
}
