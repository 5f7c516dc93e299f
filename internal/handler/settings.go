package handler

import (
	"log/slog"
	"net/http"

	"github.com/weekwise/weekwise/internal/ctxkeys"
	"github.com/weekwise/weekwise/internal/service"
	"github.com/weekwise/weekwise/internal/ui"
	"github.com/weekwise/weekwise/internal/ui/pages"
)

type settingsHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewSettingsHandler(userService *service.UserService, authService *service.AuthService) *settingsHandler {
	return &settingsHandler{
		userService: userService,
		authService: authService,
	}
}

func (h *settingsHandler) SettingsPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	ui.Render(w, r, pages.Settings(user))
}

// DeleteAccount removes the user and, via cascade, every review. The
// session cookie is cleared and the browser sent home.
func (h *settingsHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.userService.DeleteAccount(user.ID)
	if err != nil {
		slog.Error("failed to delete account", "error", err, "user_id", user.ID)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.authService.ClearJWTCookie(w)

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
