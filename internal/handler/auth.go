package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/weekwise/weekwise/internal/service"
	"github.com/weekwise/weekwise/internal/ui"
	"github.com/weekwise/weekwise/internal/ui/pages"
)

type authHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *authHandler {
	return &authHandler{authService: authService}
}

func (h *authHandler) AuthPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Auth())
}

// SendLoginCode handles both first sign-in and resend. The response is
// always the code step, so email enumeration learns nothing.
func (h *authHandler) SendLoginCode(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	if email == "" {
		ui.Render(w, r, pages.AuthEmailError("Email is required"))
		return
	}

	err := h.authService.SendLoginCode(email)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			ui.Render(w, r, pages.AuthEmailError("Please provide a valid email address"))
			return
		}
		slog.Error("failed to send login code", "error", err, "email", email)
		ui.Render(w, r, pages.AuthEmailError("Something went wrong. Please try again."))
		return
	}

	ui.Render(w, r, pages.AuthCodeStep(email))
}

func (h *authHandler) VerifyLoginCode(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	code := strings.TrimSpace(r.FormValue("code"))

	user, err := h.authService.VerifyLoginCode(email, code)
	if err != nil {
		slog.Warn("login code verification failed", "error", err, "email", email)
		ui.Render(w, r, pages.AuthCodeError(email, "Invalid or expired code. Please try again."))
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate JWT", "error", err, "user_id", user.ID)
		ui.Render(w, r, pages.AuthCodeError(email, "Something went wrong. Please try again."))
		return
	}

	h.authService.SetJWTCookie(w, token, h.authService.SessionExpiry())

	// The verify form posts via htmx, so a header redirect swaps the
	// whole page.
	w.Header().Set("HX-Redirect", "/app/reviews")
	w.WriteHeader(http.StatusOK)
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
