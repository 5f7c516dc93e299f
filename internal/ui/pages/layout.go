// Package pages holds the server-rendered views. Components write HTML
// directly; dynamic values always pass through templ.EscapeString.
package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/weekwise/weekwise/internal/ctxkeys"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// layout wraps a page body with the document shell, nav and toast region.
func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		appName := "Weekwise"
		if cfg := ctxkeys.Config(ctx); cfg != nil && cfg.AppName != "" {
			appName = cfg.AppName
		}

		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
		b.WriteString("<meta charset=\"utf-8\">\n")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		fmt.Fprintf(&b, "<meta name=\"csrf-token\" content=\"%s\">\n", templ.EscapeString(ctxkeys.CSRFToken(ctx)))
		fmt.Fprintf(&b, "<title>%s · %s</title>\n", templ.EscapeString(title), templ.EscapeString(appName))
		b.WriteString("<link rel=\"stylesheet\" href=\"/assets/css/app.css\">\n")
		fmt.Fprintf(&b, "<script src=\"%s\" nonce=\"%s\" defer></script>\n", htmxSrc, templ.EscapeString(templ.GetNonce(ctx)))
		b.WriteString("</head>\n<body hx-headers='{\"X-CSRF-Token\": \"")
		b.WriteString(templ.EscapeString(ctxkeys.CSRFToken(ctx)))
		b.WriteString("\"}'>\n")

		writeNav(&b, ctx, appName)
		b.WriteString("<div id=\"toast-region\" class=\"toast-region\"></div>\n")
		b.WriteString("<main class=\"container\">\n")

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}

func writeNav(b *strings.Builder, ctx context.Context, appName string) {
	user := ctxkeys.User(ctx)
	path := ctxkeys.URLPath(ctx)

	b.WriteString("<nav class=\"nav\">\n")
	fmt.Fprintf(b, "<a class=\"nav-brand\" href=\"/\">%s</a>\n", templ.EscapeString(appName))
	b.WriteString("<div class=\"nav-links\">\n")

	if user == nil {
		writeNavLink(b, path, "/about", "About")
		writeNavLink(b, path, "/auth", "Sign in")
	} else {
		writeNavLink(b, path, "/app/reviews", "This week")
		writeNavLink(b, path, "/app/reviews/history", "History")
		writeNavLink(b, path, "/app/settings", "Settings")
		b.WriteString("<form method=\"post\" action=\"/auth/logout\" class=\"nav-logout\">")
		fmt.Fprintf(b, "<input type=\"hidden\" name=\"csrf_token\" value=\"%s\">", templ.EscapeString(ctxkeys.CSRFToken(ctx)))
		b.WriteString("<button type=\"submit\" class=\"link\">Sign out</button></form>\n")
	}

	b.WriteString("</div>\n</nav>\n")
}

func writeNavLink(b *strings.Builder, currentPath, href, label string) {
	class := "nav-link"
	if currentPath == href {
		class += " active"
	}
	fmt.Fprintf(b, "<a class=\"%s\" href=\"%s\">%s</a>\n", class, href, templ.EscapeString(label))
}

// csrfField renders the hidden input plain forms submit.
func csrfField(ctx context.Context) string {
	return fmt.Sprintf(`<input type="hidden" name="csrf_token" value="%s">`, templ.EscapeString(ctxkeys.CSRFToken(ctx)))
}
