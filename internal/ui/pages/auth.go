package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Auth renders the email step of the passwordless sign-in flow.
func Auth() templ.Component {
	return layout("Sign in", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString("<section class=\"auth card\" id=\"auth-card\">\n")
		sb.WriteString("<h1>Sign in</h1>\n")
		sb.WriteString("<p>Enter your email and we'll send you a six-digit code. No password needed.</p>\n")
		sb.WriteString("<form hx-post=\"/auth/code\" hx-target=\"#auth-card\" hx-swap=\"outerHTML\">\n")
		sb.WriteString(csrfField(ctx))
		sb.WriteString("<label for=\"email\">Email</label>\n")
		sb.WriteString("<input type=\"email\" id=\"email\" name=\"email\" required autofocus autocomplete=\"email\">\n")
		sb.WriteString("<button type=\"submit\" class=\"button primary\">Send code</button>\n")
		sb.WriteString("</form>\n</section>\n")

		_, err := io.WriteString(w, sb.String())
		return err
	}))
}

// AuthCodeStep replaces the email form once a code is on its way. It is
// swapped in by htmx, so it renders without the layout shell.
func AuthCodeStep(email string) templ.Component {
	return authCodeStep(email, "")
}

// AuthCodeError re-renders the code step with an inline error message.
func AuthCodeError(email, message string) templ.Component {
	return authCodeStep(email, message)
}

func authCodeStep(email, errorMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString("<section class=\"auth card\" id=\"auth-card\">\n")
		sb.WriteString("<h1>Check your inbox</h1>\n")
		fmt.Fprintf(&sb, "<p>We sent a six-digit code to <strong>%s</strong>. It expires in 10 minutes.</p>\n", templ.EscapeString(email))
		if errorMessage != "" {
			fmt.Fprintf(&sb, "<p class=\"form-error\">%s</p>\n", templ.EscapeString(errorMessage))
		}
		sb.WriteString("<form hx-post=\"/auth/verify\" hx-target=\"#auth-card\" hx-swap=\"outerHTML\">\n")
		sb.WriteString(csrfField(ctx))
		fmt.Fprintf(&sb, "<input type=\"hidden\" name=\"email\" value=\"%s\">\n", templ.EscapeString(email))
		sb.WriteString("<label for=\"code\">Code</label>\n")
		sb.WriteString("<input type=\"text\" id=\"code\" name=\"code\" inputmode=\"numeric\" pattern=\"[0-9]{6}\" maxlength=\"6\" required autofocus autocomplete=\"one-time-code\">\n")
		sb.WriteString("<button type=\"submit\" class=\"button primary\">Verify</button>\n")
		sb.WriteString("</form>\n")
		sb.WriteString("<form hx-post=\"/auth/code\" hx-target=\"#auth-card\" hx-swap=\"outerHTML\" class=\"auth-resend\">\n")
		sb.WriteString(csrfField(ctx))
		fmt.Fprintf(&sb, "<input type=\"hidden\" name=\"email\" value=\"%s\">\n", templ.EscapeString(email))
		sb.WriteString("<button type=\"submit\" class=\"link\">Resend code</button>\n")
		sb.WriteString("</form>\n</section>\n")

		_, err := io.WriteString(w, sb.String())
		return err
	})
}

// AuthEmailError re-renders the email step with an inline error.
func AuthEmailError(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString("<section class=\"auth card\" id=\"auth-card\">\n")
		sb.WriteString("<h1>Sign in</h1>\n")
		fmt.Fprintf(&sb, "<p class=\"form-error\">%s</p>\n", templ.EscapeString(message))
		sb.WriteString("<form hx-post=\"/auth/code\" hx-target=\"#auth-card\" hx-swap=\"outerHTML\">\n")
		sb.WriteString(csrfField(ctx))
		sb.WriteString("<label for=\"email\">Email</label>\n")
		sb.WriteString("<input type=\"email\" id=\"email\" name=\"email\" required autofocus autocomplete=\"email\">\n")
		sb.WriteString("<button type=\"submit\" class=\"button primary\">Send code</button>\n")
		sb.WriteString("</form>\n</section>\n")

		_, err := io.WriteString(w, sb.String())
		return err
	})
}
