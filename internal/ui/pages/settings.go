package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/weekwise/weekwise/internal/model"
)

// Settings shows account details, the export action and the danger zone.
func Settings(user *model.User) templ.Component {
	return layout("Settings", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString("<section class=\"settings\">\n<h1>Settings</h1>\n")

		sb.WriteString("<div class=\"card\">\n<h2>Account</h2>\n")
		fmt.Fprintf(&sb, "<p>Signed in as <strong>%s</strong></p>\n", templ.EscapeString(user.Email))
		if user.EmailVerifiedAt != nil {
			fmt.Fprintf(&sb, "<p class=\"muted\">Email verified %s</p>\n", user.EmailVerifiedAt.Format("January 2, 2006"))
		}
		sb.WriteString("</div>\n")

		sb.WriteString("<div class=\"card\">\n<h2>Your data</h2>\n")
		sb.WriteString("<p>Download every reviewed week of the current year as a Markdown file.</p>\n")
		sb.WriteString("<a class=\"button\" href=\"/app/reviews/export\" download>Export Markdown</a>\n")
		sb.WriteString("</div>\n")

		sb.WriteString("<div class=\"card danger-zone\">\n<h2>Danger zone</h2>\n")
		sb.WriteString("<p>Deleting your account removes all reviews permanently.</p>\n")
		fmt.Fprintf(&sb, "<form hx-delete=\"/app/account\" hx-confirm=\"Delete your account and all reviews? This cannot be undone.\">%s", csrfField(ctx))
		sb.WriteString("<button type=\"submit\" class=\"button danger\">Delete account</button>\n")
		sb.WriteString("</form>\n</div>\n")

		sb.WriteString("</section>\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}))
}
