package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/weekwise/weekwise/internal/service"
)

// Content renders a static markdown page. The HTML comes from the
// markdown parser at startup, so it is written unescaped.
func Content(page *service.ContentPage) templ.Component {
	return layout(page.Title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString("<article class=\"content\">\n")
		sb.WriteString(page.Content)
		if page.LastUpdated != "" {
			fmt.Fprintf(&sb, "<p class=\"muted\">Last updated %s</p>\n", templ.EscapeString(page.LastUpdated))
		}
		sb.WriteString("</article>\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}))
}

// NotFound is the 404 page.
func NotFound() templ.Component {
	return layout("Not found", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<section class=\"not-found\">\n<h1>404</h1>\n<p>That page doesn't exist.</p>\n<a class=\"button\" href=\"/\">Back home</a>\n</section>\n")
		return err
	}))
}
