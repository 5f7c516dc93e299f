package pages

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/weekwise/weekwise/internal/ctxkeys"
	"github.com/weekwise/weekwise/internal/model"
	"github.com/weekwise/weekwise/internal/week"
)

// Home is the public landing page.
func Home() templ.Component {
	return layout("Home", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tagline := "One honest check-in per week"
		if cfg := ctxkeys.Config(ctx); cfg != nil && cfg.AppTagline != "" {
			tagline = cfg.AppTagline
		}

		now := time.Now()
		b := week.Current()

		var sb strings.Builder
		sb.WriteString("<section class=\"hero\">\n")
		fmt.Fprintf(&sb, "<h1>%s</h1>\n", templ.EscapeString(tagline))
		fmt.Fprintf(&sb, "<p class=\"hero-week\">Week %d · %s</p>\n", week.Number(b.Start), templ.EscapeString(week.FormatRange(b.Start, b.End)))
		writeYearProgress(&sb, now)
		sb.WriteString("<ul class=\"goal-list\">\n")
		for _, g := range model.Goals {
			fmt.Fprintf(&sb, "<li class=\"goal goal-%s\">%s %s</li>\n",
				templ.EscapeString(g.Color), g.Emoji, templ.EscapeString(g.Label))
		}
		sb.WriteString("</ul>\n")
		sb.WriteString("<a class=\"button primary\" href=\"/auth\">Start this week's review</a>\n")
		sb.WriteString("</section>\n")

		_, err := io.WriteString(w, sb.String())
		return err
	}))
}

func writeYearProgress(sb *strings.Builder, now time.Time) {
	pct := week.YearProgress(now) * 100
	fmt.Fprintf(sb, "<div class=\"year-progress\" title=\"%.0f%% of %d\"><div class=\"year-progress-fill\" style=\"width: %.1f%%\"></div></div>\n",
		pct, now.Year(), pct)
}
