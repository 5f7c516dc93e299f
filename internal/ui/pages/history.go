package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/weekwise/weekwise/internal/markdown"
	"github.com/weekwise/weekwise/internal/model"
	"github.com/weekwise/weekwise/internal/week"
)

// History lists past reviews, newest first. Empty placeholder records are
// filtered out before this renders.
func History(reviews []*model.Review) templ.Component {
	return layout("History", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString("<section class=\"history\">\n")
		sb.WriteString("<header class=\"history-header\">\n<h1>History</h1>\n")
		sb.WriteString("<a class=\"button\" href=\"/app/reviews/export\" download>Export Markdown</a>\n")
		sb.WriteString("</header>\n")

		if len(reviews) == 0 {
			sb.WriteString("<p class=\"empty\">No reviews yet. Start your first weekly review!</p>\n")
			sb.WriteString("</section>\n")
			_, err := io.WriteString(w, sb.String())
			return err
		}

		// Newest first for reading, the repo returns oldest first.
		for i := len(reviews) - 1; i >= 0; i-- {
			writeHistoryEntry(&sb, reviews[i])
		}

		sb.WriteString("</section>\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}))
}

func writeHistoryEntry(sb *strings.Builder, r *model.Review) {
	sb.WriteString("<article class=\"history-entry card\">\n")
	fmt.Fprintf(sb, "<h2>Week %d <span class=\"week-range\">%s</span></h2>\n",
		r.WeekNumber, templ.EscapeString(week.FormatRange(r.WeekStart, r.WeekEnd)))

	for _, g := range model.Goals {
		entry := r.Entry(g.Key)
		if entry == nil || strings.TrimSpace(*entry) == "" {
			continue
		}
		fmt.Fprintf(sb, "<h3>%s %s</h3>\n", g.Emoji, templ.EscapeString(g.Label))
		fmt.Fprintf(sb, "<div class=\"entry-text\">%s</div>\n", entryHTML(*entry))
	}

	sb.WriteString("</article>\n")
}

var entryParser = markdown.NewParser()

// entryHTML renders an entry's markdown. Raw HTML in entries stays
// escaped by the parser.
func entryHTML(entry string) string {
	html, err := entryParser.Parse([]byte(entry))
	if err != nil {
		return templ.EscapeString(entry)
	}
	return string(html)
}
