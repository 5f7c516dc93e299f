package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/weekwise/weekwise/internal/model"
	"github.com/weekwise/weekwise/internal/week"
)

// WeekOption is one entry in the week picker.
type WeekOption struct {
	Bounds    week.Bounds
	HasReview bool
}

// weekParam is the ?week= value identifying a week by its Monday.
func weekParam(b week.Bounds) string {
	return b.Start.Format("2006-01-02")
}

// Reviews is the weekly review editor page.
func Reviews(selected week.Bounds, review *model.Review, options []WeekOption) templ.Component {
	return layout("Weekly review", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString("<section class=\"reviews\">\n")
		fmt.Fprintf(&sb, "<h1>Week %d</h1>\n", week.Number(selected.Start))
		fmt.Fprintf(&sb, "<p class=\"week-range\">%s</p>\n", templ.EscapeString(week.FormatRange(selected.Start, selected.End)))
		writeWeekPicker(&sb, selected, options)

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
		if err := ReviewEditor(selected, review).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</section>\n")
		return err
	}))
}

func writeWeekPicker(sb *strings.Builder, selected week.Bounds, options []WeekOption) {
	sb.WriteString("<nav class=\"week-picker\">\n")
	for _, opt := range options {
		class := "week-chip"
		if opt.Bounds.Start.Equal(selected.Start) {
			class += " selected"
		}
		if opt.HasReview {
			class += " has-review"
		}

		label := fmt.Sprintf("W%d", week.Number(opt.Bounds.Start))
		if week.IsCurrent(opt.Bounds.Start) {
			label = "This week"
		}

		fmt.Fprintf(sb, "<a class=\"%s\" href=\"/app/reviews?week=%s\" title=\"%s\">%s</a>\n",
			class,
			weekParam(opt.Bounds),
			templ.EscapeString(week.FormatRange(opt.Bounds.Start, opt.Bounds.End)),
			templ.EscapeString(label),
		)
	}
	sb.WriteString("</nav>\n")
}

// ReviewEditor renders the editor body for one week: a start prompt when
// no review exists yet, otherwise the three goal forms. Swapped whole on
// create and reset.
func ReviewEditor(b week.Bounds, review *model.Review) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString("<div id=\"review-editor\" class=\"review-editor\">\n")

		if review == nil {
			sb.WriteString("<div class=\"start-prompt card\">\n")
			sb.WriteString("<p>No review for this week yet.</p>\n")
			fmt.Fprintf(&sb, "<form hx-post=\"/app/reviews\" hx-target=\"#review-editor\" hx-swap=\"outerHTML\">%s", csrfField(ctx))
			fmt.Fprintf(&sb, "<input type=\"hidden\" name=\"week\" value=\"%s\">\n", weekParam(b))
			sb.WriteString("<button type=\"submit\" class=\"button primary\">Start weekly review</button>\n")
			sb.WriteString("</form>\n</div>\n</div>\n")
			_, err := io.WriteString(w, sb.String())
			return err
		}

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
		if err := ReviewProgress(review).Render(ctx, w); err != nil {
			return err
		}
		for _, g := range model.Goals {
			if err := GoalEntryForm(review, g, false).Render(ctx, w); err != nil {
				return err
			}
		}

		var foot strings.Builder
		foot.WriteString("<div class=\"review-actions\">\n")
		fmt.Fprintf(&foot, "<form hx-delete=\"/app/reviews/%s\" hx-target=\"#review-editor\" hx-swap=\"outerHTML\" hx-confirm=\"Reset this week? All three entries will be deleted.\">%s",
			templ.EscapeString(review.ID), csrfField(ctx))
		foot.WriteString("<button type=\"submit\" class=\"button danger\">Reset week</button>\n")
		foot.WriteString("</form>\n</div>\n</div>\n")
		_, err := io.WriteString(w, foot.String())
		return err
	})
}

// ReviewProgress shows how many of the three goals have an entry.
func ReviewProgress(review *model.Review) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		count := review.CompletionCount()
		class := "review-progress"
		if review.IsComplete() {
			class += " complete"
		}
		_, err := fmt.Fprintf(w, "<div id=\"review-progress\" class=\"%s\">%d/3 goals reviewed</div>\n", class, count)
		return err
	})
}

// GoalEntryForm is one goal's reflection form. saved briefly flags the
// just-persisted state after a PATCH.
func GoalEntryForm(review *model.Review, goal model.Goal, saved bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		entry := ""
		if v := review.Entry(goal.Key); v != nil {
			entry = *v
		}

		formID := "goal-form-" + goal.Key
		class := "goal-form card goal-" + goal.Color
		if saved {
			class += " saved"
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "<form id=\"%s\" class=\"%s\" hx-patch=\"/app/reviews/%s/entries/%s\" hx-target=\"#%s\" hx-swap=\"outerHTML\">\n",
			formID, templ.EscapeString(class), templ.EscapeString(review.ID), goal.Key, formID)
		sb.WriteString(csrfField(ctx))
		fmt.Fprintf(&sb, "<h2>%s %s</h2>\n", goal.Emoji, templ.EscapeString(goal.Label))
		fmt.Fprintf(&sb, "<textarea name=\"entry\" rows=\"4\" placeholder=\"How did this go this week?\">%s</textarea>\n", templ.EscapeString(entry))
		sb.WriteString("<button type=\"submit\" class=\"button\">Save</button>\n")
		if saved {
			sb.WriteString("<span class=\"saved-hint\">Saved</span>\n")
		}
		sb.WriteString("</form>\n")

		_, err := io.WriteString(w, sb.String())
		return err
	})
}
