package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/weekwise/weekwise/internal/model"
	"github.com/weekwise/weekwise/internal/week"
)

// Export is a rendered Markdown document of a user's reviews. Count is the
// number of reviews actually included after empty ones are dropped, so the
// caller can report "Exported N reviews" distinctly from an empty file.
type Export struct {
	Markdown string
	Count    int
	Filename string
}

// BuildExport serializes reviews (oldest first) to a single Markdown
// document. Reviews without content are dropped; within a review, goals
// without an entry are omitted entirely rather than shown blank. With zero
// qualifying reviews the document still renders, with a notice instead of
// week sections.
func BuildExport(reviews []*model.Review, now time.Time) Export {
	included := FilterNonEmpty(reviews)

	var b strings.Builder
	fmt.Fprintf(&b, "# Weekly Reviews %d\n\n", now.Year())
	fmt.Fprintf(&b, "Exported on %s\n\n", now.Format("January 2, 2006"))
	b.WriteString("---\n\n")

	if len(included) == 0 {
		b.WriteString("*No reviews yet. Start your first weekly review!*\n")
		return Export{
			Markdown: b.String(),
			Count:    0,
			Filename: "weekly-reviews.md",
		}
	}

	for _, r := range included {
		writeReview(&b, r)
		b.WriteString("---\n\n")
	}

	plural := "s"
	if len(included) == 1 {
		plural = ""
	}
	fmt.Fprintf(&b, "*%d week%s reviewed*\n", len(included), plural)

	return Export{
		Markdown: b.String(),
		Count:    len(included),
		Filename: fmt.Sprintf("weekly-reviews-%d.md", now.Year()),
	}
}

func writeReview(b *strings.Builder, r *model.Review) {
	fmt.Fprintf(b, "## Week %d — %s\n\n", r.WeekNumber, week.FormatRange(r.WeekStart, r.WeekEnd))

	for _, g := range model.Goals {
		entry := r.Entry(g.Key)
		if entry == nil || strings.TrimSpace(*entry) == "" {
			continue
		}
		fmt.Fprintf(b, "### %s %s\n", g.Emoji, g.Label)
		fmt.Fprintf(b, "%s\n\n", *entry)
	}
}
