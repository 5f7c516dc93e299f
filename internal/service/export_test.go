package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/weekwise/weekwise/internal/model"
	"github.com/weekwise/weekwise/internal/week"
)

func ptr(s string) *string { return &s }

func reviewForWeek(t time.Time, entries map[string]string) *model.Review {
	b := week.ForDate(t)
	r := &model.Review{
		ID:         "r-" + b.Start.Format("2006-01-02"),
		UserID:     "u1",
		WeekStart:  b.Start,
		WeekEnd:    b.End,
		WeekNumber: week.Number(b.Start),
		Year:       week.ISOYear(b.Start),
	}
	for key, text := range entries {
		r.SetEntry(key, ptr(text))
	}
	return r
}

func TestBuildExportEmpty(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.Local)

	exp := BuildExport(nil, now)

	assert.Equal(t, 0, exp.Count)
	assert.Equal(t, "weekly-reviews.md", exp.Filename)
	assert.Contains(t, exp.Markdown, "# Weekly Reviews 2026")
	assert.Contains(t, exp.Markdown, "Exported on August 29, 2026")
	assert.Contains(t, exp.Markdown, "No reviews yet")
	assert.NotContains(t, exp.Markdown, "## Week")
}

func TestBuildExportFiltersEmptyReviews(t *testing.T) {
	now := time.Date(2026, time.January, 20, 9, 0, 0, 0, time.Local)

	reviews := []*model.Review{
		reviewForWeek(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local), nil),
		reviewForWeek(time.Date(2026, time.January, 6, 0, 0, 0, 0, time.Local), map[string]string{
			model.GoalKeyFitness: "ran three times",
		}),
	}

	exp := BuildExport(reviews, now)

	assert.Equal(t, 1, exp.Count)
	assert.Equal(t, "weekly-reviews-2026.md", exp.Filename)

	// Week 1 had no content and must be omitted entirely.
	assert.Equal(t, 1, strings.Count(exp.Markdown, "## Week"))
	assert.Contains(t, exp.Markdown, "## Week 2 — Jan 5-11, 2026")
	assert.Contains(t, exp.Markdown, "### 💪 Get in the best shape of my life")
	assert.Contains(t, exp.Markdown, "ran three times")
	assert.Contains(t, exp.Markdown, "*1 week reviewed*")
}

func TestBuildExportOmitsEmptyGoals(t *testing.T) {
	now := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.Local)

	reviews := []*model.Review{
		reviewForWeek(time.Date(2026, time.January, 6, 0, 0, 0, 0, time.Local), map[string]string{
			model.GoalKeyInstantDB: "shipped the sync fix",
			model.GoalKeyWedding:   "   ",
		}),
	}

	exp := BuildExport(reviews, now)

	assert.Equal(t, 1, exp.Count)
	assert.Contains(t, exp.Markdown, "### 🚀 Grow InstantDB")
	// Whitespace-only and missing goals are dropped, not rendered blank.
	assert.NotContains(t, exp.Markdown, "### 💍 Plan my wedding")
	assert.NotContains(t, exp.Markdown, "### 💪")
}

func TestBuildExportPluralAndOrder(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local)

	reviews := []*model.Review{
		reviewForWeek(time.Date(2026, time.January, 6, 0, 0, 0, 0, time.Local), map[string]string{
			model.GoalKeyWedding: "booked the venue",
		}),
		reviewForWeek(time.Date(2026, time.January, 13, 0, 0, 0, 0, time.Local), map[string]string{
			model.GoalKeyWedding: "tasting menu picked",
		}),
	}

	exp := BuildExport(reviews, now)

	assert.Equal(t, 2, exp.Count)
	assert.Contains(t, exp.Markdown, "*2 weeks reviewed*")

	// Chronological order is preserved.
	first := strings.Index(exp.Markdown, "## Week 2")
	second := strings.Index(exp.Markdown, "## Week 3")
	assert.Greater(t, second, first)
	assert.Greater(t, first, -1)
}

func TestBuildExportCrossYearWeekLabel(t *testing.T) {
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.Local)

	reviews := []*model.Review{
		reviewForWeek(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.Local), map[string]string{
			model.GoalKeyFitness: "kept moving over the holidays",
		}),
	}

	exp := BuildExport(reviews, now)

	// Dec 29 2025 opens week 1 of ISO year 2026; the label still shows the
	// end year.
	assert.Contains(t, exp.Markdown, "## Week 1 — Dec 29 - Jan 4, 2026")
}
