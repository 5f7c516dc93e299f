package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/weekwise/weekwise/internal/ctxkeys"
	"github.com/weekwise/weekwise/internal/model"
	"github.com/weekwise/weekwise/internal/repository"
	"github.com/weekwise/weekwise/internal/service"
	"github.com/weekwise/weekwise/internal/ui"
	"github.com/weekwise/weekwise/internal/ui/components/toast"
	"github.com/weekwise/weekwise/internal/ui/pages"
	"github.com/weekwise/weekwise/internal/week"
)

// The picker reaches this far around the current week.
const (
	pickerWeeksAhead = 2
	pickerWeeksBack  = 12
)

type reviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *reviewHandler {
	return &reviewHandler{reviewService: reviewService}
}

// ReviewsPage shows the editor for one week, the current one unless
// ?week= selects another. An invalid week value falls back to today.
func (h *reviewHandler) ReviewsPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	selected := parseWeekParam(r.URL.Query().Get("week"))

	review, err := h.reviewService.ForWeek(user.ID, selected)
	if err != nil {
		slog.Error("failed to load review", "error", err, "user_id", user.ID)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	options, err := h.weekOptions(user.ID)
	if err != nil {
		slog.Error("failed to load week options", "error", err, "user_id", user.ID)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, pages.Reviews(selected, review, options))
}

// Create starts an empty review for the posted week and swaps in the
// editor.
func (h *reviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	b := parseWeekParam(r.FormValue("week"))

	review, err := h.reviewService.CreateForWeek(user.ID, b)
	if err != nil {
		slog.Error("failed to create review", "error", err, "user_id", user.ID)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if r.Header.Get("HX-Request") == "true" {
		ui.Render(w, r, pages.ReviewEditor(b, review))
		return
	}

	http.Redirect(w, r, "/app/reviews?week="+b.Start.Format("2006-01-02"), http.StatusSeeOther)
}

// UpdateEntry saves one goal's reflection. The response re-renders that
// goal's form plus an out-of-band progress update, and exactly once per
// review the completion celebration.
func (h *reviewHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	reviewID := r.PathValue("id")
	goalKey := r.PathValue("goal")
	entry := r.FormValue("entry")

	review, celebrate, err := h.reviewService.UpdateEntry(user.ID, reviewID, goalKey, entry)
	if err != nil {
		if errors.Is(err, service.ErrUnknownGoal) {
			http.Error(w, "unknown goal", http.StatusBadRequest)
			return
		}
		if errors.Is(err, repository.ErrReviewNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("failed to update entry", "error", err, "user_id", user.ID, "review_id", reviewID)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	goal, _ := model.GoalByKey(goalKey)
	ui.Render(w, r, pages.GoalEntryForm(review, goal, true))
	ui.RenderOOB(w, r, pages.ReviewProgress(review), "outerHTML:#review-progress")
	if celebrate {
		ui.RenderOOB(w, r, toast.Celebration(), "beforeend:#toast-region")
	}
}

// Reset deletes the review and swaps the editor back to its start
// prompt.
func (h *reviewHandler) Reset(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	reviewID := r.PathValue("id")

	review, err := h.reviewService.ByID(user.ID, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("failed to load review", "error", err, "user_id", user.ID, "review_id", reviewID)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	err = h.reviewService.Reset(user.ID, reviewID)
	if err != nil {
		slog.Error("failed to reset review", "error", err, "user_id", user.ID, "review_id", reviewID)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	b := week.ForDate(review.WeekStart)
	if r.Header.Get("HX-Request") == "true" {
		ui.Render(w, r, pages.ReviewEditor(b, nil))
		ui.RenderOOB(w, r, toast.Toast(toast.VariantSuccess, "Week reset."), "beforeend:#toast-region")
		return
	}

	http.Redirect(w, r, "/app/reviews?week="+b.Start.Format("2006-01-02"), http.StatusSeeOther)
}

// History lists filled-in reviews.
func (h *reviewHandler) History(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	reviews, err := h.reviewService.History(user.ID)
	if err != nil {
		slog.Error("failed to load history", "error", err, "user_id", user.ID)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, pages.History(reviews))
}

// Export streams the Markdown document as a download.
func (h *reviewHandler) Export(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	reviews, err := h.reviewService.Reviews(user.ID)
	if err != nil {
		slog.Error("failed to load reviews for export", "error", err, "user_id", user.ID)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	export := service.BuildExport(reviews, time.Now())

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	_, err = w.Write([]byte(export.Markdown))
	if err != nil {
		slog.Error("failed to write export", "error", err, "user_id", user.ID)
	}

	slog.Info("export generated", "user_id", user.ID, "reviews", export.Count)
}

// weekOptions builds the picker range, oldest first, with existing weeks
// marked.
func (h *reviewHandler) weekOptions(userID string) ([]pages.WeekOption, error) {
	reviews, err := h.reviewService.Reviews(userID)
	if err != nil {
		return nil, err
	}

	existing := make(map[string]bool, len(reviews))
	for _, r := range reviews {
		existing[r.WeekStart.Format("2006-01-02")] = true
	}

	current := week.Current()
	options := make([]pages.WeekOption, 0, pickerWeeksBack+pickerWeeksAhead+1)
	for n := -pickerWeeksBack; n <= pickerWeeksAhead; n++ {
		b := current.Offset(n)
		options = append(options, pages.WeekOption{
			Bounds:    b,
			HasReview: existing[b.Start.Format("2006-01-02")],
		})
	}

	return options, nil
}

// parseWeekParam resolves a ?week=2006-01-02 value to the week containing
// that date. Anything unparsable means the current week.
func parseWeekParam(v string) week.Bounds {
	v = strings.TrimSpace(v)
	if v == "" {
		return week.Current()
	}

	t, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		return week.Current()
	}

	return week.ForDate(t)
}
