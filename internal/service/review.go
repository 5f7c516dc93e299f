package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/weekwise/weekwise/internal/model"
	"github.com/weekwise/weekwise/internal/repository"
	"github.com/weekwise/weekwise/internal/week"
)

var (
	ErrUnknownGoal = errors.New("unknown goal key")
)

// ReviewService owns the weekly-review lifecycle: at most one review per
// (user, week), trim-to-null entry updates, hard reset, and the one-time
// completion celebration.
type ReviewService struct {
	repo repository.ReviewRepository

	// celebrated tracks which reviews already fired their completion
	// celebration this process session. Not persisted; a restart re-arms it.
	mu         sync.Mutex
	celebrated map[string]struct{}
}

func NewReviewService(repo repository.ReviewRepository) *ReviewService {
	return &ReviewService{
		repo:       repo,
		celebrated: make(map[string]struct{}),
	}
}

// ForWeek returns the user's review whose WeekStart exactly equals the
// week's start instant, or nil when none exists.
func (s *ReviewService) ForWeek(userID string, b week.Bounds) (*model.Review, error) {
	review, err := s.repo.ByWeekStart(userID, b.Start)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up review: %w", err)
	}
	return review, nil
}

// CreateForWeek creates an empty review for the given week. The lookup
// before the insert keeps the one-review-per-week invariant in the common
// case; the unique index catches the remaining race, in which case the
// concurrently created review is returned instead.
func (s *ReviewService) CreateForWeek(userID string, b week.Bounds) (*model.Review, error) {
	existing, err := s.ForWeek(userID, b)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now()
	review := &model.Review{
		ID:         uuid.New().String(),
		UserID:     userID,
		WeekStart:  b.Start,
		WeekEnd:    b.End,
		WeekNumber: week.Number(b.Start),
		Year:       week.ISOYear(b.Start),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.repo.Create(review)
	if errors.Is(err, repository.ErrDuplicateWeek) {
		return s.repo.ByWeekStart(userID, b.Start)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

// ByID returns the review if it belongs to the user.
func (s *ReviewService) ByID(userID, reviewID string) (*model.Review, error) {
	return s.repo.ByID(userID, reviewID)
}

// UpdateEntry replaces one goal's text. Empty or whitespace-only text
// clears the entry. The returned flag is true exactly once per review per
// session: on the edit that takes the review from partial to complete.
func (s *ReviewService) UpdateEntry(userID, reviewID, goalKey, text string) (*model.Review, bool, error) {
	if _, ok := model.GoalByKey(goalKey); !ok {
		return nil, false, ErrUnknownGoal
	}

	review, err := s.repo.ByID(userID, reviewID)
	if err != nil {
		return nil, false, err
	}

	wasComplete := review.IsComplete()

	var value *string
	if strings.TrimSpace(text) != "" {
		value = &text
	}
	review.SetEntry(goalKey, value)
	review.UpdatedAt = time.Now()

	err = s.repo.Update(review)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update entry: %w", err)
	}

	celebrate := false
	if !wasComplete && review.IsComplete() {
		s.mu.Lock()
		if _, done := s.celebrated[review.ID]; !done {
			s.celebrated[review.ID] = struct{}{}
			celebrate = true
		}
		s.mu.Unlock()
	}

	return review, celebrate, nil
}

// Reset deletes the review outright. Irreversible; there is no tombstone,
// and a subsequent ForWeek for the same week returns nothing.
func (s *ReviewService) Reset(userID, reviewID string) error {
	err := s.repo.Delete(userID, reviewID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.celebrated, reviewID)
	s.mu.Unlock()

	return nil
}

// Reviews returns all of the user's reviews, oldest first, including empty
// placeholder records. The week picker uses it to mark existing weeks.
func (s *ReviewService) Reviews(userID string) ([]*model.Review, error) {
	return s.repo.Reviews(userID)
}

// History returns the user's reviews with at least one entry, oldest
// first. Empty placeholder records stay hidden until they are filled in.
func (s *ReviewService) History(userID string) ([]*model.Review, error) {
	reviews, err := s.repo.Reviews(userID)
	if err != nil {
		return nil, err
	}
	return FilterNonEmpty(reviews), nil
}

// FilterNonEmpty keeps only reviews with at least one non-empty entry.
func FilterNonEmpty(reviews []*model.Review) []*model.Review {
	filtered := make([]*model.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.HasContent() {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
