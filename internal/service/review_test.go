package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weekwise/weekwise/internal/model"
	"github.com/weekwise/weekwise/internal/repository"
	"github.com/weekwise/weekwise/internal/week"
)

// fakeReviewRepo is an in-memory ReviewRepository for service tests.
type fakeReviewRepo struct {
	reviews map[string]*model.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*model.Review)}
}

func (f *fakeReviewRepo) Create(r *model.Review) error {
	for _, existing := range f.reviews {
		if existing.UserID == r.UserID && existing.WeekStart.Equal(r.WeekStart) {
			return repository.ErrDuplicateWeek
		}
	}
	clone := *r
	f.reviews[r.ID] = &clone
	return nil
}

func (f *fakeReviewRepo) ByID(userID, reviewID string) (*model.Review, error) {
	r, ok := f.reviews[reviewID]
	if !ok || r.UserID != userID {
		return nil, repository.ErrReviewNotFound
	}
	clone := *r
	return &clone, nil
}

func (f *fakeReviewRepo) ByWeekStart(userID string, weekStart time.Time) (*model.Review, error) {
	for _, r := range f.reviews {
		if r.UserID == userID && r.WeekStart.Equal(weekStart) {
			clone := *r
			return &clone, nil
		}
	}
	return nil, repository.ErrReviewNotFound
}

func (f *fakeReviewRepo) Reviews(userID string) ([]*model.Review, error) {
	var out []*model.Review
	for _, r := range f.reviews {
		if r.UserID == userID {
			clone := *r
			out = append(out, &clone)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].WeekStart.Before(out[i].WeekStart) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Update(r *model.Review) error {
	existing, ok := f.reviews[r.ID]
	if !ok || existing.UserID != r.UserID {
		return repository.ErrReviewNotFound
	}
	clone := *r
	f.reviews[r.ID] = &clone
	return nil
}

func (f *fakeReviewRepo) Delete(userID, reviewID string) error {
	r, ok := f.reviews[reviewID]
	if !ok || r.UserID != userID {
		return repository.ErrReviewNotFound
	}
	delete(f.reviews, reviewID)
	return nil
}

func thisWeek() week.Bounds {
	return week.ForDate(time.Date(2026, time.January, 7, 10, 0, 0, 0, time.Local))
}

func TestCreateForWeek(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())
	b := thisWeek()

	r, err := svc.CreateForWeek("u1", b)
	require.NoError(t, err)

	assert.NotEmpty(t, r.ID)
	assert.True(t, r.WeekStart.Equal(b.Start))
	assert.True(t, r.WeekEnd.Equal(b.End))
	assert.Equal(t, 2, r.WeekNumber)
	assert.Equal(t, 2026, r.Year)
	assert.Equal(t, 0, r.CompletionCount())
	assert.Nil(t, r.InstantDBEntry)
	assert.Equal(t, r.CreatedAt, r.UpdatedAt)
}

func TestCreateForWeekIsIdempotent(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())
	b := thisWeek()

	first, err := svc.CreateForWeek("u1", b)
	require.NoError(t, err)

	second, err := svc.CreateForWeek("u1", b)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestCreateForWeekDerivesISOYearAcrossBoundary(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())
	// Week of Dec 29 2025 belongs to ISO year 2026.
	b := week.ForDate(time.Date(2025, time.December, 30, 0, 0, 0, 0, time.Local))

	r, err := svc.CreateForWeek("u1", b)
	require.NoError(t, err)

	assert.Equal(t, 2025, r.WeekStart.Year())
	assert.Equal(t, 1, r.WeekNumber)
	assert.Equal(t, 2026, r.Year)
}

func TestForWeekMissingReturnsNil(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())

	r, err := svc.ForWeek("u1", thisWeek())
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestUpdateEntryTrimToNull(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())
	r, err := svc.CreateForWeek("u1", thisWeek())
	require.NoError(t, err)

	updated, _, err := svc.UpdateEntry("u1", r.ID, model.GoalKeyFitness, "ran 20k")
	require.NoError(t, err)
	assert.Equal(t, "ran 20k", *updated.FitnessEntry)
	assert.Equal(t, 1, updated.CompletionCount())

	// Whitespace-only input clears the entry.
	updated, _, err = svc.UpdateEntry("u1", r.ID, model.GoalKeyFitness, "   ")
	require.NoError(t, err)
	assert.Nil(t, updated.FitnessEntry)
	assert.Equal(t, 0, updated.CompletionCount())
}

func TestUpdateEntryUnknownGoal(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())
	r, err := svc.CreateForWeek("u1", thisWeek())
	require.NoError(t, err)

	_, _, err = svc.UpdateEntry("u1", r.ID, "sleep", "8 hours")
	assert.ErrorIs(t, err, ErrUnknownGoal)
}

func TestUpdateEntryWrongOwner(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())
	r, err := svc.CreateForWeek("u1", thisWeek())
	require.NoError(t, err)

	_, _, err = svc.UpdateEntry("u2", r.ID, model.GoalKeyFitness, "x")
	assert.ErrorIs(t, err, repository.ErrReviewNotFound)
}

func TestUpdateEntryCelebratesOnceOnCompletion(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())
	r, err := svc.CreateForWeek("u1", thisWeek())
	require.NoError(t, err)

	_, celebrate, err := svc.UpdateEntry("u1", r.ID, model.GoalKeyInstantDB, "a")
	require.NoError(t, err)
	assert.False(t, celebrate)

	_, celebrate, err = svc.UpdateEntry("u1", r.ID, model.GoalKeyWedding, "b")
	require.NoError(t, err)
	assert.False(t, celebrate)

	// 2 -> 3 fires exactly once
	_, celebrate, err = svc.UpdateEntry("u1", r.ID, model.GoalKeyFitness, "c")
	require.NoError(t, err)
	assert.True(t, celebrate)

	// Editing an already-complete review stays quiet.
	_, celebrate, err = svc.UpdateEntry("u1", r.ID, model.GoalKeyFitness, "c, revised")
	require.NoError(t, err)
	assert.False(t, celebrate)

	// Re-reaching completion within the same session stays quiet too.
	_, celebrate, err = svc.UpdateEntry("u1", r.ID, model.GoalKeyFitness, " ")
	require.NoError(t, err)
	assert.False(t, celebrate)
	_, celebrate, err = svc.UpdateEntry("u1", r.ID, model.GoalKeyFitness, "c again")
	require.NoError(t, err)
	assert.False(t, celebrate)
}

func TestResetWeek(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())
	b := thisWeek()
	r, err := svc.CreateForWeek("u1", b)
	require.NoError(t, err)

	err = svc.Reset("u1", r.ID)
	require.NoError(t, err)

	found, err := svc.ForWeek("u1", b)
	require.NoError(t, err)
	assert.Nil(t, found)

	// A fresh review for the same week can celebrate again.
	r2, err := svc.CreateForWeek("u1", b)
	require.NoError(t, err)
	assert.NotEqual(t, r.ID, r2.ID)
}

func TestHistoryHidesEmptyReviews(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())
	b := thisWeek()

	empty, err := svc.CreateForWeek("u1", b)
	require.NoError(t, err)

	filled, err := svc.CreateForWeek("u1", b.Offset(-1))
	require.NoError(t, err)
	_, _, err = svc.UpdateEntry("u1", filled.ID, model.GoalKeyInstantDB, "ok")
	require.NoError(t, err)

	history, err := svc.History("u1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, filled.ID, history[0].ID)

	// The empty record still occupies its week slot.
	found, err := svc.ForWeek("u1", b)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, empty.ID, found.ID)
}

func TestFilterNonEmpty(t *testing.T) {
	mixed := &model.Review{InstantDBEntry: ptr(""), FitnessEntry: ptr("   ")}
	filled := &model.Review{InstantDBEntry: ptr("ok")}

	out := FilterNonEmpty([]*model.Review{mixed, filled})
	require.Len(t, out, 1)
	assert.Same(t, filled, out[0])
}
