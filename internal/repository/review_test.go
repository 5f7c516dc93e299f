package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weekwise/weekwise/internal/db"
	"github.com/weekwise/weekwise/internal/model"
	"github.com/weekwise/weekwise/internal/week"
	_ "modernc.org/sqlite"
)

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Connect("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	// In-memory databases vanish per connection.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.RunMigrations(conn.DB, "sqlite"))
	return conn
}

func testUser(t *testing.T, conn *sqlx.DB) *model.User {
	t.Helper()

	user := &model.User{
		ID:        uuid.New().String(),
		Email:     uuid.New().String() + "@example.com",
		CreatedAt: time.Now(),
	}
	require.NoError(t, NewUserRepository(conn).Create(user))
	return user
}

func testReview(userID string, b week.Bounds) *model.Review {
	now := time.Now()
	return &model.Review{
		ID:         uuid.New().String(),
		UserID:     userID,
		WeekStart:  b.Start,
		WeekEnd:    b.End,
		WeekNumber: week.Number(b.Start),
		Year:       week.ISOYear(b.Start),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestReviewCreateAndByWeekStart(t *testing.T) {
	conn := testDB(t)
	repo := NewReviewRepository(conn)
	user := testUser(t, conn)
	b := week.ForDate(time.Date(2026, time.January, 7, 12, 0, 0, 0, time.Local))

	created := testReview(user.ID, b)
	require.NoError(t, repo.Create(created))

	found, err := repo.ByWeekStart(user.ID, b.Start)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.True(t, found.WeekStart.Equal(b.Start))
	assert.True(t, found.WeekEnd.Equal(b.End))
	assert.Equal(t, 2, found.WeekNumber)
	assert.Equal(t, 2026, found.Year)
	assert.Nil(t, found.InstantDBEntry)
	assert.Nil(t, found.WeddingEntry)
	assert.Nil(t, found.FitnessEntry)
}

func TestReviewByWeekStartExactInstant(t *testing.T) {
	conn := testDB(t)
	repo := NewReviewRepository(conn)
	user := testUser(t, conn)
	b := week.ForDate(time.Date(2026, time.January, 7, 12, 0, 0, 0, time.Local))

	require.NoError(t, repo.Create(testReview(user.ID, b)))

	// A lookup keyed on any other instant misses, even within the week.
	_, err := repo.ByWeekStart(user.ID, b.Start.Add(time.Hour))
	assert.ErrorIs(t, err, ErrReviewNotFound)

	_, err = repo.ByWeekStart(user.ID, b.Offset(1).Start)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReviewDuplicateWeek(t *testing.T) {
	conn := testDB(t)
	repo := NewReviewRepository(conn)
	user := testUser(t, conn)
	b := week.Current()

	require.NoError(t, repo.Create(testReview(user.ID, b)))

	err := repo.Create(testReview(user.ID, b))
	assert.ErrorIs(t, err, ErrDuplicateWeek)

	// Another user can hold the same week.
	other := testUser(t, conn)
	assert.NoError(t, repo.Create(testReview(other.ID, b)))
}

func TestReviewByIDScopedToOwner(t *testing.T) {
	conn := testDB(t)
	repo := NewReviewRepository(conn)
	user := testUser(t, conn)
	other := testUser(t, conn)

	created := testReview(user.ID, week.Current())
	require.NoError(t, repo.Create(created))

	found, err := repo.ByID(user.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.ByID(other.ID, created.ID)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReviewsOrderedByWeekStart(t *testing.T) {
	conn := testDB(t)
	repo := NewReviewRepository(conn)
	user := testUser(t, conn)
	b := week.ForDate(time.Date(2026, time.March, 4, 0, 0, 0, 0, time.Local))

	// Insert out of order.
	require.NoError(t, repo.Create(testReview(user.ID, b)))
	require.NoError(t, repo.Create(testReview(user.ID, b.Offset(-2))))
	require.NoError(t, repo.Create(testReview(user.ID, b.Offset(-1))))

	reviews, err := repo.Reviews(user.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.True(t, reviews[0].WeekStart.Before(reviews[1].WeekStart))
	assert.True(t, reviews[1].WeekStart.Before(reviews[2].WeekStart))
}

func TestReviewUpdateEntries(t *testing.T) {
	conn := testDB(t)
	repo := NewReviewRepository(conn)
	user := testUser(t, conn)

	created := testReview(user.ID, week.Current())
	require.NoError(t, repo.Create(created))

	entry := "shipped the onboarding flow"
	created.SetEntry(model.GoalKeyInstantDB, &entry)
	created.UpdatedAt = time.Now()
	require.NoError(t, repo.Update(created))

	found, err := repo.ByID(user.ID, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found.InstantDBEntry)
	assert.Equal(t, entry, *found.InstantDBEntry)

	// Clearing writes NULL back.
	created.SetEntry(model.GoalKeyInstantDB, nil)
	require.NoError(t, repo.Update(created))

	found, err = repo.ByID(user.ID, created.ID)
	require.NoError(t, err)
	assert.Nil(t, found.InstantDBEntry)
}

func TestReviewUpdateMissing(t *testing.T) {
	conn := testDB(t)
	repo := NewReviewRepository(conn)
	user := testUser(t, conn)

	review := testReview(user.ID, week.Current())
	err := repo.Update(review)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReviewDelete(t *testing.T) {
	conn := testDB(t)
	repo := NewReviewRepository(conn)
	user := testUser(t, conn)

	created := testReview(user.ID, week.Current())
	require.NoError(t, repo.Create(created))

	require.NoError(t, repo.Delete(user.ID, created.ID))

	_, err := repo.ByID(user.ID, created.ID)
	assert.ErrorIs(t, err, ErrReviewNotFound)

	err = repo.Delete(user.ID, created.ID)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReviewsDeletedWithUser(t *testing.T) {
	conn := testDB(t)
	repo := NewReviewRepository(conn)
	users := NewUserRepository(conn)
	user := testUser(t, conn)

	require.NoError(t, repo.Create(testReview(user.ID, week.Current())))
	require.NoError(t, users.Delete(user.ID))

	reviews, err := repo.Reviews(user.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
