package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/weekwise/weekwise/internal/model"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrDuplicateWeek  = errors.New("review already exists for this week")
)

type ReviewRepository interface {
	Create(review *model.Review) error
	ByID(userID, reviewID string) (*model.Review, error)
	ByWeekStart(userID string, weekStart time.Time) (*model.Review, error)
	Reviews(userID string) ([]*model.Review, error)
	Update(review *model.Review) error
	Delete(userID, reviewID string) error
}

// isUniqueViolation matches unique constraint errors for both SQLite and
// PostgreSQL.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key value")
}

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	query := `INSERT INTO weekly_reviews (id, user_id, week_start, week_end, week_number, year,
	          instantdb_entry, wedding_entry, fitness_entry, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(query,
		review.ID,
		review.UserID,
		review.WeekStart,
		review.WeekEnd,
		review.WeekNumber,
		review.Year,
		review.InstantDBEntry,
		review.WeddingEntry,
		review.FitnessEntry,
		review.CreatedAt,
		review.UpdatedAt,
	)
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateWeek
	}

	return err
}

func (r *reviewRepository) ByID(userID, reviewID string) (*model.Review, error) {
	review := &model.Review{}
	query := `SELECT * FROM weekly_reviews WHERE id = $1 AND user_id = $2`

	err := r.db.Get(review, query, reviewID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrReviewNotFound
	}

	return review, err
}

// ByWeekStart looks up a review by exact week-start instant equality.
func (r *reviewRepository) ByWeekStart(userID string, weekStart time.Time) (*model.Review, error) {
	review := &model.Review{}
	query := `SELECT * FROM weekly_reviews WHERE user_id = $1 AND week_start = $2`

	err := r.db.Get(review, query, userID, weekStart)
	if err == sql.ErrNoRows {
		return nil, ErrReviewNotFound
	}

	return review, err
}

// Reviews returns all of a user's reviews ordered oldest-first by week
// start, the order the export formatter expects.
func (r *reviewRepository) Reviews(userID string) ([]*model.Review, error) {
	var reviews []*model.Review
	query := `SELECT * FROM weekly_reviews WHERE user_id = $1 ORDER BY week_start ASC`

	err := r.db.Select(&reviews, query, userID)
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *reviewRepository) Update(review *model.Review) error {
	query := `UPDATE weekly_reviews
	          SET instantdb_entry = $1, wedding_entry = $2, fitness_entry = $3, updated_at = $4
	          WHERE id = $5 AND user_id = $6`

	result, err := r.db.Exec(query,
		review.InstantDBEntry,
		review.WeddingEntry,
		review.FitnessEntry,
		review.UpdatedAt,
		review.ID,
		review.UserID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrReviewNotFound
	}

	return nil
}

func (r *reviewRepository) Delete(userID, reviewID string) error {
	query := `DELETE FROM weekly_reviews WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, reviewID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrReviewNotFound
	}

	return nil
}
