package model

import (
	"strings"
	"time"
)

// Review is one user's reflections for one calendar week. WeekStart is the
// Monday at local midnight and WeekEnd the following Sunday at 23:59:59.999;
// WeekNumber and Year follow ISO-8601 week numbering, so Year can differ
// from WeekStart's calendar year at year boundaries.
//
// At most one review exists per (user, week_start). A nil entry means the
// goal has no reflection for that week; empty and whitespace-only strings
// are coerced to nil before they reach the database.
type Review struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	WeekStart      time.Time `db:"week_start"`
	WeekEnd        time.Time `db:"week_end"`
	WeekNumber     int       `db:"week_number"`
	Year           int       `db:"year"`
	InstantDBEntry *string   `db:"instantdb_entry"`
	WeddingEntry   *string   `db:"wedding_entry"`
	FitnessEntry   *string   `db:"fitness_entry"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Entry returns the stored text for a goal key, or nil for unknown keys.
func (r *Review) Entry(key string) *string {
	switch key {
	case GoalKeyInstantDB:
		return r.InstantDBEntry
	case GoalKeyWedding:
		return r.WeddingEntry
	case GoalKeyFitness:
		return r.FitnessEntry
	}
	return nil
}

// SetEntry stores text for a goal key. It reports whether the key is one of
// the fixed goal keys.
func (r *Review) SetEntry(key string, text *string) bool {
	switch key {
	case GoalKeyInstantDB:
		r.InstantDBEntry = text
	case GoalKeyWedding:
		r.WeddingEntry = text
	case GoalKeyFitness:
		r.FitnessEntry = text
	default:
		return false
	}
	return true
}

// CompletionCount counts goals with a non-empty entry after trimming
// whitespace. It drives the X/3 progress indicator and the completion
// celebration.
func (r *Review) CompletionCount() int {
	count := 0
	for _, g := range Goals {
		if entryFilled(r.Entry(g.Key)) {
			count++
		}
	}
	return count
}

// IsComplete reports whether every goal has a non-empty entry.
func (r *Review) IsComplete() bool {
	return r.CompletionCount() == len(Goals)
}

// HasContent reports whether at least one goal has a non-empty entry.
// Reviews without content are hidden from history and export.
func (r *Review) HasContent() bool {
	return r.CompletionCount() > 0
}

func entryFilled(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
