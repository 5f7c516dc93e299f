package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/weekwise/weekwise/internal/week"
)

func TestParseWeekParam(t *testing.T) {
	b := parseWeekParam("2026-01-07")
	assert.Equal(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.Local), b.Start)

	// A Monday maps to its own week.
	b = parseWeekParam("2026-01-05")
	assert.Equal(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.Local), b.Start)

	// Garbage and absence both fall back to the current week.
	assert.Equal(t, week.Current().Start, parseWeekParam("").Start)
	assert.Equal(t, week.Current().Start, parseWeekParam("next-tuesday").Start)
	assert.Equal(t, week.Current().Start, parseWeekParam("2026-13-40").Start)
}
