package model

// Goal keys are stable identifiers used in database columns, form fields and
// URLs. The set is fixed and not user-editable.
const (
	GoalKeyInstantDB = "instantdb"
	GoalKeyWedding   = "wedding"
	GoalKeyFitness   = "fitness"
)

type Goal struct {
	Key   string
	Label string
	Emoji string
	Color string
}

// Goals is the single source of truth for the three tracked life goals.
// Every place that reads or writes entries iterates this table, so changing
// the set is a one-place change.
var Goals = []Goal{
	{Key: GoalKeyInstantDB, Label: "Grow InstantDB", Emoji: "🚀", Color: "orange"},
	{Key: GoalKeyWedding, Label: "Plan my wedding", Emoji: "💍", Color: "pink"},
	{Key: GoalKeyFitness, Label: "Get in the best shape of my life", Emoji: "💪", Color: "green"},
}

// GoalByKey looks up a goal by its stable key.
func GoalByKey(key string) (Goal, bool) {
	for _, g := range Goals {
		if g.Key == key {
			return g, true
		}
	}
	return Goal{}, false
}
