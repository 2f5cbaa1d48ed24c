package aggregate

import (
	"github.com/2beens/wellnessbuddy/internal/backend"
)

type GoalCounts struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Abandoned int `json:"abandoned"`
}

// GoalStatusCounts counts goals per status; unknown statuses only add to Total.
func GoalStatusCounts(goals []backend.WellnessGoal) GoalCounts {
	counts := GoalCounts{Total: len(goals)}
	for _, g := range goals {
		switch g.Status {
		case backend.GoalStatusActive:
			counts.Active++
		case backend.GoalStatusCompleted:
			counts.Completed++
		case backend.GoalStatusAbandoned:
			counts.Abandoned++
		}
	}
	return counts
}
