package aggregate

import (
	"fmt"

	"github.com/2beens/wellnessbuddy/internal/backend"
)

type TaskStats struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Rate      float64 `json:"rate"`
}

// Percent formats the completion rate, e.g. "66.7%".
func (s TaskStats) Percent() string {
	return fmt.Sprintf("%.1f%%", s.Rate*100)
}

// Ratio formats the completed/total pair, e.g. "2/3".
func (s TaskStats) Ratio() string {
	return fmt.Sprintf("%d/%d", s.Completed, s.Total)
}

func TaskCompletion(tasks []backend.DailyTask) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
		}
	}
	if stats.Total > 0 {
		stats.Rate = float64(stats.Completed) / float64(stats.Total)
	}
	return stats
}
