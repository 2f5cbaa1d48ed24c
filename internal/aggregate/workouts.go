package aggregate

import (
	"fmt"
	"sort"
	"time"

	"github.com/2beens/wellnessbuddy/internal/backend"
)

const week = 7 * 24 * time.Hour

// WorkoutStats.TypeDistribution maps workout type to count,
// records without a type are counted under "".
type WorkoutStats struct {
	Count            int            `json:"count"`
	TotalDuration    int            `json:"totalDuration"`
	TotalCalories    int            `json:"totalCalories"`
	TypeDistribution map[string]int `json:"typeDistribution"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Distribution lists TypeDistribution ordered by count desc, then type name.
func (s WorkoutStats) Distribution() []TypeCount {
	counts := make([]TypeCount, 0, len(s.TypeDistribution))
	for t, c := range s.TypeDistribution {
		counts = append(counts, TypeCount{Type: t, Count: c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Type < counts[j].Type
	})
	return counts
}

func WorkoutSummary(workouts []backend.WorkoutSession) WorkoutStats {
	stats := WorkoutStats{
		TypeDistribution: make(map[string]int),
	}
	for _, w := range workouts {
		stats.Count++
		stats.TotalDuration += w.Duration
		stats.TotalCalories += w.CaloriesBurned
		stats.TypeDistribution[w.WorkoutType]++
	}
	return stats
}

type WeeklyStats struct {
	ThisWeek int `json:"thisWeek"`
	LastWeek int `json:"lastWeek"`
	Delta    int `json:"delta"`
}

// DeltaLabel formats the week over week change, e.g. "+1 vs last week".
func (s WeeklyStats) DeltaLabel() string {
	return fmt.Sprintf("%+d vs last week", s.Delta)
}

// WeeklyWorkouts counts workouts in the rolling windows (now-7d, now]
// and (now-14d, now-7d]. Workouts without a timestamp are not counted.
func WeeklyWorkouts(workouts []backend.WorkoutSession, now time.Time) WeeklyStats {
	var stats WeeklyStats
	weekAgo := now.Add(-week)
	twoWeeksAgo := now.Add(-2 * week)

	for _, w := range workouts {
		t := w.CreatedAt
		switch {
		case t.IsZero():
			continue
		case t.After(weekAgo) && !t.After(now):
			stats.ThisWeek++
		case t.After(twoWeeksAgo) && !t.After(weekAgo):
			stats.LastWeek++
		}
	}
	stats.Delta = stats.ThisWeek - stats.LastWeek

	return stats
}
