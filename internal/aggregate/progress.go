package aggregate

import (
	"sort"
	"time"

	"github.com/2beens/wellnessbuddy/internal/backend"
)

const DefaultActivityWindow = 5

type ActivityItem struct {
	Note string `json:"note"`
	Date string `json:"date"`
}

type TrendPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// RecentActivity returns the newest windowSize progress entries, newest first.
// Entries with equal timestamps keep their received order. The date is the
// calendar day in the timestamp's own offset; a missing timestamp gives an
// empty date.
func RecentActivity(entries []backend.ProgressEntry, windowSize int) []ActivityItem {
	if windowSize <= 0 || len(entries) == 0 {
		return []ActivityItem{}
	}

	sorted := append([]backend.ProgressEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if len(sorted) > windowSize {
		sorted = sorted[:windowSize]
	}

	items := make([]ActivityItem, 0, len(sorted))
	for _, e := range sorted {
		items = append(items, ActivityItem{
			Note: e.Notes,
			Date: calendarDay(e.CreatedAt),
		})
	}

	return items
}

// TrendSeries is the progress line chart data, oldest first, no gap filling.
func TrendSeries(entries []backend.ProgressEntry) []TrendPoint {
	sorted := append([]backend.ProgressEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	points := make([]TrendPoint, 0, len(sorted))
	for _, e := range sorted {
		points = append(points, TrendPoint{
			Timestamp: e.CreatedAt,
			Value:     e.MetricValue,
		})
	}

	return points
}

// TrendSeriesForGoal is TrendSeries over the entries of a single goal,
// goalID 0 selects all goals.
func TrendSeriesForGoal(entries []backend.ProgressEntry, goalID int) []TrendPoint {
	if goalID == 0 {
		return TrendSeries(entries)
	}

	var filtered []backend.ProgressEntry
	for _, e := range entries {
		if e.GoalID == goalID {
			filtered = append(filtered, e)
		}
	}

	return TrendSeries(filtered)
}

func calendarDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(backend.DateLayout)
}
