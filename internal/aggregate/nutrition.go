package aggregate

import (
	"sort"
	"time"

	"github.com/2beens/wellnessbuddy/internal/backend"
)

type NutritionStats struct {
	Count        int     `json:"count"`
	AvgCalories  float64 `json:"avgCalories"`
	TotalProtein float64 `json:"totalProtein"`
	TotalCarbs   float64 `json:"totalCarbs"`
	TotalFats    float64 `json:"totalFats"`
}

type MacroRow struct {
	Timestamp time.Time `json:"timestamp"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fats      float64   `json:"fats"`
}

func NutritionSummary(entries []backend.NutritionEntry) NutritionStats {
	var stats NutritionStats
	totalCalories := 0
	for _, e := range entries {
		stats.Count++
		totalCalories += e.Calories
		stats.TotalProtein += e.Protein
		stats.TotalCarbs += e.Carbs
		stats.TotalFats += e.Fats
	}
	if stats.Count > 0 {
		stats.AvgCalories = float64(totalCalories) / float64(stats.Count)
	}
	return stats
}

// MacroSeries is the stacked macro chart data, one row per entry, oldest first.
func MacroSeries(entries []backend.NutritionEntry) []MacroRow {
	rows := make([]MacroRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, MacroRow{
			Timestamp: e.CreatedAt,
			Protein:   e.Protein,
			Carbs:     e.Carbs,
			Fats:      e.Fats,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Timestamp.Before(rows[j].Timestamp)
	})
	return rows
}
