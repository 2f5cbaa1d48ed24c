package aggregate_test

import (
	"math"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/wellnessbuddy/internal/aggregate"
	"github.com/2beens/wellnessbuddy/internal/backend"
)

func TestNutritionSummary(t *testing.T) {
	stats := aggregate.NutritionSummary([]backend.NutritionEntry{
		{Calories: 300, Protein: 20, Carbs: 30, Fats: 10},
		{Calories: 650, Protein: 40.5, Carbs: 70, Fats: 22.5},
		{Calories: 0},
	})
	assert.Equal(t, 3, stats.Count)
	assert.InDelta(t, 316.667, stats.AvgCalories, 0.001)
	assert.Equal(t, 60.5, stats.TotalProtein)
	assert.Equal(t, 100.0, stats.TotalCarbs)
	assert.Equal(t, 32.5, stats.TotalFats)
}

func TestNutritionSummary_EmptyNeverNaN(t *testing.T) {
	stats := aggregate.NutritionSummary(nil)
	assert.Equal(t, aggregate.NutritionStats{}, stats)
	assert.False(t, math.IsNaN(stats.AvgCalories))
	assert.Zero(t, stats.AvgCalories)
}

func TestMacroSeries_RowsStayAligned(t *testing.T) {
	faker := gofakeit.New(5)
	base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	var entries []backend.NutritionEntry
	for i := 0; i < 30; i++ {
		// protein encodes the entry identity, carbs and fats derive from it
		protein := float64(i)
		entries = append(entries, backend.NutritionEntry{
			Protein:   protein,
			Carbs:     protein * 2,
			Fats:      protein * 3,
			CreatedAt: base.Add(time.Duration(faker.Number(0, 240)) * time.Hour),
		})
	}
	faker.ShuffleAnySlice(entries)

	rows := aggregate.MacroSeries(entries)
	require.Len(t, rows, len(entries))
	for i, row := range rows {
		assert.Equal(t, row.Protein*2, row.Carbs)
		assert.Equal(t, row.Protein*3, row.Fats)
		if i > 0 {
			assert.False(t, row.Timestamp.Before(rows[i-1].Timestamp))
		}
	}

	assert.Empty(t, aggregate.MacroSeries(nil))
}
