package render

import (
	"math"

	"github.com/2beens/wellnessbuddy/internal/aggregate"
)

const (
	ChartLine        = "line"
	ChartPie         = "pie"
	ChartStackedBars = "stacked-bars"
)

// Chart is the data handed to static/charts.js as JSON.
type Chart struct {
	Kind   string        `json:"kind"`
	Title  string        `json:"title"`
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
}

type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

func TrendChart(points []aggregate.TrendPoint) Chart {
	labels := make([]string, 0, len(points))
	values := make([]float64, 0, len(points))
	for _, p := range points {
		labels = append(labels, formatDateTime(p.Timestamp))
		values = append(values, finite(p.Value))
	}
	return Chart{
		Kind:   ChartLine,
		Title:  "Progress Trend",
		Labels: labels,
		Series: []ChartSeries{{Name: "Metric Value", Values: values}},
	}
}

func DistributionChart(stats aggregate.WorkoutStats) Chart {
	distribution := stats.Distribution()
	labels := make([]string, 0, len(distribution))
	values := make([]float64, 0, len(distribution))
	for _, tc := range distribution {
		labels = append(labels, typeLabel(tc.Type))
		values = append(values, float64(tc.Count))
	}
	return Chart{
		Kind:   ChartPie,
		Title:  "Workout Types",
		Labels: labels,
		Series: []ChartSeries{{Name: "Workouts", Values: values}},
	}
}

// MacroChart keeps protein, carbs and fats of a row on the same label index.
func MacroChart(rows []aggregate.MacroRow) Chart {
	labels := make([]string, 0, len(rows))
	protein := make([]float64, 0, len(rows))
	carbs := make([]float64, 0, len(rows))
	fats := make([]float64, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, formatDateTime(row.Timestamp))
		protein = append(protein, finite(row.Protein))
		carbs = append(carbs, finite(row.Carbs))
		fats = append(fats, finite(row.Fats))
	}
	return Chart{
		Kind:   ChartStackedBars,
		Title:  "Daily Macro Intake",
		Labels: labels,
		Series: []ChartSeries{
			{Name: "Protein", Values: protein},
			{Name: "Carbs", Values: carbs},
			{Name: "Fats", Values: fats},
		},
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
