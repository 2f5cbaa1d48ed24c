package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/2beens/wellnessbuddy/internal/aggregate"
	"github.com/2beens/wellnessbuddy/internal/backend"
	"github.com/2beens/wellnessbuddy/internal/views"
)

type report struct {
	GeneratedAt time.Time                `json:"generatedAt"`
	Dashboard   views.DashboardView      `json:"dashboard"`
	Workouts    aggregate.WorkoutStats   `json:"workouts"`
	Nutrition   aggregate.NutritionStats `json:"nutrition"`
	Notices     []backend.Notice         `json:"notices"`
}

func buildReport(ctx context.Context, controllers *views.Controllers, now time.Time) report {
	pc := views.NewPageContext(0, now)

	r := report{
		GeneratedAt: now,
		Dashboard:   controllers.Dashboard.Load(ctx, pc),
		Workouts:    controllers.Workouts.Load(ctx, pc).Summary,
		Nutrition:   controllers.Nutrition.Load(ctx, pc).Summary,
		Notices:     []backend.Notice{},
	}
	r.Notices = append(r.Notices, pc.Notices.All()...)

	return r
}

func (r report) HasErrors() bool {
	for _, n := range r.Notices {
		if n.Kind.IsError() {
			return true
		}
	}
	return false
}

func (r report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	lines := []string{
		fmt.Sprintf("Wellness report\t%s", r.GeneratedAt.Format("2006-01-02 15:04")),
		"",
		fmt.Sprintf("Active goals\t%d (%d total, %d completed)", r.Dashboard.Goals.Active, r.Dashboard.Goals.Total, r.Dashboard.Goals.Completed),
		fmt.Sprintf("Tasks completed\t%s (%s)", r.Dashboard.Tasks.Ratio(), r.Dashboard.Tasks.Percent()),
		fmt.Sprintf("Streak\t%s", r.Dashboard.Streak.Label()),
		fmt.Sprintf("Workouts this week\t%d (%s)", r.Dashboard.WeeklyWorkouts.ThisWeek, r.Dashboard.WeeklyWorkouts.DeltaLabel()),
		"",
		fmt.Sprintf("Workouts logged\t%d", r.Workouts.Count),
		fmt.Sprintf("Total duration\t%d min", r.Workouts.TotalDuration),
		fmt.Sprintf("Calories burned\t%d", r.Workouts.TotalCalories),
	}
	for _, tc := range r.Workouts.Distribution() {
		label := tc.Type
		if label == "" {
			label = "Unspecified"
		}
		lines = append(lines, fmt.Sprintf("  %s\t%d", label, tc.Count))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Meals logged\t%d", r.Nutrition.Count),
		fmt.Sprintf("Avg calories\t%.0f", r.Nutrition.AvgCalories),
		fmt.Sprintf("Protein / carbs / fats\t%.1f / %.1f / %.1f g", r.Nutrition.TotalProtein, r.Nutrition.TotalCarbs, r.Nutrition.TotalFats),
	)

	if len(r.Dashboard.RecentActivity) > 0 {
		lines = append(lines, "", "Recent activity")
		for _, item := range r.Dashboard.RecentActivity {
			lines = append(lines, fmt.Sprintf("  %s\t%s", item.Date, item.Note))
		}
	}

	if len(r.Notices) > 0 {
		lines = append(lines, "", "Notices")
		for _, n := range r.Notices {
			lines = append(lines, fmt.Sprintf("  %s\t%s", n.Kind, n.Message))
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return err
		}
	}
	return tw.Flush()
}
