package views

import (
	"github.com/2beens/wellnessbuddy/internal/aggregate"
)

const (
	PageDashboard = "dashboard"
	PageGoals     = "goals"
	PageTasks     = "tasks"
	PageProgress  = "progress"
	PageWorkouts  = "workouts"
	PageNutrition = "nutrition"
	PageInsights  = "insights"
)

const (
	MsgGoalCreated       = "Goal created successfully!"
	MsgTasksUpdated      = "Tasks updated successfully!"
	MsgProgressAdded     = "Progress entry added successfully!"
	MsgWorkoutLogged     = "Workout logged successfully!"
	MsgNutritionLogged   = "Nutrition entry logged successfully!"
	MsgInsightsGenerated = "New insights generated!"
)

// Limits are the fetch sizes and display windows of the pages.
// StreakProgress is how far back the dashboard looks for its streak.
type Limits struct {
	DashboardProgress int
	DashboardWorkouts int
	StreakProgress    int
	Progress          int
	Workouts          int
	Nutrition         int
	ActivityWindow    int
	TableRows         int
}

func DefaultLimits() Limits {
	return Limits{
		DashboardProgress: 7,
		DashboardWorkouts: 50,
		StreakProgress:    60,
		Progress:          30,
		Workouts:          20,
		Nutrition:         20,
		ActivityWindow:    aggregate.DefaultActivityWindow,
		TableRows:         aggregate.DefaultTableRows,
	}
}

// Controllers holds one controller per page.
type Controllers struct {
	Dashboard *Dashboard
	Goals     *Goals
	Tasks     *Tasks
	Progress  *Progress
	Workouts  *Workouts
	Nutrition *Nutrition
	Insights  *Insights
}

func NewControllers(b Backend, limits Limits, observers ...SubmissionObserver) *Controllers {
	return &Controllers{
		Dashboard: NewDashboard(b, limits),
		Goals:     NewGoals(b, observers...),
		Tasks:     NewTasks(b, observers...),
		Progress:  NewProgress(b, limits, observers...),
		Workouts:  NewWorkouts(b, limits, observers...),
		Nutrition: NewNutrition(b, limits, observers...),
		Insights:  NewInsights(b, observers...),
	}
}
