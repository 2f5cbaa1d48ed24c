package views

import (
	"context"

	"github.com/2beens/wellnessbuddy/internal/backend"
)

//go:generate mockgen -source=$GOFILE -destination=backend_mocks_test.go -package=views_test

// Backend is the part of backend.Client the controllers use.
type Backend interface {
	Goals(ctx context.Context, n backend.Notifier) ([]backend.WellnessGoal, bool)
	CreateGoal(ctx context.Context, n backend.Notifier, goal backend.NewGoal) bool
	Tasks(ctx context.Context, n backend.Notifier) ([]backend.DailyTask, bool)
	SetTaskCompleted(ctx context.Context, n backend.Notifier, taskID int, completed bool) bool
	Progress(ctx context.Context, n backend.Notifier, limit int) ([]backend.ProgressEntry, bool)
	AddProgress(ctx context.Context, n backend.Notifier, entry backend.NewProgress) bool
	Workouts(ctx context.Context, n backend.Notifier, limit int) ([]backend.WorkoutSession, bool)
	LogWorkout(ctx context.Context, n backend.Notifier, workout backend.NewWorkout) bool
	Nutrition(ctx context.Context, n backend.Notifier, limit int) ([]backend.NutritionEntry, bool)
	LogNutrition(ctx context.Context, n backend.Notifier, entry backend.NewNutrition) bool
	Insights(ctx context.Context, n backend.Notifier) (backend.InsightBundle, bool)
}
