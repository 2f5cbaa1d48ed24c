package views

import (
	"context"
	"time"

	"github.com/2beens/wellnessbuddy/internal/aggregate"
	"github.com/2beens/wellnessbuddy/internal/backend"
	"github.com/2beens/wellnessbuddy/internal/telemetry/tracing"
)

const (
	defaultWorkoutDuration = 30
	defaultWorkoutCalories = 200
)

type WorkoutsView struct {
	Failed  bool
	Summary aggregate.WorkoutStats
	Recent  []backend.WorkoutSession
	Form    backend.NewWorkout
}

type Workouts struct {
	backend   Backend
	limits    Limits
	observers []SubmissionObserver
}

func NewWorkouts(b Backend, limits Limits, observers ...SubmissionObserver) *Workouts {
	return &Workouts{
		backend:   b,
		limits:    limits,
		observers: observers,
	}
}

func (w *Workouts) Load(ctx context.Context, pc *PageContext) WorkoutsView {
	ctx, span := tracing.GlobalTracer.Start(ctx, "views.workouts.load")
	defer span.End()

	workouts, _ := w.backend.Workouts(ctx, pc.Notices, w.limits.Workouts)
	return WorkoutsView{
		Summary: aggregate.WorkoutSummary(workouts),
		Recent: aggregate.RecentRows(workouts, func(ws backend.WorkoutSession) time.Time {
			return ws.CreatedAt
		}, w.limits.TableRows),
		Form: DefaultWorkoutForm(),
	}
}

func (w *Workouts) Log(ctx context.Context, pc *PageContext, workout backend.NewWorkout) (WorkoutsView, bool) {
	var view WorkoutsView
	ok := NewSubmission(PageWorkouts, w.observers...).Run(ctx, pc, MsgWorkoutLogged,
		func(ctx context.Context, n backend.Notifier) bool {
			return w.backend.LogWorkout(ctx, n, workout)
		},
		func(ctx context.Context) {
			view = w.Load(ctx, pc)
		},
	)
	if !ok {
		view = w.Load(ctx, pc)
		view.Failed = true
		view.Form = workout
	}

	return view, ok
}

func DefaultWorkoutForm() backend.NewWorkout {
	return backend.NewWorkout{
		WorkoutType:    backend.WorkoutTypes[0],
		Duration:       defaultWorkoutDuration,
		CaloriesBurned: defaultWorkoutCalories,
	}
}
