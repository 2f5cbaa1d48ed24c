package views

import (
	"context"

	"github.com/2beens/wellnessbuddy/internal/aggregate"
	"github.com/2beens/wellnessbuddy/internal/backend"
	"github.com/2beens/wellnessbuddy/internal/telemetry/tracing"
)

// GoalsView.Failed is set when the page shows a failed submission,
// the form then holds the submitted values.
type GoalsView struct {
	Failed         bool
	Goals          []backend.WellnessGoal
	Counts         aggregate.GoalCounts
	SelectedGoalID int
	Form           backend.NewGoal
}

type Goals struct {
	backend   Backend
	observers []SubmissionObserver
}

func NewGoals(b Backend, observers ...SubmissionObserver) *Goals {
	return &Goals{
		backend:   b,
		observers: observers,
	}
}

func (g *Goals) Load(ctx context.Context, pc *PageContext) GoalsView {
	ctx, span := tracing.GlobalTracer.Start(ctx, "views.goals.load")
	defer span.End()

	goals, _ := g.backend.Goals(ctx, pc.Notices)
	return GoalsView{
		Goals:          goals,
		Counts:         aggregate.GoalStatusCounts(goals),
		SelectedGoalID: pc.SelectedGoalID,
		Form:           DefaultGoalForm(),
	}
}

// Create posts a new active goal. On failure the returned view keeps the
// submitted values in the form.
func (g *Goals) Create(ctx context.Context, pc *PageContext, goal backend.NewGoal) (GoalsView, bool) {
	goal.Status = backend.GoalStatusActive

	var view GoalsView
	ok := NewSubmission(PageGoals, g.observers...).Run(ctx, pc, MsgGoalCreated,
		func(ctx context.Context, n backend.Notifier) bool {
			return g.backend.CreateGoal(ctx, n, goal)
		},
		func(ctx context.Context) {
			view = g.Load(ctx, pc)
		},
	)
	if !ok {
		view = g.Load(ctx, pc)
		view.Failed = true
		view.Form = goal
	}

	return view, ok
}

func DefaultGoalForm() backend.NewGoal {
	return backend.NewGoal{
		GoalType: backend.GoalTypes[0],
		Status:   backend.GoalStatusActive,
	}
}
