package views

import (
	"context"
	"time"

	"github.com/2beens/wellnessbuddy/internal/aggregate"
	"github.com/2beens/wellnessbuddy/internal/backend"
	"github.com/2beens/wellnessbuddy/internal/telemetry/tracing"
)

type NutritionView struct {
	Failed  bool
	Summary aggregate.NutritionStats
	Macros  []aggregate.MacroRow
	Recent  []backend.NutritionEntry
	Form    backend.NewNutrition
}

type Nutrition struct {
	backend   Backend
	limits    Limits
	observers []SubmissionObserver
}

func NewNutrition(b Backend, limits Limits, observers ...SubmissionObserver) *Nutrition {
	return &Nutrition{
		backend:   b,
		limits:    limits,
		observers: observers,
	}
}

func (nu *Nutrition) Load(ctx context.Context, pc *PageContext) NutritionView {
	ctx, span := tracing.GlobalTracer.Start(ctx, "views.nutrition.load")
	defer span.End()

	entries, _ := nu.backend.Nutrition(ctx, pc.Notices, nu.limits.Nutrition)
	return NutritionView{
		Summary: aggregate.NutritionSummary(entries),
		Macros:  aggregate.MacroSeries(entries),
		Recent: aggregate.RecentRows(entries, func(e backend.NutritionEntry) time.Time {
			return e.CreatedAt
		}, nu.limits.TableRows),
		Form: DefaultNutritionForm(),
	}
}

func (nu *Nutrition) Log(ctx context.Context, pc *PageContext, entry backend.NewNutrition) (NutritionView, bool) {
	var view NutritionView
	ok := NewSubmission(PageNutrition, nu.observers...).Run(ctx, pc, MsgNutritionLogged,
		func(ctx context.Context, n backend.Notifier) bool {
			return nu.backend.LogNutrition(ctx, n, entry)
		},
		func(ctx context.Context) {
			view = nu.Load(ctx, pc)
		},
	)
	if !ok {
		view = nu.Load(ctx, pc)
		view.Failed = true
		view.Form = entry
	}

	return view, ok
}

func DefaultNutritionForm() backend.NewNutrition {
	return backend.NewNutrition{
		MealType: backend.MealTypes[0],
		Calories: 300,
		Protein:  20,
		Carbs:    30,
		Fats:     10,
	}
}
