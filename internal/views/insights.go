package views

import (
	"context"

	"github.com/2beens/wellnessbuddy/internal/backend"
	"github.com/2beens/wellnessbuddy/internal/telemetry/tracing"
)

type InsightsView struct {
	Available bool
	Bundle    backend.InsightBundle
}

type Insights struct {
	backend   Backend
	observers []SubmissionObserver
}

func NewInsights(b Backend, observers ...SubmissionObserver) *Insights {
	return &Insights{
		backend:   b,
		observers: observers,
	}
}

func (i *Insights) Load(ctx context.Context, pc *PageContext) InsightsView {
	ctx, span := tracing.GlobalTracer.Start(ctx, "views.insights.load")
	defer span.End()

	bundle, ok := i.backend.Insights(ctx, pc.Notices)
	return InsightsView{
		Available: ok,
		Bundle:    bundle,
	}
}

// Generate asks the backend for insights again; on success the page is
// loaded once more so it shows what the backend now holds.
func (i *Insights) Generate(ctx context.Context, pc *PageContext) (InsightsView, bool) {
	var view InsightsView

	ok := NewSubmission(PageInsights, i.observers...).Run(ctx, pc, MsgInsightsGenerated,
		func(ctx context.Context, n backend.Notifier) bool {
			_, ok := i.backend.Insights(ctx, n)
			return ok
		},
		func(ctx context.Context) {
			view = i.Load(ctx, pc)
		},
	)

	return view, ok
}
