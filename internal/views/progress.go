package views

import (
	"context"
	"time"

	"github.com/2beens/wellnessbuddy/internal/aggregate"
	"github.com/2beens/wellnessbuddy/internal/backend"
	"github.com/2beens/wellnessbuddy/internal/telemetry/tracing"
)

const defaultFormGoalID = 1

// ProgressView.Failed is set when the page shows a failed submission:
// the table is the current one and the form keeps the submitted values.
type ProgressView struct {
	Failed         bool
	Recent         []backend.ProgressEntry
	Trend          []aggregate.TrendPoint
	SelectedGoalID int
	Form           backend.NewProgress
}

type Progress struct {
	backend   Backend
	limits    Limits
	observers []SubmissionObserver
}

func NewProgress(b Backend, limits Limits, observers ...SubmissionObserver) *Progress {
	return &Progress{
		backend:   b,
		limits:    limits,
		observers: observers,
	}
}

// Load fetches the latest progress entries. With a goal selected in the
// session, the trend only shows that goal and the form is prefilled with it.
func (p *Progress) Load(ctx context.Context, pc *PageContext) ProgressView {
	ctx, span := tracing.GlobalTracer.Start(ctx, "views.progress.load")
	defer span.End()

	entries, _ := p.backend.Progress(ctx, pc.Notices, p.limits.Progress)
	return ProgressView{
		Recent: aggregate.RecentRows(entries, func(e backend.ProgressEntry) time.Time {
			return e.CreatedAt
		}, p.limits.TableRows),
		Trend:          aggregate.TrendSeriesForGoal(entries, pc.SelectedGoalID),
		SelectedGoalID: pc.SelectedGoalID,
		Form:           DefaultProgressForm(pc.SelectedGoalID),
	}
}

// Add posts a progress entry. A failed write leaves the entries table as it
// is on the backend, with the submitted values kept in the form.
func (p *Progress) Add(ctx context.Context, pc *PageContext, entry backend.NewProgress) (ProgressView, bool) {
	var view ProgressView
	ok := NewSubmission(PageProgress, p.observers...).Run(ctx, pc, MsgProgressAdded,
		func(ctx context.Context, n backend.Notifier) bool {
			return p.backend.AddProgress(ctx, n, entry)
		},
		func(ctx context.Context) {
			view = p.Load(ctx, pc)
		},
	)
	if !ok {
		view = p.Load(ctx, pc)
		view.Failed = true
		view.Form = entry
	}

	return view, ok
}

func DefaultProgressForm(selectedGoalID int) backend.NewProgress {
	goalID := selectedGoalID
	if goalID <= 0 {
		goalID = defaultFormGoalID
	}
	return backend.NewProgress{
		GoalID:     goalID,
		MetricType: backend.MetricTypes[0],
	}
}
