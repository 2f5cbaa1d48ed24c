package views

import (
	"context"

	"github.com/2beens/wellnessbuddy/internal/backend"
	"github.com/2beens/wellnessbuddy/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type SubmissionState int

const (
	StateIdle SubmissionState = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s SubmissionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type Transition struct {
	Page string
	From SubmissionState
	To   SubmissionState
}

type SubmissionObserver interface {
	OnTransition(t Transition)
}

// SubmissionObserverFunc adapts a plain func to SubmissionObserver.
type SubmissionObserverFunc func(t Transition)

func (f SubmissionObserverFunc) OnTransition(t Transition) {
	f(t)
}

// Submission drives a single form submission:
//
//	Idle -> Submitting -> Succeeded -> Idle (refetch)
//	Idle -> Submitting -> Failed -> Idle (no refetch)
//
// There are no retries, a failed submission needs a new user action.
type Submission struct {
	page      string
	state     SubmissionState
	observers []SubmissionObserver
}

func NewSubmission(page string, observers ...SubmissionObserver) *Submission {
	return &Submission{
		page:      page,
		state:     StateIdle,
		observers: observers,
	}
}

func (s *Submission) State() SubmissionState {
	return s.state
}

// Run performs write; on success it adds the success notice and calls
// refetch. Returns whether the write succeeded.
func (s *Submission) Run(
	ctx context.Context,
	pc *PageContext,
	successMessage string,
	write func(ctx context.Context, n backend.Notifier) bool,
	refetch func(ctx context.Context),
) bool {
	if s.state != StateIdle {
		log.Warnf("submission [%s]: run called in state %s", s.page, s.state)
		return false
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "views.submission")
	defer span.End()
	span.SetAttributes(attribute.String("page", s.page))

	s.moveTo(StateSubmitting)
	if !write(ctx, pc.Notices) {
		s.moveTo(StateFailed)
		span.SetAttributes(attribute.Bool("succeeded", false))
		s.moveTo(StateIdle)
		return false
	}

	s.moveTo(StateSucceeded)
	span.SetAttributes(attribute.Bool("succeeded", true))
	pc.Notices.Notify(backend.SuccessNotice(successMessage))
	s.moveTo(StateIdle)
	refetch(ctx)

	return true
}

func (s *Submission) moveTo(state SubmissionState) {
	t := Transition{Page: s.page, From: s.state, To: state}
	s.state = state
	for _, o := range s.observers {
		o.OnTransition(t)
	}
}
