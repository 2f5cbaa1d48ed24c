package views

import (
	"github.com/2beens/wellnessbuddy/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// MetricsObserver counts finished submissions per page and outcome.
type MetricsObserver struct {
	metrics *metrics.Manager
}

func NewMetricsObserver(metricsManager *metrics.Manager) *MetricsObserver {
	return &MetricsObserver{
		metrics: metricsManager,
	}
}

func (o *MetricsObserver) OnTransition(t Transition) {
	if t.To != StateSucceeded && t.To != StateFailed {
		return
	}
	o.metrics.CounterSubmissions.WithLabelValues(t.Page, t.To.String()).Inc()
}

type LogObserver struct{}

func (LogObserver) OnTransition(t Transition) {
	if t.To == StateFailed {
		log.Warnf("submission [%s]: %s -> %s", t.Page, t.From, t.To)
		return
	}
	log.Debugf("submission [%s]: %s -> %s", t.Page, t.From, t.To)
}
