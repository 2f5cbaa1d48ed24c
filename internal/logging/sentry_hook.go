package logging

import (
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// sentryCapturer is the part of *sentry.Hub used by the hook
type sentryCapturer interface {
	CaptureMessage(message string) *sentry.EventID
	CaptureException(exception error) *sentry.EventID
}

// SentryHook forwards log entries of the given levels to sentry.
type SentryHook struct {
	hub    sentryCapturer
	levels []logrus.Level
}

func NewSentryHook(hub sentryCapturer, levels []logrus.Level) *SentryHook {
	return &SentryHook{
		hub:    hub,
		levels: levels,
	}
}

func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	if errField, ok := entry.Data[logrus.ErrorKey]; ok {
		if err, ok := errField.(error); ok {
			h.hub.CaptureException(errors.Join(errors.New(entry.Message), err))
			return nil
		}
	}
	h.hub.CaptureMessage(entry.Message)
	return nil
}
