package views

import (
	"time"

	"github.com/2beens/wellnessbuddy/internal/backend"
)

// PageContext is the state of a single interaction, passed down explicitly:
// the session scoped goal selection, the notices shown on the resulting
// page and the clock used for time based summaries.
type PageContext struct {
	Notices        *backend.Notices
	SelectedGoalID int
	Now            time.Time
}

func NewPageContext(selectedGoalID int, now time.Time, flash ...backend.Notice) *PageContext {
	return &PageContext{
		Notices:        backend.NewNotices(flash...),
		SelectedGoalID: selectedGoalID,
		Now:            now,
	}
}
