package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/wellnessbuddy/internal/backend"
)

var ErrInvalidID = errors.New("invalid session id")

// State is the per-user UI state kept between interactions.
// It lives only as long as the session TTL.
type State struct {
	SelectedGoalID int              `json:"selectedGoalId,omitempty"`
	Flash          []backend.Notice `json:"flash,omitempty"`
}

// TakeFlash returns the pending flash notices and clears them.
func (s *State) TakeFlash() []backend.Notice {
	flash := s.Flash
	s.Flash = nil
	return flash
}

func (s *State) AddFlash(notice backend.Notice) {
	s.Flash = append(s.Flash, notice)
}

// Store keeps session states by id. Get returns an empty state for
// unknown or expired sessions.
type Store interface {
	Get(ctx context.Context, id string) (State, error)
	Save(ctx context.Context, id string, state State) error
	Delete(ctx context.Context, id string) error
}

func validateID(id string) error {
	if len(id) != idBytes*2 {
		return fmt.Errorf("%w: length %d", ErrInvalidID, len(id))
	}
	for _, c := range id {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return fmt.Errorf("%w: unexpected char %q", ErrInvalidID, c)
		}
	}
	return nil
}
