package session

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/wellnessbuddy/pkg"

	log "github.com/sirupsen/logrus"
)

const (
	CookieName = "wb_session"
	idBytes    = 16
)

type Session struct {
	ID    string
	State State
	isNew bool
}

func (s *Session) IsNew() bool {
	return s.isNew
}

// Manager maps the session cookie to a stored State.
type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{
		store: store,
		ttl:   ttl,
	}
}

// Load returns the session of the request, starting a new one (and setting
// the cookie) when the request has none or an invalid one. Store failures
// are logged and yield an empty state, the page still renders.
func (m *Manager) Load(w http.ResponseWriter, r *http.Request) *Session {
	if cookie, err := r.Cookie(CookieName); err == nil {
		if err := validateID(cookie.Value); err != nil {
			log.Debugf("ignoring session cookie: %s", err)
		} else {
			state, err := m.store.Get(r.Context(), cookie.Value)
			if err != nil {
				log.Errorf("load session: %s", err)
			}
			m.setCookie(w, cookie.Value)
			return &Session{ID: cookie.Value, State: state}
		}
	}

	id, err := pkg.RandomID(idBytes)
	if err != nil {
		log.Errorf("new session id: %s", err)
		return &Session{isNew: true}
	}
	m.setCookie(w, id)

	return &Session{ID: id, isNew: true}
}

// Save stores the session state and extends its TTL.
func (m *Manager) Save(ctx context.Context, s *Session) error {
	if s.ID == "" {
		return nil
	}
	return m.store.Save(ctx, s.ID, s.State)
}

func (m *Manager) setCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
