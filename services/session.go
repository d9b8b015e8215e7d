package services

import (
	"encoding/gob"
	"net/http"

	"Katta/config"

	"github.com/gorilla/sessions"
)

const sessionName = "katta-session"

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Kind    string
	Message string
}

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

func init() {
	// Flashes ride inside the signed session cookie.
	gob.Register(Flash{})
}

// SessionManager owns the signed-cookie session store. It is constructed
// once at startup and handed to handlers and middleware explicitly.
type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(cfg *config.Config) *SessionManager {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	secure := false
	if cfg.Environment == "production" {
		secure = true
	}

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionManager{store: store}
}

// session never fails outright: a cookie that does not decode yields a
// fresh empty session.
func (m *SessionManager) session(r *http.Request) *sessions.Session {
	s, _ := m.store.Get(r, sessionName)
	return s
}

// SignIn marks the session as authenticated for username.
func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, username string) error {
	s := m.session(r)
	s.Values["user"] = username
	return s.Save(r, w)
}

// SignOut drops the authenticated identity but keeps the session alive so a
// farewell flash can still be delivered.
func (m *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	s := m.session(r)
	delete(s.Values, "user")
	return s.Save(r, w)
}

// CurrentUsername returns the authenticated username, or "" for anonymous
// requests.
func (m *SessionManager) CurrentUsername(r *http.Request) string {
	if username, ok := m.session(r).Values["user"].(string); ok {
		return username
	}
	return ""
}

// AddFlash queues a message for the next rendered page.
func (m *SessionManager) AddFlash(w http.ResponseWriter, r *http.Request, kind, message string) {
	s := m.session(r)
	s.AddFlash(Flash{Kind: kind, Message: message})
	s.Save(r, w)
}

// Flashes consumes and returns the queued messages.
func (m *SessionManager) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	s := m.session(r)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Reading flashes mutates the session; save to clear them.
	s.Save(r, w)

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
