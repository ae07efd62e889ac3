package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"

	"simsea/internal/guard"
	"simsea/internal/models"
)

const (
	SessionName = "simsea_session"

	sessionUsername      = "username"
	sessionRole          = "role"
	sessionPendingDelete = "pending_delete"
)

// NewSessionStore returns the cookie store holding the logged-in actor and the
// pending delete of each browser session.
func NewSessionStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

func session(r *http.Request, store sessions.Store) *sessions.Session {
	// A cookie that fails to decode yields a fresh session alongside the error.
	s, _ := store.Get(r, SessionName)
	return s
}

func SessionActor(r *http.Request, store sessions.Store) (models.Actor, bool) {
	s := session(r, store)
	if s == nil {
		return models.Actor{}, false
	}
	username, _ := s.Values[sessionUsername].(string)
	role, _ := s.Values[sessionRole].(string)
	if username == "" {
		return models.Actor{}, false
	}
	if role != models.RoleAdmin {
		role = models.RoleUser
	}
	return models.Actor{Username: username, Role: role}, true
}

// StartSession stores actor in a fresh session and drops any pending delete.
func StartSession(w http.ResponseWriter, r *http.Request, store sessions.Store, actor models.Actor) error {
	s := session(r, store)
	s.Values = map[interface{}]interface{}{
		sessionUsername: actor.Username,
		sessionRole:     actor.Role,
	}
	return s.Save(r, w)
}

func EndSession(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	s := session(r, store)
	s.Values = map[interface{}]interface{}{}
	s.Options = &sessions.Options{Path: "/", MaxAge: -1}
	return s.Save(r, w)
}

func LoadDeleteFlow(r *http.Request, store sessions.Store) guard.DeleteFlow {
	s := session(r, store)
	if s == nil {
		return guard.DeleteFlow{}
	}
	pending, _ := s.Values[sessionPendingDelete].(int64)
	return guard.DeleteFlow{Pending: pending}
}

func SaveDeleteFlow(w http.ResponseWriter, r *http.Request, store sessions.Store, flow guard.DeleteFlow) error {
	s := session(r, store)
	if flow.Idle() {
		delete(s.Values, sessionPendingDelete)
	} else {
		s.Values[sessionPendingDelete] = flow.Pending
	}
	return s.Save(r, w)
}
