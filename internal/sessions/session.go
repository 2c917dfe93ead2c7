// Package sessions owns the admin token lifecycle. The backend issues an
// opaque bearer token at login; it lives in one encrypted cookie slot and
// is discarded on logout or the first 401.
package sessions

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"

	"oyokai/internal/models"
)

const sessionName = "oyokai_admin"

const (
	keyToken     = "token"
	keyUserID    = "user_id"
	keyUsername  = "username"
	keyRole      = "role"
	keyFirstName = "first_name"
	keyLastName  = "last_name"
)

// Flash kinds used by the handlers.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

type Manager struct {
	store *sessions.CookieStore
}

// NewManager derives a signing and an encryption key from the configured
// secret. Secure must be set behind HTTPS.
func NewManager(secret string, secure bool) *Manager {
	h := sha256.Sum256([]byte("auth:" + secret))
	e := sha256.Sum256([]byte("enc:" + secret))

	store := sessions.NewCookieStore(h[:], e[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
	return &Manager{store: store}
}

func (m *Manager) get(r *http.Request) *sessions.Session {
	// An undecodable cookie still yields a fresh session to write into.
	s, _ := m.store.Get(r, sessionName)
	return s
}

// Establish persists a freshly issued token together with the profile of
// the operator it belongs to.
func (m *Manager) Establish(w http.ResponseWriter, r *http.Request, token string, user models.AuthUser) error {
	s := m.get(r)
	s.Values[keyToken] = token
	s.Values[keyUserID] = user.ID
	s.Values[keyUsername] = user.Username
	s.Values[keyRole] = user.Role
	s.Values[keyFirstName] = user.FirstName
	s.Values[keyLastName] = user.LastName
	return s.Save(r, w)
}

// Token returns the stored bearer token, if any.
func (m *Manager) Token(r *http.Request) (string, bool) {
	s := m.get(r)
	token, ok := s.Values[keyToken].(string)
	return token, ok && token != ""
}

// Current returns the stored operator profile.
func (m *Manager) Current(r *http.Request) (models.AuthUser, bool) {
	s := m.get(r)
	id, ok := s.Values[keyUserID].(int)
	if !ok {
		return models.AuthUser{}, false
	}
	username, _ := s.Values[keyUsername].(string)
	role, _ := s.Values[keyRole].(string)
	first, _ := s.Values[keyFirstName].(string)
	last, _ := s.Values[keyLastName].(string)
	return models.AuthUser{
		ID:        id,
		Username:  username,
		Role:      role,
		FirstName: first,
		LastName:  last,
	}, true
}

// Clear discards the token and profile. Used for explicit logout and for
// forced logout after a 401.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s := m.get(r)
	for _, k := range []string{keyToken, keyUserID, keyUsername, keyRole, keyFirstName, keyLastName} {
		delete(s.Values, k)
	}
	return s.Save(r, w)
}

// Flash queues a transient notice for the next rendered page.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, kind, msg string) {
	s := m.get(r)
	s.AddFlash(msg, kind)
	_ = s.Save(r, w)
}

// PopFlash returns and consumes the pending notice of the given kind.
func (m *Manager) PopFlash(w http.ResponseWriter, r *http.Request, kind string) string {
	s := m.get(r)
	flashes := s.Flashes(kind)
	if len(flashes) == 0 {
		return ""
	}
	_ = s.Save(r, w)
	if msg, ok := flashes[0].(string); ok {
		return msg
	}
	return ""
}
