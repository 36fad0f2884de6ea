package authenticator

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"net/http"

	"gitea.com/go-chi/session"
)

// SessionValues is the subset of a session store the state store needs
type SessionValues interface {
	Set(key, value interface{}) error
	Get(key interface{}) interface{}
	Delete(key interface{}) error
}

// SessionStateStore keeps the pending state for one strategy in the user's session.
type SessionStateStore struct {
	key     string
	session func(r *http.Request) SessionValues
}

// NewSessionStateStore stores state under "oauth2:<name>:state" in the go-chi session
func NewSessionStateStore(name string) *SessionStateStore {
	return &SessionStateStore{
		key:     "oauth2:" + name + ":state",
		session: chiSession,
	}
}

// NewSessionStateStoreWith uses lookup instead of the go-chi session middleware
func NewSessionStateStoreWith(name string, lookup func(r *http.Request) SessionValues) *SessionStateStore {
	s := NewSessionStateStore(name)
	s.session = lookup
	return s
}

// Issue generates a random state and remembers it in the session
func (s *SessionStateStore) Issue(_ http.ResponseWriter, r *http.Request) (string, error) {
	sess := s.session(r)
	if sess == nil {
		return "", ErrNoSession
	}
	state, err := generateRandomState()
	if err != nil {
		return "", err
	}
	if err := sess.Set(s.key, state); err != nil {
		return "", err
	}
	return state, nil
}

// Verify checks state against the stored value. The stored value is consumed either way.
func (s *SessionStateStore) Verify(_ http.ResponseWriter, r *http.Request, state string) error {
	sess := s.session(r)
	if sess == nil {
		return ErrNoSession
	}
	stored, _ := sess.Get(s.key).(string)
	if err := sess.Delete(s.key); err != nil {
		return err
	}
	if stored == "" || state == "" {
		return ErrInvalidState
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(state)) != 1 {
		return ErrInvalidState
	}
	return nil
}

func chiSession(r *http.Request) SessionValues {
	sess := session.GetSession(r)
	if sess == nil {
		return nil
	}
	return sess
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
