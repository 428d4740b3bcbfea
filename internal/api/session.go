package api

import (
	"sync"

	"github.com/heelin/finfolio/internal/secrets"
)

// Session owns the bearer token for the lifetime of the process. It is
// constructed once and injected into the Client and the router rather
// than read from global state. Reads happen on command goroutines, so
// access is mutex-guarded.
type Session struct {
	mu      sync.RWMutex
	token   string
	persist bool
}

// NewSession restores any previously persisted token from the secrets
// store. Token changes are written back through it.
func NewSession() *Session {
	s := &Session{persist: true}
	if tok, err := secrets.FetchToken(); err == nil {
		s.token = tok
	}
	return s
}

// NewEphemeralSession returns a session that never touches disk.
func NewEphemeralSession(token string) *Session {
	return &Session{token: token}
}

// Token returns the current bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is held.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Set stores the token after a successful login. The returned error
// only concerns persistence; the in-memory token is always updated.
func (s *Session) Set(token string) error {
	s.mu.Lock()
	s.token = token
	persist := s.persist
	s.mu.Unlock()
	if !persist {
		return nil
	}
	return secrets.StoreToken(token)
}

// Clear drops the token on logout.
func (s *Session) Clear() error {
	s.mu.Lock()
	s.token = ""
	persist := s.persist
	s.mu.Unlock()
	if !persist {
		return nil
	}
	return secrets.DeleteToken()
}
