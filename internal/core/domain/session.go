package domain

import (
	"sync"
	"time"
)

// SessionStatus is the auth session lifecycle state.
type SessionStatus string

const (
	SessionOffline   SessionStatus = "Offline"
	SessionConnected SessionStatus = "Connected"
	SessionSigned    SessionStatus = "Signed"
)

// AuthSession carries the wallet connection and sign-in state. It is an
// explicit, passed-in dependency of every component that needs it — not
// ambient global state. Transitions only move forward except Reset, which
// returns to Offline.
//
// The session is safe for concurrent reads; only the auth challenge flow
// writes to it.
type AuthSession struct {
	mu          sync.RWMutex
	status      SessionStatus
	address     string
	lastNonce   string
	accessToken string
	expiresAt   time.Time
}

// NewAuthSession returns a session in the Offline state.
func NewAuthSession() *AuthSession {
	return &AuthSession{status: SessionOffline}
}

// Status returns the current lifecycle state.
func (s *AuthSession) Status() SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Address returns the connected wallet address, empty while Offline.
func (s *AuthSession) Address() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.address
}

// LastNonce returns the nonce used by the most recent challenge.
func (s *AuthSession) LastNonce() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastNonce
}

// SessionToken returns the signed session token and whether one is held.
func (s *AuthSession) SessionToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.status != SessionSigned || s.accessToken == "" {
		return "", false
	}
	return s.accessToken, true
}

// Signed reports whether a valid signed session token has been obtained.
func (s *AuthSession) Signed() bool {
	_, ok := s.SessionToken()
	return ok
}

// ExpiresAt returns the token expiry, zero if unknown.
func (s *AuthSession) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// SetConnected records a successful wallet connect.
func (s *AuthSession) SetConnected(address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = SessionConnected
	s.address = address
	s.accessToken = ""
	s.expiresAt = time.Time{}
}

// SetNonce records the nonce of the challenge in flight.
func (s *AuthSession) SetNonce(nonce string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastNonce = nonce
}

// SetSigned records a server-verified sign-in.
func (s *AuthSession) SetSigned(token string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = SessionSigned
	s.accessToken = token
	s.expiresAt = expiresAt
}

// Reset returns the session to Offline, dropping address and token.
func (s *AuthSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = SessionOffline
	s.address = ""
	s.lastNonce = ""
	s.accessToken = ""
	s.expiresAt = time.Time{}
}
