package api

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSource holds the JWT access/refresh pair for the current session.
// It is safe for concurrent use.
type TokenSource struct {
	mu      sync.Mutex
	access  string
	refresh string
}

// Set stores a fresh token pair. An empty refresh keeps the previous one,
// which matches the collaborator's refresh endpoint returning only a new
// access token.
func (t *TokenSource) Set(access, refresh string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.access = access
	if refresh != "" {
		t.refresh = refresh
	}
}

// Access returns the current access token ("" when not logged in).
func (t *TokenSource) Access() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.access
}

// Refresh returns the current refresh token.
func (t *TokenSource) Refresh() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.refresh
}

// Clear drops both tokens (logout).
func (t *TokenSource) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.access, t.refresh = "", ""
}

// AccessExpired reports whether the access token is absent, unparsable, or
// expires within leeway. The token is inspected without signature
// verification; the collaborator remains the authority on validity.
func (t *TokenSource) AccessExpired(leeway time.Duration) bool {
	tok := t.Access()
	if tok == "" {
		return true
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return time.Until(exp.Time) < leeway
}
