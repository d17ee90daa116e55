// Package auth implements static-credential login and bearer session tokens.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	tokenLength = 32
	sessionTTL  = 12 * time.Hour
)

// ErrInvalidCredentials is returned when the username or password does not
// match a configured account.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Account is a configured administrator account.
type Account struct {
	Password    string
	DisplayName string
}

type session struct {
	actor     string
	expiresAt time.Time
}

// Manager validates credentials against the static account set and manages
// in-memory session tokens. Tokens expire after the session TTL; there is no
// refresh, a user simply logs in again.
type Manager struct {
	accounts map[string]Account

	mu       sync.Mutex
	sessions map[string]session
}

// NewManager creates a Manager over the configured accounts.
func NewManager(accounts map[string]Account) *Manager {
	return &Manager{
		accounts: accounts,
		sessions: make(map[string]session),
	}
}

// Login checks the credentials and, on success, issues a session token and
// returns it together with the account's display name.
func (m *Manager) Login(username, password string) (token, displayName string, err error) {
	account, ok := m.accounts[username]
	if !ok || account.Password != password {
		return "", "", ErrInvalidCredentials
	}

	token, err = generateToken(tokenLength)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate session token: %w", err)
	}

	m.mu.Lock()
	m.sessions[token] = session{
		actor:     account.DisplayName,
		expiresAt: time.Now().Add(sessionTTL),
	}
	m.mu.Unlock()

	return token, account.DisplayName, nil
}

// Actor resolves a session token to the logged-in actor's display name.
// Expired tokens are removed on lookup.
func (m *Manager) Actor(token string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return "", false
	}
	if time.Now().After(sess.expiresAt) {
		delete(m.sessions, token)
		return "", false
	}
	return sess.actor, true
}

// Logout revokes a session token.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// generateToken generates a random URL-safe token string.
func generateToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
