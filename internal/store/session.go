package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/Ahmed-As3ad/e-commerce/commerce"
	"github.com/Ahmed-As3ad/e-commerce/internal/token"
)

// Session holds the login flag and the decoded identity of the current
// user. The persisted token is the source of truth: the authenticated flag
// must never be true while the keyring holds no valid token, and a decode
// failure forces logout.
type Session struct {
	activity
	client  *commerce.Client
	keyring *token.Keyring
	logger  *slog.Logger

	mu       sync.RWMutex
	loggedIn bool
	user     *commerce.User
}

// NewSession creates a session store over the given client and keyring.
func NewSession(client *commerce.Client, keyring *token.Keyring, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{client: client, keyring: keyring, logger: logger}
}

// Login marks the session authenticated. It does not acquire a token; the
// register/login flow writes the token to the keyring directly.
func (s *Session) Login() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = true
}

// Logout clears the authenticated flag, the cached identity and the
// persisted token. Idempotent: logging out twice is fine.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.loggedIn = false
	s.user = nil
	s.mu.Unlock()

	if err := s.keyring.Clear(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// Authenticated reports the login flag.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// User returns the cached profile, or nil if none has been loaded.
func (s *Session) User() *commerce.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// LoadProfile decodes the persisted token and fetches the full user record,
// including saved addresses.
//
// Fails with ErrNotAuthenticated when no token is persisted, forces logout
// and fails with token.ErrInvalidToken or token.ErrExpired when the token
// cannot be trusted, and propagates API errors otherwise. On an API error
// the previously cached profile is left untouched.
func (s *Session) LoadProfile(ctx context.Context) (*commerce.User, error) {
	raw, ok := s.keyring.Token()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	claims, err := token.Decode(raw)
	if err != nil {
		s.logger.Warn("token decode failed, forcing logout", slog.Any("error", err))
		_ = s.Logout()
		return nil, err
	}
	if claims.Expired() {
		s.logger.Info("session token expired, forcing logout")
		_ = s.Logout()
		return nil, token.ErrExpired
	}

	s.begin()
	defer s.end()

	user, err := s.client.Users.Get(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.loggedIn = true
	s.mu.Unlock()

	return user, nil
}

// ChangePassword rotates the account password. The confirmation must match
// client-side before any network call. On success the session keeps its
// existing token; the server keeps honoring it until natural expiry.
func (s *Session) ChangePassword(ctx context.Context, current, next, confirm string) error {
	if next != confirm {
		return ErrPasswordMismatch
	}
	if !s.keyring.Has() {
		return ErrNotAuthenticated
	}

	s.begin()
	defer s.end()

	_, err := s.client.Auth.ChangePassword(ctx, commerce.ChangePasswordRequest{
		CurrentPassword: current,
		Password:        next,
		RePassword:      confirm,
	})
	return err
}

// Claims decodes the persisted token's identity without a network call.
func (s *Session) Claims() (*token.Claims, error) {
	raw, ok := s.keyring.Token()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return token.Decode(raw)
}
