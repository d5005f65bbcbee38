package store

// TokenPresence is the read side of the keyring that the gate needs.
type TokenPresence interface {
	Has() bool
}

// Gate is the route-level access check: a pure presence decision over the
// persisted token. It deliberately does not validate expiry or signature;
// that happens lazily inside the session store.
type Gate struct {
	tokens TokenPresence
}

// NewGate creates a gate over the given token presence check.
func NewGate(tokens TokenPresence) Gate {
	return Gate{tokens: tokens}
}

// Allow reports whether gated content may render. No token means deny;
// the caller redirects to login with a notification and must not attempt
// any network call for the gated content.
func (g Gate) Allow() bool {
	return g.tokens.Has()
}

// Require returns ErrNotAuthenticated when access is denied.
func (g Gate) Require() error {
	if !g.Allow() {
		return ErrNotAuthenticated
	}
	return nil
}
