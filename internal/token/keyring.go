// Package token manages the persisted bearer token and the identity claims
// embedded in it. The token file is the only durable client-side state.
package token

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const keyringVersion = 1

// keyringData is the on-disk shape of the token file.
type keyringData struct {
	Version int    `json:"version"`
	Token   string `json:"token"`
}

// Keyring persists the bearer token at a fixed path with atomic writes.
//
// Token is re-read from disk on every call rather than cached, so a logout
// in one process is observed by the next call in another. Calls already in
// flight keep the token they started with.
type Keyring struct {
	mu   sync.RWMutex
	path string
}

// NewKeyring creates a keyring at the given path. The parent directory is
// created with 0700 permissions if it does not exist.
func NewKeyring(path string) (*Keyring, error) {
	if path == "" {
		return nil, fmt.Errorf("token: keyring path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}
	return &Keyring{path: path}, nil
}

// Path returns the token file path.
func (k *Keyring) Path() string {
	return k.path
}

// Token returns the persisted token and whether one is present.
// Implements commerce.TokenSource.
func (k *Keyring) Token() (string, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	data, err := os.ReadFile(k.path)
	if err != nil || len(data) == 0 {
		return "", false
	}

	var kd keyringData
	if err := json.Unmarshal(data, &kd); err != nil || kd.Token == "" {
		return "", false
	}
	return kd.Token, true
}

// Has reports whether a token is persisted. This is a presence check only;
// expiry and signature are validated lazily by the session store.
func (k *Keyring) Has() bool {
	_, ok := k.Token()
	return ok
}

// Save writes the token atomically using the temp file + rename pattern.
func (k *Keyring) Save(token string) error {
	if token == "" {
		return fmt.Errorf("token: cannot save empty token")
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	data, err := json.MarshalIndent(keyringData{Version: keyringVersion, Token: token}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	tmpPath := k.path + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write: %w", err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("fsync: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close: %w", err)
	}

	if err := os.Rename(tmpPath, k.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename: %w", err)
	}

	return nil
}

// Clear removes the persisted token. Clearing an absent token is not an
// error; logout must be idempotent.
func (k *Keyring) Clear() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := os.Remove(k.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}
