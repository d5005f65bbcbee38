package store

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-As3ad/e-commerce/commerce"
	"github.com/Ahmed-As3ad/e-commerce/internal/token"
)

// testUserID is the id claim baked into tokens minted by loggedInKeyring.
const testUserID = "u1"

func emptyKeyring(t *testing.T) *token.Keyring {
	t.Helper()
	k, err := token.NewKeyring(filepath.Join(t.TempDir(), "token.json"))
	require.NoError(t, err)
	return k
}

// loggedInKeyring returns a keyring holding a well-formed, unexpired token
// for testUserID. The signature is arbitrary; the stores never verify it.
func loggedInKeyring(t *testing.T) *token.Keyring {
	t.Helper()
	k := emptyKeyring(t)

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   testUserID,
		"name": "Ahmed",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	require.NoError(t, k.Save(raw))
	return k
}

func testClient(t *testing.T, keyring *token.Keyring, handler http.Handler) *commerce.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return commerce.NewClient(keyring, commerce.WithBaseURL(server.URL))
}

// countingHandler wraps a handler and counts how many requests reached it.
// Used to prove that fail-fast paths never touch the network.
type countingHandler struct {
	hits int
	next http.Handler
}

func (h *countingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.hits++
	if h.next != nil {
		h.next.ServeHTTP(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func jsonProduct(id, title, category string) string {
	return `{"_id":"` + id + `","title":"` + title + `","price":100,"imageCover":"x.jpg",` +
		`"category":{"_id":"c1","name":"` + category + `"},"ratingsAverage":4,"ratingsQuantity":1}`
}
