package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogJSON(products ...string) string {
	return fmt.Sprintf(`{"results":%d,"data":[%s]}`, len(products), strings.Join(products, ","))
}

func TestCatalog_ListAll(t *testing.T) {
	keyring := emptyKeyring(t)
	client := testClient(t, keyring, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		fmt.Fprint(w, catalogJSON(
			jsonProduct("p1", "Blue Shirt", "Men's Fashion"),
			jsonProduct("p2", "Red Dress", "Women's Fashion"),
		))
	}))
	catalog := NewCatalog(client, keyring)

	products, err := catalog.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Len(t, catalog.Products(), 2)
}

func TestCatalog_ListRelated_ExactCategoryMatch(t *testing.T) {
	// "Men's Fashion" is a suffix of "Women's Fashion"; only an exact
	// name comparison keeps them apart.
	keyring := emptyKeyring(t)
	client := testClient(t, keyring, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, catalogJSON(
			jsonProduct("p1", "Blue Shirt", "Men's Fashion"),
			jsonProduct("p2", "Red Dress", "Women's Fashion"),
			jsonProduct("p3", "Green Shirt", "Men's Fashion"),
		))
	}))
	catalog := NewCatalog(client, keyring)

	related, err := catalog.ListRelated(context.Background(), "Men's Fashion")
	require.NoError(t, err)
	require.Len(t, related, 2)
	assert.Equal(t, "p1", related[0].ID)
	assert.Equal(t, "p3", related[1].ID)
}

func TestCatalog_ListRelated_Limit(t *testing.T) {
	var products []string
	for i := 0; i < RelatedLimit+4; i++ {
		products = append(products, jsonProduct(fmt.Sprintf("p%d", i), "Shirt", "Men's Fashion"))
	}

	keyring := emptyKeyring(t)
	client := testClient(t, keyring, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, catalogJSON(products...))
	}))
	catalog := NewCatalog(client, keyring)

	related, err := catalog.ListRelated(context.Background(), "Men's Fashion")
	require.NoError(t, err)
	assert.Len(t, related, RelatedLimit)
}

func TestCatalog_ListRelated_NoMatches(t *testing.T) {
	keyring := emptyKeyring(t)
	client := testClient(t, keyring, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, catalogJSON(jsonProduct("p1", "Blue Shirt", "Men's Fashion")))
	}))
	catalog := NewCatalog(client, keyring)

	related, err := catalog.ListRelated(context.Background(), "Electronics")
	require.NoError(t, err)
	assert.Empty(t, related)
}

// wishlistServer is a stateful fake of the wishlist endpoints.
type wishlistServer struct {
	mu  sync.Mutex
	ids []string
}

func (s *wishlistServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/wishlist":
		var products []string
		for _, id := range s.ids {
			products = append(products, jsonProduct(id, "Item "+id, "Men's Fashion"))
		}
		fmt.Fprintf(w, `{"status":"success","count":%d,"data":[%s]}`, len(s.ids), strings.Join(products, ","))
	case r.Method == http.MethodPost && r.URL.Path == "/wishlist":
		var body struct {
			ProductID string `json:"productId"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		s.ids = append(s.ids, body.ProductID)
		fmt.Fprint(w, `{"status":"success","message":"added","data":[]}`)
	case r.Method == http.MethodDelete:
		id := strings.TrimPrefix(r.URL.Path, "/wishlist/")
		kept := s.ids[:0]
		for _, existing := range s.ids {
			if existing != id {
				kept = append(kept, existing)
			}
		}
		s.ids = kept
		fmt.Fprint(w, `{"status":"success","message":"removed","data":[]}`)
	default:
		http.NotFound(w, r)
	}
}

func TestCatalog_WishlistRoundTrip(t *testing.T) {
	keyring := loggedInKeyring(t)
	client := testClient(t, keyring, &wishlistServer{})
	catalog := NewCatalog(client, keyring)

	assert.False(t, catalog.InWishlist("p1"))

	require.NoError(t, catalog.AddToWishlist(context.Background(), "p1"))
	assert.True(t, catalog.InWishlist("p1"))
	require.Len(t, catalog.Wishlist(), 1)

	require.NoError(t, catalog.RemoveFromWishlist(context.Background(), "p1"))
	assert.False(t, catalog.InWishlist("p1"))
	assert.Empty(t, catalog.Wishlist())
}

func TestCatalog_RefreshWishlist_ReplacesMembership(t *testing.T) {
	srv := &wishlistServer{ids: []string{"p1", "p2"}}
	keyring := loggedInKeyring(t)
	client := testClient(t, keyring, srv)
	catalog := NewCatalog(client, keyring)

	_, err := catalog.RefreshWishlist(context.Background())
	require.NoError(t, err)
	assert.True(t, catalog.InWishlist("p1"))
	assert.True(t, catalog.InWishlist("p2"))

	// server state changes out of band; a refresh replaces, never merges
	srv.mu.Lock()
	srv.ids = []string{"p2"}
	srv.mu.Unlock()

	_, err = catalog.RefreshWishlist(context.Background())
	require.NoError(t, err)
	assert.False(t, catalog.InWishlist("p1"))
	assert.True(t, catalog.InWishlist("p2"))
}

func TestCatalog_Wishlist_Unauthenticated(t *testing.T) {
	keyring := emptyKeyring(t)
	handler := &countingHandler{}
	client := testClient(t, keyring, handler)
	catalog := NewCatalog(client, keyring)

	assert.ErrorIs(t, catalog.AddToWishlist(context.Background(), "p1"), ErrNotAuthenticated)
	assert.ErrorIs(t, catalog.RemoveFromWishlist(context.Background(), "p1"), ErrNotAuthenticated)
	_, err := catalog.RefreshWishlist(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	assert.Zero(t, handler.hits, "unauthenticated wishlist calls must not reach the network")
}
