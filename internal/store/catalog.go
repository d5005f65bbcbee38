package store

import (
	"context"
	"sync"

	"github.com/Ahmed-As3ad/e-commerce/commerce"
	"github.com/Ahmed-As3ad/e-commerce/internal/token"
)

// RelatedLimit caps how many related products a category lookup returns.
const RelatedLimit = 8

// Catalog caches product listings, single product detail, related-product
// subsets and the user's wishlist membership set. Every consumer of
// wishlist membership derives it from the one cached set, never from a
// partial cache of its own.
type Catalog struct {
	activity
	client  *commerce.Client
	keyring *token.Keyring

	mu          sync.RWMutex
	products    []commerce.Product
	detail      *commerce.Product
	related     []commerce.Product
	wishlist    []commerce.Product
	wishlistIDs map[string]struct{}
}

// NewCatalog creates a catalog store over the given client and keyring.
func NewCatalog(client *commerce.Client, keyring *token.Keyring) *Catalog {
	return &Catalog{
		client:      client,
		keyring:     keyring,
		wishlistIDs: make(map[string]struct{}),
	}
}

// ListAll fetches the full product catalog and replaces the cached listing.
func (c *Catalog) ListAll(ctx context.Context) ([]commerce.Product, error) {
	c.begin()
	defer c.end()

	products, err := c.client.Products.List(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.products = products
	c.mu.Unlock()

	return products, nil
}

// GetByID fetches one product's full detail and replaces the cached detail.
func (c *Catalog) GetByID(ctx context.Context, productID string) (*commerce.Product, error) {
	c.begin()
	defer c.end()

	product, err := c.client.Products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.detail = product
	c.mu.Unlock()

	return product, nil
}

// ListRelated fetches the full catalog and filters client-side by exact
// category-name match, truncated to RelatedLimit entries. The API has no
// related-products endpoint; this simplification is deliberate.
func (c *Catalog) ListRelated(ctx context.Context, categoryName string) ([]commerce.Product, error) {
	c.begin()
	defer c.end()

	products, err := c.client.Products.List(ctx)
	if err != nil {
		return nil, err
	}

	related := make([]commerce.Product, 0, RelatedLimit)
	for _, p := range products {
		if p.Category.Name != categoryName {
			continue
		}
		related = append(related, p)
		if len(related) == RelatedLimit {
			break
		}
	}

	c.mu.Lock()
	c.related = related
	c.mu.Unlock()

	return related, nil
}

// RefreshWishlist fetches the wishlist and replaces the membership set.
func (c *Catalog) RefreshWishlist(ctx context.Context) ([]commerce.Product, error) {
	if !c.keyring.Has() {
		return nil, ErrNotAuthenticated
	}

	c.begin()
	defer c.end()

	wishlist, err := c.client.Wishlist.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]struct{}, len(wishlist))
	for _, p := range wishlist {
		ids[p.ID] = struct{}{}
	}

	c.mu.Lock()
	c.wishlist = wishlist
	c.wishlistIDs = ids
	c.mu.Unlock()

	return wishlist, nil
}

// AddToWishlist adds a product and re-fetches the wishlist so membership
// stays consistent across every consuming view. The mutation response is
// not trusted as authoritative.
func (c *Catalog) AddToWishlist(ctx context.Context, productID string) error {
	if !c.keyring.Has() {
		return ErrNotAuthenticated
	}

	c.begin()
	err := c.client.Wishlist.Add(ctx, productID)
	c.end()
	if err != nil {
		return err
	}

	_, err = c.RefreshWishlist(ctx)
	return err
}

// RemoveFromWishlist removes a product and re-fetches the wishlist.
func (c *Catalog) RemoveFromWishlist(ctx context.Context, productID string) error {
	if !c.keyring.Has() {
		return ErrNotAuthenticated
	}

	c.begin()
	err := c.client.Wishlist.Remove(ctx, productID)
	c.end()
	if err != nil {
		return err
	}

	_, err = c.RefreshWishlist(ctx)
	return err
}

// InWishlist reports membership from the cached set.
func (c *Catalog) InWishlist(productID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.wishlistIDs[productID]
	return ok
}

// Products returns the cached catalog listing.
func (c *Catalog) Products() []commerce.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]commerce.Product(nil), c.products...)
}

// Detail returns the cached product detail, or nil.
func (c *Catalog) Detail() *commerce.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.detail == nil {
		return nil
	}
	p := *c.detail
	return &p
}

// Wishlist returns the cached wishlist.
func (c *Catalog) Wishlist() []commerce.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]commerce.Product(nil), c.wishlist...)
}
