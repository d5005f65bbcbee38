package store

import (
	"context"
	"sync"

	"github.com/Ahmed-As3ad/e-commerce/commerce"
	"github.com/Ahmed-As3ad/e-commerce/internal/token"
)

// Cart caches the authoritative cart snapshot. Every mutation is a single
// round trip whose response replaces the whole snapshot; totals and counts
// are trusted verbatim from the server.
//
// Mutations are not idempotent-safe across concurrent tabs or devices.
// The design assumes a single writer per session: rapid overlapping
// mutations race and the last response to arrive wins in the cache.
type Cart struct {
	activity
	client  *commerce.Client
	keyring *token.Keyring

	mu       sync.RWMutex
	snapshot *commerce.CartSnapshot
	orders   []commerce.Order
}

// NewCart creates a cart store over the given client and keyring.
func NewCart(client *commerce.Client, keyring *token.Keyring) *Cart {
	return &Cart{client: client, keyring: keyring}
}

// Snapshot returns the cached snapshot. When nothing has been fetched yet
// it returns an empty snapshot as a display-only fallback; zero totals here
// are never authoritative.
func (c *Cart) Snapshot() commerce.CartSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snapshot == nil {
		return commerce.CartSnapshot{}
	}
	snap := *c.snapshot
	snap.Items = append([]commerce.CartItem(nil), c.snapshot.Items...)
	return snap
}

func (c *Cart) replace(snap *commerce.CartSnapshot) {
	c.mu.Lock()
	c.snapshot = snap
	c.mu.Unlock()
}

// Fetch refreshes the snapshot from the server. Called on session
// establishment and after mutations whose responses are not full snapshots.
func (c *Cart) Fetch(ctx context.Context) (commerce.CartSnapshot, error) {
	if !c.keyring.Has() {
		return commerce.CartSnapshot{}, ErrNotAuthenticated
	}

	c.begin()
	defer c.end()

	snap, err := c.client.Cart.Get(ctx)
	if err != nil {
		return commerce.CartSnapshot{}, err
	}
	c.replace(snap)
	return c.Snapshot(), nil
}

// AddItem puts one unit of a product into the cart, then refreshes. The
// add response embeds bare product references, so the follow-up fetch is
// what produces a renderable snapshot.
func (c *Cart) AddItem(ctx context.Context, productID string) (commerce.CartSnapshot, error) {
	if !c.keyring.Has() {
		return commerce.CartSnapshot{}, ErrNotAuthenticated
	}

	c.begin()
	_, err := c.client.Cart.Add(ctx, productID)
	c.end()
	if err != nil {
		return commerce.CartSnapshot{}, err
	}

	return c.Fetch(ctx)
}

// SetQuantity sets a line's quantity. Counts below 1 are rejected without
// a network call; the decrement control is disabled at 1 and removal is a
// separate, explicit action.
func (c *Cart) SetQuantity(ctx context.Context, productID string, count int) (commerce.CartSnapshot, error) {
	if count < 1 {
		return commerce.CartSnapshot{}, ErrMinQuantity
	}
	if !c.keyring.Has() {
		return commerce.CartSnapshot{}, ErrNotAuthenticated
	}

	c.begin()
	defer c.end()

	snap, err := c.client.Cart.UpdateQuantity(ctx, productID, count)
	if err != nil {
		return commerce.CartSnapshot{}, err
	}
	c.replace(snap)
	return c.Snapshot(), nil
}

// RemoveItem deletes a line; the response replaces the snapshot.
func (c *Cart) RemoveItem(ctx context.Context, productID string) (commerce.CartSnapshot, error) {
	if !c.keyring.Has() {
		return commerce.CartSnapshot{}, ErrNotAuthenticated
	}

	c.begin()
	defer c.end()

	snap, err := c.client.Cart.Remove(ctx, productID)
	if err != nil {
		return commerce.CartSnapshot{}, err
	}
	c.replace(snap)
	return c.Snapshot(), nil
}

// Clear empties the cart. The endpoint acknowledges without a snapshot, so
// the cache is reset to the empty state the server now holds.
func (c *Cart) Clear(ctx context.Context) error {
	if !c.keyring.Has() {
		return ErrNotAuthenticated
	}

	c.begin()
	defer c.end()

	if err := c.client.Cart.Clear(ctx); err != nil {
		return err
	}
	c.replace(&commerce.CartSnapshot{})
	return nil
}

// InitiateCheckout posts the chosen shipping address for the given cart and
// returns the hosted-payment redirect URL. The caller navigates the user to
// that URL wholesale; payment handling belongs to the external processor.
func (c *Cart) InitiateCheckout(ctx context.Context, cartID string, addr commerce.ShippingAddress, returnURL string) (string, error) {
	if !c.keyring.Has() {
		return "", ErrNotAuthenticated
	}

	c.begin()
	defer c.end()

	return c.client.Cart.CheckoutSession(ctx, cartID, addr, returnURL)
}

// OrderHistory decodes the session token for the user id and fetches that
// user's past orders.
func (c *Cart) OrderHistory(ctx context.Context) ([]commerce.Order, error) {
	raw, ok := c.keyring.Token()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	claims, err := token.Decode(raw)
	if err != nil {
		return nil, err
	}

	c.begin()
	defer c.end()

	orders, err := c.client.Orders.ListByUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.orders = orders
	c.mu.Unlock()

	return orders, nil
}

// Orders returns the cached order history.
func (c *Cart) Orders() []commerce.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]commerce.Order(nil), c.orders...)
}
