package commerce

import (
	"context"
	"fmt"
	"net/url"
)

// CartService handles cart reads and mutations. Every response carries the
// server's full recomputed cart, which callers treat as the new snapshot.
type CartService struct {
	client *Client
}

// Get fetches the current cart snapshot.
func (s *CartService) Get(ctx context.Context) (*CartSnapshot, error) {
	var resp cartResponse
	if err := s.client.getAuthed(ctx, "/cart", &resp); err != nil {
		return nil, err
	}
	return resp.toSnapshot(), nil
}

// Add puts one unit of a product into the cart.
//
// The add response embeds product references rather than full product
// documents, so callers refresh via Get for a renderable snapshot.
func (s *CartService) Add(ctx context.Context, productID string) (*CartSnapshot, error) {
	body := map[string]string{"productId": productID}
	var resp cartResponse
	if err := s.client.postAuthed(ctx, "/cart", body, &resp); err != nil {
		return nil, err
	}
	return resp.toSnapshot(), nil
}

// UpdateQuantity sets the quantity of a cart line.
func (s *CartService) UpdateQuantity(ctx context.Context, productID string, count int) (*CartSnapshot, error) {
	body := map[string]int{"count": count}
	var resp cartResponse
	if err := s.client.putAuthed(ctx, fmt.Sprintf("/cart/%s", productID), body, &resp); err != nil {
		return nil, err
	}
	return resp.toSnapshot(), nil
}

// Remove deletes a line from the cart.
func (s *CartService) Remove(ctx context.Context, productID string) (*CartSnapshot, error) {
	var resp cartResponse
	if err := s.client.deleteAuthed(ctx, fmt.Sprintf("/cart/%s", productID), &resp); err != nil {
		return nil, err
	}
	return resp.toSnapshot(), nil
}

// Clear empties the whole cart. The endpoint acknowledges with a bare
// message, not a snapshot.
func (s *CartService) Clear(ctx context.Context) error {
	var resp messageResponse
	return s.client.deleteAuthed(ctx, "/cart", &resp)
}

// CheckoutSession posts the chosen shipping address and returns the
// hosted-payment redirect URL. Payment handling is handed off entirely to
// the external processor; there is no client-side payment flow.
func (s *CartService) CheckoutSession(ctx context.Context, cartID string, addr ShippingAddress, returnURL string) (string, error) {
	body := map[string]ShippingAddress{"shippingAddress": addr}
	path := fmt.Sprintf("/orders/checkout-session/%s?url=%s", cartID, url.QueryEscape(returnURL))

	var resp checkoutResponse
	if err := s.client.postAuthed(ctx, path, body, &resp); err != nil {
		return "", err
	}
	if resp.Status != "success" || resp.Session.URL == "" {
		return "", &Error{Status: resp.Status, Message: "checkout session did not return a redirect URL"}
	}
	return resp.Session.URL, nil
}
