package commerce

import (
	"context"
	"fmt"
)

// WishlistService handles the authenticated user's wishlist.
//
// Mutations return product-id lists, not product documents, so callers
// re-fetch via List after every mutation to keep membership authoritative.
type WishlistService struct {
	client *Client
}

// List fetches the wishlist as product summaries.
func (s *WishlistService) List(ctx context.Context) ([]Product, error) {
	var resp wishlistResponse
	if err := s.client.getAuthed(ctx, "/wishlist", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Add puts a product on the wishlist.
func (s *WishlistService) Add(ctx context.Context, productID string) error {
	body := map[string]string{"productId": productID}
	var resp messageResponse
	return s.client.postAuthed(ctx, "/wishlist", body, &resp)
}

// Remove takes a product off the wishlist.
func (s *WishlistService) Remove(ctx context.Context, productID string) error {
	var resp messageResponse
	return s.client.deleteAuthed(ctx, fmt.Sprintf("/wishlist/%s", productID), &resp)
}
