package commerce

import (
	"context"
	"fmt"
)

// ProductsService handles catalog reads. Both endpoints are public.
type ProductsService struct {
	client *Client
}

// List fetches the full product catalog in one bulk response.
func (s *ProductsService) List(ctx context.Context) ([]Product, error) {
	var resp productsResponse
	if err := s.client.get(ctx, "/products", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Get fetches one product's full detail.
func (s *ProductsService) Get(ctx context.Context, productID string) (*Product, error) {
	var resp productResponse
	if err := s.client.get(ctx, fmt.Sprintf("/products/%s", productID), &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
