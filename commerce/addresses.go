package commerce

import (
	"context"
	"fmt"
)

// AddressesService handles the user's saved shipping addresses.
type AddressesService struct {
	client *Client
}

// AddAddressRequest is the request for saving a new address.
type AddAddressRequest struct {
	Name    string `json:"name"`
	Details string `json:"details"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
}

// List fetches all saved addresses, complete or not.
func (s *AddressesService) List(ctx context.Context) ([]Address, error) {
	var resp addressesResponse
	if err := s.client.getAuthed(ctx, "/addresses", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Add saves a new address and returns the full updated address list.
func (s *AddressesService) Add(ctx context.Context, req AddAddressRequest) ([]Address, error) {
	var resp addressesResponse
	if err := s.client.postAuthed(ctx, "/addresses", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Delete removes a saved address.
func (s *AddressesService) Delete(ctx context.Context, addressID string) error {
	var resp messageResponse
	return s.client.deleteAuthed(ctx, fmt.Sprintf("/addresses/%s", addressID), &resp)
}
