package commerce

import (
	"context"
	"fmt"
)

// UsersService handles user record reads.
type UsersService struct {
	client *Client
}

// Get fetches the full user record, including saved addresses.
func (s *UsersService) Get(ctx context.Context, userID string) (*User, error) {
	var resp userResponse
	if err := s.client.get(ctx, fmt.Sprintf("/users/%s", userID), &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
