package commerce

import (
	"context"
	"fmt"
)

// OrdersService handles read-only order history.
type OrdersService struct {
	client *Client
}

// ListByUser fetches a user's past orders. The endpoint keys on the user id
// embedded in the session token rather than the token header itself.
func (s *OrdersService) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	var resp []Order
	if err := s.client.get(ctx, fmt.Sprintf("/orders/user/%s", userID), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
