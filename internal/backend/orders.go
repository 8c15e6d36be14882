package backend

import (
	"context"
	"net/url"
)

// CreateOrderFromCart places an order for the cart named in the draft.
func (c *Client) CreateOrderFromCart(ctx context.Context, draft OrderFromCartDraft, expand []string) (*Order, error) {
	v := url.Values{}
	for _, e := range expand {
		v.Add("expand", e)
	}
	var out Order
	if err := c.post(ctx, "/orders", v, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
