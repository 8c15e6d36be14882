package backend

import (
	"context"
	"net/url"
	"strconv"
)

// CartQueryArgs select carts by owner. Expansions are forwarded verbatim.
type CartQueryArgs struct {
	Limit      int
	CustomerID string
	Where      []string
	Expand     []string
}

func (a CartQueryArgs) values() url.Values {
	v := url.Values{}
	if a.Limit > 0 {
		v.Set("limit", strconv.Itoa(a.Limit))
	}
	if a.CustomerID != "" {
		v.Set("customerId", a.CustomerID)
	}
	for _, w := range a.Where {
		v.Add("where", w)
	}
	for _, e := range a.Expand {
		v.Add("expand", e)
	}
	return v
}

// QueryCarts lists carts for an owner.
func (c *Client) QueryCarts(ctx context.Context, args CartQueryArgs) (*CartPagedQueryResponse, error) {
	var out CartPagedQueryResponse
	if err := c.get(ctx, "/carts", args.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCartByID fetches one cart.
func (c *Client) GetCartByID(ctx context.Context, id string, expand []string) (*Cart, error) {
	v := url.Values{}
	for _, e := range expand {
		v.Add("expand", e)
	}
	var out Cart
	if err := c.get(ctx, "/carts/"+id, v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCart creates a cart from a draft.
func (c *Client) CreateCart(ctx context.Context, draft CartDraft, expand []string) (*Cart, error) {
	v := url.Values{}
	for _, e := range expand {
		v.Add("expand", e)
	}
	var out Cart
	if err := c.post(ctx, "/carts", v, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCart applies update actions against the cart's current version.
// A version conflict comes back as a backend error; the caller decides
// how to surface it.
func (c *Client) UpdateCart(ctx context.Context, id string, update Update, expand []string) (*Cart, error) {
	v := url.Values{}
	for _, e := range expand {
		v.Add("expand", e)
	}
	var out Cart
	if err := c.post(ctx, "/carts/"+id, v, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
