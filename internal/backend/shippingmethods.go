package backend

import (
	"context"
	"net/url"
)

// QueryShippingMethods lists every shipping method of the project.
func (c *Client) QueryShippingMethods(ctx context.Context, expand []string) (*ShippingMethodPagedQueryResponse, error) {
	v := url.Values{}
	for _, e := range expand {
		v.Add("expand", e)
	}
	var out ShippingMethodPagedQueryResponse
	if err := c.get(ctx, "/shipping-methods", v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QueryShippingMethodsMatchingLocation lists methods shippable to the
// given country; rates come back flagged with isMatching.
func (c *Client) QueryShippingMethodsMatchingLocation(ctx context.Context, country string, expand []string) (*ShippingMethodPagedQueryResponse, error) {
	v := url.Values{}
	v.Set("country", country)
	for _, e := range expand {
		v.Add("expand", e)
	}
	var out ShippingMethodPagedQueryResponse
	if err := c.get(ctx, "/shipping-methods/matching-location", v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QueryShippingMethodsMatchingCart lists methods available for a cart's
// shipping address.
func (c *Client) QueryShippingMethodsMatchingCart(ctx context.Context, cartID string, expand []string) (*ShippingMethodPagedQueryResponse, error) {
	v := url.Values{}
	v.Set("cartId", cartID)
	for _, e := range expand {
		v.Add("expand", e)
	}
	var out ShippingMethodPagedQueryResponse
	if err := c.get(ctx, "/shipping-methods/matching-cart", v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
