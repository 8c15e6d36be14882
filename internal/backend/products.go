package backend

import (
	"context"
	"net/url"
	"strconv"
)

// ProductSearchArgs are the query arguments for the product-projection
// search endpoint. FilterQuery entries are backend filter predicates such
// as `variants.sku:"SKU1"`.
type ProductSearchArgs struct {
	Limit         int
	Offset        int
	FilterQuery   []string
	Text          string
	TextLanguage  string
	PriceCurrency string
	PriceCountry  string
	Expand        []string
}

func (a ProductSearchArgs) values() url.Values {
	v := url.Values{}
	if a.Limit > 0 {
		v.Set("limit", strconv.Itoa(a.Limit))
	}
	if a.Offset > 0 {
		v.Set("offset", strconv.Itoa(a.Offset))
	}
	for _, fq := range a.FilterQuery {
		v.Add("filter.query", fq)
	}
	if a.Text != "" && a.TextLanguage != "" {
		v.Set("text."+a.TextLanguage, a.Text)
	}
	if a.PriceCurrency != "" {
		v.Set("priceCurrency", a.PriceCurrency)
	}
	if a.PriceCountry != "" {
		v.Set("priceCountry", a.PriceCountry)
	}
	for _, e := range a.Expand {
		v.Add("expand", e)
	}
	return v
}

// SearchProductProjections runs a product search against the backend.
func (c *Client) SearchProductProjections(ctx context.Context, args ProductSearchArgs) (*ProductProjectionPagedSearchResponse, error) {
	var out ProductProjectionPagedSearchResponse
	if err := c.get(ctx, "/product-projections/search", args.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CategoryQueryArgs filter the category collection with backend `where`
// predicates.
type CategoryQueryArgs struct {
	Where []string
	Limit int
}

// QueryCategories fetches categories matching the given predicates.
func (c *Client) QueryCategories(ctx context.Context, args CategoryQueryArgs) (*CategoryPagedQueryResponse, error) {
	v := url.Values{}
	for _, w := range args.Where {
		v.Add("where", w)
	}
	if args.Limit > 0 {
		v.Set("limit", strconv.Itoa(args.Limit))
	}
	var out CategoryPagedQueryResponse
	if err := c.get(ctx, "/categories", v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QueryProductTypes lists the project's product types; their attribute
// definitions feed the filter-field mapping.
func (c *Client) QueryProductTypes(ctx context.Context) (*ProductTypePagedQueryResponse, error) {
	var out ProductTypePagedQueryResponse
	if err := c.get(ctx, "/product-types", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
