// Package router identifies which page a storefront path belongs to and
// loads the data that page needs. Each router is a pure path test plus a
// backend load; the page resolver decides the order they run in.
package router

import (
	"context"

	"storefront-extensions/internal/domain"
	"storefront-extensions/internal/extension"
	"storefront-extensions/internal/locale"
	"storefront-extensions/internal/query"
)

// Page types exposed to the host for dynamic page rendering.
const (
	ProductPage  = "commerce/product-detail-page"
	SearchPage   = "commerce/search-results-page"
	CartPage     = "commerce/cart-page"
	CategoryPage = "commerce/category-page"
)

// Match is a resolved page: the page type, the data payload the page
// renders from, and the payload the host matches page configuration
// against. CanonicalPath, when set, lets the resolver redirect requests
// that arrived on a stale URL.
type Match struct {
	PageType      string
	Data          interface{}
	Matching      interface{}
	CanonicalPath string
}

type productService interface {
	Query(ctx context.Context, loc locale.Locale, q query.ProductQuery) (*domain.Result, error)
	GetProduct(ctx context.Context, loc locale.Locale, q query.ProductQuery) (*domain.Product, error)
	QueryCategoryBySlug(ctx context.Context, loc locale.Locale, slug string) (*domain.Category, error)
}

type cartFetcher interface {
	FetchCart(ctx context.Context, req extension.Request) (*domain.Cart, error)
}
