package router

import (
	"context"
	"errors"
	"regexp"

	"storefront-extensions/internal/domain"
	"storefront-extensions/internal/extension"
	"storefront-extensions/internal/locale"
	"storefront-extensions/internal/query"
)

var productPath = regexp.MustCompile(`/p/([^/]+)/?$`)

// ProductRouter matches product detail pages of the form
// /{slug}/p/{sku} and loads the product by SKU. The slug is cosmetic;
// the SKU identifies the product, and a slug mismatch yields a redirect
// to the canonical URL.
type ProductRouter struct {
	products productService
	locale   locale.Resolver
}

func NewProductRouter(products productService, resolver locale.Resolver) *ProductRouter {
	return &ProductRouter{products: products, locale: resolver}
}

func (r *ProductRouter) Identify(req extension.Request) bool {
	return productPath.MatchString(req.PagePath())
}

func (r *ProductRouter) Load(ctx context.Context, req extension.Request) (*Match, error) {
	m := productPath.FindStringSubmatch(req.PagePath())
	if m == nil {
		return nil, nil
	}
	sku := m[1]

	product, err := r.products.GetProduct(ctx, req.Locale(r.locale), query.ProductQuery{
		SKUs:  []string{sku},
		Limit: 1,
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &Match{
		PageType: ProductPage,
		Data:     map[string]interface{}{"product": product},
		Matching: map[string]interface{}{
			"sku":       sku,
			"productId": product.ProductID,
		},
		CanonicalPath: product.URL,
	}, nil
}
