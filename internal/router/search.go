package router

import (
	"context"
	"strings"

	"storefront-extensions/internal/extension"
	"storefront-extensions/internal/locale"
	"storefront-extensions/internal/query"
)

// SearchRouter matches the /search page and runs a free-text catalog
// query. The term comes from the `query` parameter, with `q` as the
// short alias.
type SearchRouter struct {
	products productService
	locale   locale.Resolver
}

func NewSearchRouter(products productService, resolver locale.Resolver) *SearchRouter {
	return &SearchRouter{products: products, locale: resolver}
}

func (r *SearchRouter) Identify(req extension.Request) bool {
	return strings.TrimSuffix(req.PagePath(), "/") == "/search"
}

func (r *SearchRouter) Load(ctx context.Context, req extension.Request) (*Match, error) {
	q := query.FromParams(query.Params{Query: req.Query})

	result, err := r.products.Query(ctx, req.Locale(r.locale), q)
	if err != nil {
		return nil, err
	}

	return &Match{
		PageType: SearchPage,
		Data:     map[string]interface{}{"items": result},
		Matching: map[string]interface{}{"query": q.Query},
	}, nil
}
