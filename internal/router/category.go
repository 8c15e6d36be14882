package router

import (
	"context"
	"errors"
	"strings"

	"storefront-extensions/internal/domain"
	"storefront-extensions/internal/extension"
	"storefront-extensions/internal/locale"
	"storefront-extensions/internal/query"
)

// CategoryRouter is the catch-all content matcher: any non-empty path is
// treated as a category slug. The resolver runs it last, so more specific
// pages have already claimed their paths.
type CategoryRouter struct {
	products productService
	locale   locale.Resolver
}

func NewCategoryRouter(products productService, resolver locale.Resolver) *CategoryRouter {
	return &CategoryRouter{products: products, locale: resolver}
}

func (r *CategoryRouter) Identify(req extension.Request) bool {
	return categorySlug(req.PagePath()) != ""
}

func (r *CategoryRouter) Load(ctx context.Context, req extension.Request) (*Match, error) {
	slug := categorySlug(req.PagePath())
	if slug == "" {
		return nil, nil
	}
	loc := req.Locale(r.locale)

	category, err := r.products.QueryCategoryBySlug(ctx, loc, slug)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	result, err := r.products.Query(ctx, loc, query.ProductQuery{
		Category: category.CategoryID,
		Cursor:   req.Query["cursor"],
	})
	if err != nil {
		return nil, err
	}

	return &Match{
		PageType: CategoryPage,
		Data: map[string]interface{}{
			"category": category,
			"items":    result,
		},
		Matching: map[string]interface{}{
			"slug":       slug,
			"categoryId": category.CategoryID,
		},
	}, nil
}

// categorySlug extracts the first path segment.
func categorySlug(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return ""
	}
	if i := strings.Index(trimmed, "/"); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}
