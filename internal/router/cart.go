package router

import (
	"context"
	"strings"

	"storefront-extensions/internal/extension"
)

// CartRouter serves the static /cart page with the session's cart.
type CartRouter struct {
	carts cartFetcher
}

func NewCartRouter(carts cartFetcher) *CartRouter {
	return &CartRouter{carts: carts}
}

func (r *CartRouter) Identify(req extension.Request) bool {
	return strings.TrimSuffix(req.PagePath(), "/") == "/cart"
}

func (r *CartRouter) Load(ctx context.Context, req extension.Request) (*Match, error) {
	cart, err := r.carts.FetchCart(ctx, req)
	if err != nil {
		return nil, err
	}

	return &Match{
		PageType: CartPage,
		Data:     map[string]interface{}{"cart": cart},
		Matching: map[string]interface{}{"cartId": cart.CartID},
	}, nil
}
