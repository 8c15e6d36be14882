package extension

import (
	"context"

	"github.com/google/uuid"

	"storefront-extensions/internal/domain"
)

// FetchCart resolves the request's cart: the logged-in account's cart
// first, then the session's cart id, and finally a fresh anonymous cart.
func (r *Registry) FetchCart(ctx context.Context, req Request) (*domain.Cart, error) {
	loc := req.Locale(r.locale)

	if accountID := sessionAccountID(req); accountID != "" {
		return r.carts.GetForUser(ctx, loc, accountID)
	}
	if cartID := req.SessionString("cartId"); cartID != "" {
		return r.carts.GetByID(ctx, loc, cartID)
	}
	return r.carts.GetAnonymous(ctx, loc, uuid.NewString())
}

func sessionAccountID(req Request) string {
	account, ok := req.SessionData["account"].(map[string]interface{})
	if !ok {
		return ""
	}
	id, _ := account["accountId"].(string)
	return id
}
