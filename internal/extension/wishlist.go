package extension

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"storefront-extensions/internal/domain"
)

// fetchWishlist resolves the session's wishlist, creating a fresh anonymous
// one when the session has none yet.
func (r *Registry) fetchWishlist(ctx context.Context, req Request) (*domain.Wishlist, error) {
	loc := req.Locale(r.locale)
	if wishlistID := req.SessionString("wishlistId"); wishlistID != "" {
		wishlist, err := r.wishlists.GetByID(ctx, loc, wishlistID)
		if err == nil {
			return wishlist, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	return r.wishlists.Create(ctx, loc, uuid.NewString(), "Wishlist")
}

func (r *Registry) wishlistResponse(req Request, wishlist *domain.Wishlist) (Response, error) {
	body, err := json.Marshal(wishlist)
	if err != nil {
		return Response{}, err
	}
	return Response{
		StatusCode:  http.StatusOK,
		Body:        string(body),
		SessionData: req.WithSession(map[string]interface{}{"wishlistId": wishlist.WishlistID}),
	}, nil
}

func (r *Registry) getWishlist(ctx context.Context, req Request) (Response, error) {
	wishlist, err := r.fetchWishlist(ctx, req)
	if err != nil {
		return Response{}, err
	}
	return r.wishlistResponse(req, wishlist)
}

func (r *Registry) addToWishlist(ctx context.Context, req Request) (Response, error) {
	var body struct {
		Variant struct {
			SKU string `json:"sku"`
		} `json:"variant"`
		Count int `json:"count"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}
	count := body.Count
	if count <= 0 {
		count = 1
	}

	wishlist, err := r.fetchWishlist(ctx, req)
	if err != nil {
		return Response{}, err
	}
	wishlist, err = r.wishlists.AddLineItem(ctx, req.Locale(r.locale), wishlist, body.Variant.SKU, count)
	if err != nil {
		return Response{}, err
	}
	return r.wishlistResponse(req, wishlist)
}

func (r *Registry) removeWishlistLineItem(ctx context.Context, req Request) (Response, error) {
	var body struct {
		LineItem struct {
			ID string `json:"id"`
		} `json:"lineItem"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}

	wishlist, err := r.fetchWishlist(ctx, req)
	if err != nil {
		return Response{}, err
	}
	wishlist, err = r.wishlists.RemoveLineItem(ctx, req.Locale(r.locale), wishlist, body.LineItem.ID)
	if err != nil {
		return Response{}, err
	}
	return r.wishlistResponse(req, wishlist)
}
