// Package wishlist manages shopping-list backed wishlists.
package wishlist

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"

	"storefront-extensions/internal/backend"
	"storefront-extensions/internal/domain"
	"storefront-extensions/internal/locale"
	"storefront-extensions/internal/mapper"
)

var expandVariants = []string{"lineItems[*].variant"}

type backendClient interface {
	GetShoppingListByID(ctx context.Context, id string, expand []string) (*backend.ShoppingList, error)
	CreateShoppingList(ctx context.Context, draft backend.ShoppingListDraft, expand []string) (*backend.ShoppingList, error)
	UpdateShoppingList(ctx context.Context, id string, update backend.Update, expand []string) (*backend.ShoppingList, error)
}

type Service struct {
	client          backendClient
	defaultLanguage string
	logger          *log.Logger
}

func New(client backendClient, defaultLanguage string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{client: client, defaultLanguage: defaultLanguage, logger: logger}
}

// GetByID fetches one wishlist.
func (s *Service) GetByID(ctx context.Context, loc locale.Locale, wishlistID string) (*domain.Wishlist, error) {
	response, err := s.client.GetShoppingListByID(ctx, wishlistID, expandVariants)
	if err != nil {
		if backend.IsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getWishlist failed: %w", err)
	}
	wishlist := mapper.WishlistFrom(*response, loc)
	return &wishlist, nil
}

// Create makes a new wishlist owned by an anonymous id. The list name is
// localized under the request language, falling back to the configured
// default.
func (s *Service) Create(ctx context.Context, loc locale.Locale, anonymousID, name string) (*domain.Wishlist, error) {
	language := loc.Language
	if language == "" {
		language = s.defaultLanguage
	}
	response, err := s.client.CreateShoppingList(ctx, backend.ShoppingListDraft{
		Name:        backend.LocalizedString{language: name},
		AnonymousID: anonymousID,
	}, expandVariants)
	if err != nil {
		return nil, fmt.Errorf("createWishlist failed: %w", err)
	}
	wishlist := mapper.WishlistFrom(*response, loc)
	return &wishlist, nil
}

// AddLineItem adds a SKU to the wishlist.
func (s *Service) AddLineItem(ctx context.Context, loc locale.Locale, wishlist *domain.Wishlist, sku string, count int) (*domain.Wishlist, error) {
	updated, err := s.update(ctx, loc, wishlist, backend.UpdateAction{
		Action:   "addLineItem",
		SKU:      sku,
		Quantity: count,
	})
	if err != nil {
		return nil, fmt.Errorf("addToWishlist failed: %w", err)
	}
	return updated, nil
}

// RemoveLineItem removes a line item from the wishlist.
func (s *Service) RemoveLineItem(ctx context.Context, loc locale.Locale, wishlist *domain.Wishlist, lineItemID string) (*domain.Wishlist, error) {
	updated, err := s.update(ctx, loc, wishlist, backend.UpdateAction{
		Action:     "removeLineItem",
		LineItemID: lineItemID,
	})
	if err != nil {
		return nil, fmt.Errorf("removeWishlistLineItem failed: %w", err)
	}
	return updated, nil
}

func (s *Service) update(ctx context.Context, loc locale.Locale, wishlist *domain.Wishlist, actions ...backend.UpdateAction) (*domain.Wishlist, error) {
	version, err := strconv.Atoi(wishlist.WishlistVersion)
	if err != nil {
		return nil, fmt.Errorf("invalid wishlist version %q", wishlist.WishlistVersion)
	}

	response, err := s.client.UpdateShoppingList(ctx, wishlist.WishlistID, backend.Update{
		Version: version,
		Actions: actions,
	}, expandVariants)
	if err != nil {
		return nil, err
	}
	mapped := mapper.WishlistFrom(*response, loc)
	return &mapped, nil
}
