package wishlist

import (
	"context"
	"errors"
	"testing"

	"storefront-extensions/internal/backend"
	"storefront-extensions/internal/domain"
	"storefront-extensions/internal/locale"
)

type stubClient struct {
	list   *backend.ShoppingList
	getErr error

	lastDraft  backend.ShoppingListDraft
	lastID     string
	lastUpdate backend.Update
	lastExpand []string
}

func (s *stubClient) GetShoppingListByID(_ context.Context, id string, expand []string) (*backend.ShoppingList, error) {
	s.lastID = id
	s.lastExpand = expand
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.list, nil
}

func (s *stubClient) CreateShoppingList(_ context.Context, draft backend.ShoppingListDraft, _ []string) (*backend.ShoppingList, error) {
	s.lastDraft = draft
	return s.list, nil
}

func (s *stubClient) UpdateShoppingList(_ context.Context, id string, update backend.Update, _ []string) (*backend.ShoppingList, error) {
	s.lastID = id
	s.lastUpdate = update
	return s.list, nil
}

var testLocale = locale.Locale{Language: "en", Country: "GB", Currency: "EUR"}

func TestGetByIDExpandsVariants(t *testing.T) {
	client := &stubClient{list: &backend.ShoppingList{ID: "wl-1", Version: 1}}
	svc := New(client, "en", nil)

	wishlist, err := svc.GetByID(context.Background(), testLocale, "wl-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wishlist.WishlistID != "wl-1" || wishlist.WishlistVersion != "1" {
		t.Fatalf("unexpected wishlist: %+v", wishlist)
	}
	if len(client.lastExpand) != 1 || client.lastExpand[0] != "lineItems[*].variant" {
		t.Fatalf("unexpected expand: %v", client.lastExpand)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	client := &stubClient{getErr: &backend.APIError{StatusCode: 404}}
	svc := New(client, "en", nil)

	_, err := svc.GetByID(context.Background(), testLocale, "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateNamesListInLocaleLanguage(t *testing.T) {
	client := &stubClient{list: &backend.ShoppingList{ID: "wl-1", Version: 1}}
	svc := New(client, "en", nil)

	_, err := svc.Create(context.Background(), testLocale, "anon-1", "Wishlist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.lastDraft.AnonymousID != "anon-1" {
		t.Fatalf("unexpected draft: %+v", client.lastDraft)
	}
	if client.lastDraft.Name["en"] != "Wishlist" {
		t.Fatalf("unexpected name: %v", client.lastDraft.Name)
	}
}

func TestCreateFallsBackToDefaultLanguage(t *testing.T) {
	client := &stubClient{list: &backend.ShoppingList{ID: "wl-1", Version: 1}}
	svc := New(client, "de", nil)

	_, err := svc.Create(context.Background(), locale.Locale{}, "anon-1", "Wishlist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.lastDraft.Name["de"] != "Wishlist" {
		t.Fatalf("expected name under default language, got %v", client.lastDraft.Name)
	}
}

func TestAddLineItem(t *testing.T) {
	client := &stubClient{list: &backend.ShoppingList{ID: "wl-1", Version: 3}}
	svc := New(client, "en", nil)

	wishlist := &domain.Wishlist{WishlistID: "wl-1", WishlistVersion: "2"}
	updated, err := svc.AddLineItem(context.Background(), testLocale, wishlist, "SKU1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.WishlistVersion != "3" {
		t.Fatalf("expected fresh version token, got %q", updated.WishlistVersion)
	}

	if client.lastUpdate.Version != 2 {
		t.Fatalf("unexpected update version: %d", client.lastUpdate.Version)
	}
	action := client.lastUpdate.Actions[0]
	if action.Action != "addLineItem" || action.SKU != "SKU1" || action.Quantity != 1 {
		t.Fatalf("unexpected action: %+v", action)
	}
}

func TestRemoveLineItem(t *testing.T) {
	client := &stubClient{list: &backend.ShoppingList{ID: "wl-1", Version: 3}}
	svc := New(client, "en", nil)

	wishlist := &domain.Wishlist{WishlistID: "wl-1", WishlistVersion: "2"}
	_, err := svc.RemoveLineItem(context.Background(), testLocale, wishlist, "li-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	action := client.lastUpdate.Actions[0]
	if action.Action != "removeLineItem" || action.LineItemID != "li-1" {
		t.Fatalf("unexpected action: %+v", action)
	}
}

func TestUpdateRejectsBadVersionToken(t *testing.T) {
	svc := New(&stubClient{}, "en", nil)

	wishlist := &domain.Wishlist{WishlistID: "wl-1", WishlistVersion: "xyz"}
	_, err := svc.AddLineItem(context.Background(), testLocale, wishlist, "SKU1", 1)
	if err == nil {
		t.Fatalf("expected version error")
	}
}
