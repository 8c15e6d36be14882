package mapper

import (
	"strconv"

	"storefront-extensions/internal/backend"
	"storefront-extensions/internal/domain"
	"storefront-extensions/internal/locale"
)

// WishlistFrom maps a backend shopping list into the storefront wishlist.
func WishlistFrom(sl backend.ShoppingList, loc locale.Locale) domain.Wishlist {
	lineItems := make([]domain.LineItem, 0, len(sl.LineItems))
	for _, li := range sl.LineItems {
		item := domain.LineItem{
			LineItemID: li.ID,
			Name:       localized(li.Name, loc.Language),
			Type:       "variant",
			Count:      li.Quantity,
		}
		if li.Variant != nil {
			variant := VariantFrom(*li.Variant, loc)
			item.Variant = &variant
			item.URL = domain.LineItemURL(variant.SKU)
		}
		lineItems = append(lineItems, item)
	}

	return domain.Wishlist{
		WishlistID:      sl.ID,
		WishlistVersion: strconv.Itoa(sl.Version),
		AnonymousID:     sl.AnonymousID,
		Name:            localized(sl.Name, loc.Language),
		LineItems:       lineItems,
	}
}

// AccountFrom maps a backend customer to the storefront account.
func AccountFrom(c backend.Customer) domain.Account {
	addresses := make([]domain.Address, 0, len(c.Addresses))
	for i := range c.Addresses {
		addresses = append(addresses, *AddressFrom(&c.Addresses[i]))
	}
	return domain.Account{
		AccountID:                c.ID,
		Email:                    c.Email,
		Salutation:               c.Salutation,
		FirstName:                c.FirstName,
		LastName:                 c.LastName,
		Birthday:                 c.DateOfBirth,
		Addresses:                addresses,
		DefaultBillingAddressID:  c.DefaultBillingAddressID,
		DefaultShippingAddressID: c.DefaultShippingAddressID,
	}
}
