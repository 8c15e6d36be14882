package domain

// Account mirrors the backend customer as far as actions need it. Password
// handling and token semantics stay with the backend.
type Account struct {
	AccountID                string    `json:"accountId,omitempty"`
	Email                    string    `json:"email"`
	Salutation               string    `json:"salutation,omitempty"`
	FirstName                string    `json:"firstName,omitempty"`
	LastName                 string    `json:"lastName,omitempty"`
	Birthday                 string    `json:"birthday,omitempty"`
	Addresses                []Address `json:"addresses,omitempty"`
	DefaultBillingAddressID  string    `json:"defaultBillingAddressId,omitempty"`
	DefaultShippingAddressID string    `json:"defaultShippingAddressId,omitempty"`
}

type Wishlist struct {
	WishlistID      string     `json:"wishlistId"`
	WishlistVersion string     `json:"wishlistVersion"`
	AnonymousID     string     `json:"anonymousId,omitempty"`
	Name            string     `json:"name,omitempty"`
	LineItems       []LineItem `json:"lineItems"`
}
