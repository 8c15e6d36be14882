package domain

// Cart is the normalized storefront cart. CartVersion is the backend's
// optimistic-concurrency token and is passed through unchanged on every
// mutation; the backend increments it, never this service.
type Cart struct {
	CartID                   string           `json:"cartId"`
	CartVersion              string           `json:"cartVersion"`
	LineItems                []LineItem       `json:"lineItems"`
	Email                    string           `json:"email,omitempty"`
	Sum                      *Money           `json:"sum,omitempty"`
	ShippingAddress          *Address         `json:"shippingAddress,omitempty"`
	BillingAddress           *Address         `json:"billingAddress,omitempty"`
	ShippingInfo             *ShippingInfo    `json:"shippingInfo,omitempty"`
	Payments                 []Payment        `json:"payments,omitempty"`
	AvailableShippingMethods []ShippingMethod `json:"availableShippingMethods,omitempty"`
}

type LineItem struct {
	LineItemID      string   `json:"lineItemId"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Count           int      `json:"count"`
	Price           *Money   `json:"price,omitempty"`
	DiscountedPrice *Money   `json:"discountedPrice,omitempty"`
	TotalPrice      *Money   `json:"totalPrice,omitempty"`
	Variant         *Variant `json:"variant,omitempty"`
	IsGift          bool     `json:"isGift"`
	URL             string   `json:"_url"`
}

type Address struct {
	AddressID             string `json:"addressId,omitempty"`
	Salutation            string `json:"salutation,omitempty"`
	FirstName             string `json:"firstName,omitempty"`
	LastName              string `json:"lastName,omitempty"`
	StreetName            string `json:"streetName,omitempty"`
	StreetNumber          string `json:"streetNumber,omitempty"`
	AdditionalStreetInfo  string `json:"additionalStreetInfo,omitempty"`
	AdditionalAddressInfo string `json:"additionalAddressInfo,omitempty"`
	PostalCode            string `json:"postalCode,omitempty"`
	City                  string `json:"city,omitempty"`
	Country               string `json:"country,omitempty"`
	State                 string `json:"state,omitempty"`
	Phone                 string `json:"phone,omitempty"`
}
