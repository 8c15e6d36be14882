package backend

// Wire types for the commerce backend API. These mirror the backend's
// verbose response shapes; the mapper package flattens them into the
// storefront domain records. Optional nested objects stay pointers so a
// response without the expansion maps to a partial record instead of
// failing.

// LocalizedString is a value keyed by language tag.
type LocalizedString map[string]string

// TypedMoney is the backend price amount. FractionDigits is a pointer
// because older price representations omit it.
type TypedMoney struct {
	Type           string `json:"type,omitempty"`
	CurrencyCode   string `json:"currencyCode"`
	CentAmount     int64  `json:"centAmount"`
	FractionDigits *int   `json:"fractionDigits,omitempty"`
}

type DiscountedPrice struct {
	Value TypedMoney `json:"value"`
}

type Price struct {
	ID         string           `json:"id,omitempty"`
	Value      TypedMoney       `json:"value"`
	Discounted *DiscountedPrice `json:"discounted,omitempty"`
}

// ScopedPrice is the customer/channel-specific price the backend selects
// when the search carries a price currency and country.
type ScopedPrice struct {
	Value      TypedMoney       `json:"value"`
	Discounted *DiscountedPrice `json:"discounted,omitempty"`
}

type Image struct {
	URL   string `json:"url"`
	Label string `json:"label,omitempty"`
}

// Attribute values are dynamic: plain scalars, localized maps, enum
// {key,label} pairs or sequences of any of those.
type Attribute struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

type ProductVariant struct {
	ID          int          `json:"id"`
	SKU         string       `json:"sku,omitempty"`
	Prices      []Price      `json:"prices,omitempty"`
	Price       *Price       `json:"price,omitempty"`
	ScopedPrice *ScopedPrice `json:"scopedPrice,omitempty"`
	Images      []Image      `json:"images,omitempty"`
	Attributes  []Attribute  `json:"attributes,omitempty"`
}

type Reference struct {
	TypeID string `json:"typeId,omitempty"`
	ID     string `json:"id,omitempty"`
}

type ProductProjection struct {
	ID            string           `json:"id"`
	Version       int              `json:"version"`
	Name          LocalizedString  `json:"name"`
	Slug          LocalizedString  `json:"slug"`
	Categories    []Reference      `json:"categories"`
	MasterVariant *ProductVariant  `json:"masterVariant,omitempty"`
	Variants      []ProductVariant `json:"variants"`
}

type ProductProjectionPagedSearchResponse struct {
	Limit   int                 `json:"limit"`
	Count   int                 `json:"count"`
	Total   int                 `json:"total"`
	Offset  int                 `json:"offset"`
	Results []ProductProjection `json:"results"`
}

type Category struct {
	ID      string          `json:"id"`
	Version int             `json:"version"`
	Key     string          `json:"key,omitempty"`
	Name    LocalizedString `json:"name"`
	Slug    LocalizedString `json:"slug"`
}

type CategoryPagedQueryResponse struct {
	Limit   int        `json:"limit"`
	Count   int        `json:"count"`
	Total   int        `json:"total"`
	Offset  int        `json:"offset"`
	Results []Category `json:"results"`
}

type Address struct {
	ID                    string `json:"id,omitempty"`
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
	Email                 string `json:"email,omitempty"`
}

type LineItem struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"productId,omitempty"`
	Name         LocalizedString `json:"name"`
	Quantity     int             `json:"quantity"`
	Price        *Price          `json:"price,omitempty"`
	TotalPrice   TypedMoney      `json:"totalPrice"`
	Variant      ProductVariant  `json:"variant"`
	LineItemMode string          `json:"lineItemMode,omitempty"`
}

// ShippingMethodReference carries the expanded method object only when the
// request asked for the expansion.
type ShippingMethodReference struct {
	TypeID string          `json:"typeId,omitempty"`
	ID     string          `json:"id"`
	Obj    *ShippingMethod `json:"obj,omitempty"`
}

type ShippingInfo struct {
	ShippingMethodName string                   `json:"shippingMethodName,omitempty"`
	Price              TypedMoney               `json:"price"`
	ShippingMethod     *ShippingMethodReference `json:"shippingMethod,omitempty"`
}

type ShippingMethod struct {
	ID                   string          `json:"id"`
	Version              int             `json:"version"`
	Name                 string          `json:"name,omitempty"`
	LocalizedName        LocalizedString `json:"localizedName,omitempty"`
	Description          string          `json:"description,omitempty"`
	LocalizedDescription LocalizedString `json:"localizedDescription,omitempty"`
	ZoneRates            []ZoneRate      `json:"zoneRates,omitempty"`
}

type ShippingMethodPagedQueryResponse struct {
	Limit   int              `json:"limit"`
	Count   int              `json:"count"`
	Total   int              `json:"total"`
	Offset  int              `json:"offset"`
	Results []ShippingMethod `json:"results"`
}

type ZoneReference struct {
	TypeID string `json:"typeId,omitempty"`
	ID     string `json:"id"`
	Obj    *Zone  `json:"obj,omitempty"`
}

type Zone struct {
	ID        string         `json:"id"`
	Name      string         `json:"name,omitempty"`
	Locations []ZoneLocation `json:"locations,omitempty"`
}

type ZoneLocation struct {
	Country string `json:"country"`
	State   string `json:"state,omitempty"`
}

type ZoneRate struct {
	Zone          ZoneReference  `json:"zone"`
	ShippingRates []ShippingRate `json:"shippingRates"`
}

// ShippingRate carries IsMatching only when the backend was queried for
// location-matching rates.
type ShippingRate struct {
	Price      TypedMoney `json:"price"`
	IsMatching *bool      `json:"isMatching,omitempty"`
}

type PaymentMethodInfo struct {
	PaymentInterface string `json:"paymentInterface,omitempty"`
	Method           string `json:"method,omitempty"`
}

type PaymentStatus struct {
	InterfaceCode string `json:"interfaceCode,omitempty"`
	InterfaceText string `json:"interfaceText,omitempty"`
}

type Payment struct {
	ID                string            `json:"id"`
	Version           int               `json:"version"`
	Key               string            `json:"key,omitempty"`
	InterfaceID       string            `json:"interfaceId,omitempty"`
	AmountPlanned     TypedMoney        `json:"amountPlanned"`
	PaymentMethodInfo PaymentMethodInfo `json:"paymentMethodInfo"`
	PaymentStatus     PaymentStatus     `json:"paymentStatus"`
}

type PaymentReference struct {
	TypeID string   `json:"typeId,omitempty"`
	ID     string   `json:"id"`
	Obj    *Payment `json:"obj,omitempty"`
}

type PaymentInfo struct {
	Payments []PaymentReference `json:"payments"`
}

type Cart struct {
	ID              string        `json:"id"`
	Version         int           `json:"version"`
	CustomerID      string        `json:"customerId,omitempty"`
	AnonymousID     string        `json:"anonymousId,omitempty"`
	CustomerEmail   string        `json:"customerEmail,omitempty"`
	LineItems       []LineItem    `json:"lineItems"`
	TotalPrice      TypedMoney    `json:"totalPrice"`
	ShippingAddress *Address      `json:"shippingAddress,omitempty"`
	BillingAddress  *Address      `json:"billingAddress,omitempty"`
	ShippingInfo    *ShippingInfo `json:"shippingInfo,omitempty"`
	PaymentInfo     *PaymentInfo  `json:"paymentInfo,omitempty"`
}

type CartPagedQueryResponse struct {
	Limit   int    `json:"limit"`
	Count   int    `json:"count"`
	Total   int    `json:"total"`
	Offset  int    `json:"offset"`
	Results []Cart `json:"results"`
}

type CartDraft struct {
	Currency    string `json:"currency"`
	Country     string `json:"country,omitempty"`
	Locale      string `json:"locale,omitempty"`
	CustomerID  string `json:"customerId,omitempty"`
	AnonymousID string `json:"anonymousId,omitempty"`
}

type ResourceIdentifier struct {
	TypeID string `json:"typeId"`
	ID     string `json:"id"`
}

// UpdateAction is the union of the update-action payloads this service
// sends; unused fields stay omitted on the wire.
type UpdateAction struct {
	Action         string              `json:"action"`
	SKU            string              `json:"sku,omitempty"`
	Quantity       int                 `json:"quantity,omitempty"`
	LineItemID     string              `json:"lineItemId,omitempty"`
	Email          string              `json:"email,omitempty"`
	Address        *Address            `json:"address,omitempty"`
	AddressID      string              `json:"addressId,omitempty"`
	Salutation     string              `json:"salutation,omitempty"`
	FirstName      string              `json:"firstName,omitempty"`
	LastName       string              `json:"lastName,omitempty"`
	DateOfBirth    string              `json:"dateOfBirth,omitempty"`
	ShippingMethod *ResourceIdentifier `json:"shippingMethod,omitempty"`
	Payment        *ResourceIdentifier `json:"payment,omitempty"`
	InterfaceCode  string              `json:"interfaceCode,omitempty"`
	InterfaceText  string              `json:"interfaceText,omitempty"`
	InterfaceID    string              `json:"interfaceId,omitempty"`
}

type Update struct {
	Version int            `json:"version"`
	Actions []UpdateAction `json:"actions"`
}

type Order struct {
	ID              string        `json:"id"`
	Version         int           `json:"version"`
	OrderNumber     string        `json:"orderNumber,omitempty"`
	OrderState      string        `json:"orderState"`
	CustomerEmail   string        `json:"customerEmail,omitempty"`
	LineItems       []LineItem    `json:"lineItems"`
	TotalPrice      TypedMoney    `json:"totalPrice"`
	ShippingAddress *Address      `json:"shippingAddress,omitempty"`
	BillingAddress  *Address      `json:"billingAddress,omitempty"`
	ShippingInfo    *ShippingInfo `json:"shippingInfo,omitempty"`
	PaymentInfo     *PaymentInfo  `json:"paymentInfo,omitempty"`
}

type OrderFromCartDraft struct {
	ID          string `json:"id"`
	Version     int    `json:"version"`
	OrderNumber string `json:"orderNumber,omitempty"`
}

type PaymentDraft struct {
	Key               string            `json:"key,omitempty"`
	InterfaceID       string            `json:"interfaceId,omitempty"`
	AmountPlanned     TypedMoney        `json:"amountPlanned"`
	PaymentMethodInfo PaymentMethodInfo `json:"paymentMethodInfo"`
	PaymentStatus     PaymentStatus     `json:"paymentStatus"`
}

type ShoppingListLineItem struct {
	ID        string          `json:"id"`
	Name      LocalizedString `json:"name"`
	ProductID string          `json:"productId,omitempty"`
	Quantity  int             `json:"quantity"`
	Variant   *ProductVariant `json:"variant,omitempty"`
}

type ShoppingList struct {
	ID          string                 `json:"id"`
	Version     int                    `json:"version"`
	Name        LocalizedString        `json:"name"`
	AnonymousID string                 `json:"anonymousId,omitempty"`
	LineItems   []ShoppingListLineItem `json:"lineItems"`
}

type ShoppingListDraft struct {
	Name        LocalizedString `json:"name"`
	AnonymousID string          `json:"anonymousId,omitempty"`
}

type AttributeType struct {
	Name        string               `json:"name"`
	ElementType *AttributeType       `json:"elementType,omitempty"`
	Values      []AttributeEnumValue `json:"values,omitempty"`
}

// AttributeEnumValue labels are plain strings for enums and localized maps
// for localized enums.
type AttributeEnumValue struct {
	Key   string      `json:"key"`
	Label interface{} `json:"label,omitempty"`
}

type AttributeDefinition struct {
	Name  string          `json:"name"`
	Label LocalizedString `json:"label"`
	Type  AttributeType   `json:"type"`
}

type ProductType struct {
	ID         string                `json:"id"`
	Version    int                   `json:"version"`
	Name       string                `json:"name"`
	Attributes []AttributeDefinition `json:"attributes"`
}

type ProductTypePagedQueryResponse struct {
	Limit   int           `json:"limit"`
	Count   int           `json:"count"`
	Total   int           `json:"total"`
	Offset  int           `json:"offset"`
	Results []ProductType `json:"results"`
}

type Customer struct {
	ID                       string    `json:"id"`
	Version                  int       `json:"version"`
	Email                    string    `json:"email"`
	Salutation               string    `json:"salutation,omitempty"`
	FirstName                string    `json:"firstName,omitempty"`
	LastName                 string    `json:"lastName,omitempty"`
	DateOfBirth              string    `json:"dateOfBirth,omitempty"`
	Addresses                []Address `json:"addresses,omitempty"`
	DefaultBillingAddressID  string    `json:"defaultBillingAddressId,omitempty"`
	DefaultShippingAddressID string    `json:"defaultShippingAddressId,omitempty"`
}

type CustomerDraft struct {
	Email           string    `json:"email"`
	Password        string    `json:"password"`
	Salutation      string    `json:"salutation,omitempty"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	DateOfBirth     string    `json:"dateOfBirth,omitempty"`
	Addresses       []Address `json:"addresses,omitempty"`
	AnonymousCartID string    `json:"anonymousCartId,omitempty"`
}

type CustomerSignInResult struct {
	Customer Customer `json:"customer"`
	Cart     *Cart    `json:"cart,omitempty"`
}
