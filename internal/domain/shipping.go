package domain

type ShippingMethod struct {
	ShippingMethodID string         `json:"shippingMethodId"`
	Name             string         `json:"name,omitempty"`
	Description      string         `json:"description,omitempty"`
	Rates            []ShippingRate `json:"rates,omitempty"`
}

type ShippingRate struct {
	ShippingRateID string             `json:"shippingRateId"`
	Name           string             `json:"name,omitempty"`
	Locations      []ShippingLocation `json:"locations,omitempty"`
	Price          *Money             `json:"price,omitempty"`
}

type ShippingLocation struct {
	Country string `json:"country"`
	State   string `json:"state,omitempty"`
}

// ShippingInfo is the shipping method selected on a cart plus the price the
// backend calculated for it. When the backend response does not expand the
// method object, only ShippingMethodID is populated.
type ShippingInfo struct {
	ShippingMethod
	Price *Money `json:"price,omitempty"`
}
