package domain

// Order is a placed cart. State transitions happen in the backend only;
// once mapped the record is immutable.
type Order struct {
	CartID          string     `json:"cartId"`
	OrderState      string     `json:"orderState"`
	OrderID         string     `json:"orderId"`
	OrderVersion    string     `json:"orderVersion"`
	LineItems       []LineItem `json:"lineItems"`
	Email           string     `json:"email,omitempty"`
	ShippingAddress *Address   `json:"shippingAddress,omitempty"`
	BillingAddress  *Address   `json:"billingAddress,omitempty"`
	Sum             *Money     `json:"sum,omitempty"`
}
