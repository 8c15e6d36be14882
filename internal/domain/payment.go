package domain

type Payment struct {
	ID              string `json:"id"`
	PaymentID       string `json:"paymentId,omitempty"`
	PaymentProvider string `json:"paymentProvider,omitempty"`
	PaymentMethod   string `json:"paymentMethod,omitempty"`
	AmountPlanned   Money  `json:"amountPlanned"`
	Debug           string `json:"debug,omitempty"`
	PaymentStatus   string `json:"paymentStatus,omitempty"`
	Version         int    `json:"version"`
}
