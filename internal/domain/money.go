package domain

// Money carries a minor-unit amount as delivered by the commerce backend.
// No currency conversion or rounding ever happens on this side.
type Money struct {
	CentAmount     int64  `json:"centAmount"`
	CurrencyCode   string `json:"currencyCode"`
	FractionDigits int    `json:"fractionDigits"`
}
