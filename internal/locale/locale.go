// Package locale derives the per-request locale from the host request.
// Resolution never fails: missing pieces fall back to configured defaults
// and downstream mappers treat an unknown language permissively.
package locale

import "strings"

// Locale governs localized field selection and price scoping for one request.
type Locale struct {
	Language string `json:"language"`
	Country  string `json:"country"`
	Currency string `json:"currency"`
}

// Resolver turns raw request values into a Locale.
type Resolver struct {
	DefaultLocale   string
	DefaultCurrency string
}

const (
	localeHeader   = "commerce-locale"
	currencyHeader = "commerce-currency"
)

// Resolve picks the locale in order: explicit query value, header value,
// configured default. Currency may be overridden the same way.
func (r Resolver) Resolve(query, headers map[string]string) Locale {
	raw := query["locale"]
	if raw == "" {
		raw = headerValue(headers, localeHeader)
	}
	if raw == "" {
		raw = r.DefaultLocale
	}

	loc := Parse(raw)

	if currency := query["currency"]; currency != "" {
		loc.Currency = currency
	} else if currency := headerValue(headers, currencyHeader); currency != "" {
		loc.Currency = currency
	}
	if loc.Currency == "" {
		loc.Currency = r.DefaultCurrency
	}

	return loc
}

// Parse splits a locale tag like "en_GB", "de-DE" or "en_GB@EUR" into its
// parts. Unparseable input yields a Locale with only Language set; it never
// errors.
func Parse(raw string) Locale {
	var loc Locale

	if at := strings.IndexByte(raw, '@'); at >= 0 {
		loc.Currency = raw[at+1:]
		raw = raw[:at]
	}

	raw = strings.ReplaceAll(raw, "-", "_")
	parts := strings.SplitN(raw, "_", 2)
	loc.Language = parts[0]
	if len(parts) == 2 {
		loc.Country = strings.ToUpper(parts[1])
	}

	return loc
}

func headerValue(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	// Host runtimes differ in header casing.
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
