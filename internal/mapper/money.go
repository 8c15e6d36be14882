// Package mapper flattens backend entity graphs into the normalized
// storefront records. Every function here is pure: no I/O, no shared
// state, safe for concurrent use. Missing optional fields map to nil or
// zero values, never to errors.
package mapper

import (
	"storefront-extensions/internal/backend"
	"storefront-extensions/internal/domain"
	"storefront-extensions/internal/locale"
)

const defaultFractionDigits = 2

// NormalizeMoney copies a backend amount into the storefront Money shape.
// FractionDigits defaults to 2 when the source omits it; no rounding or
// conversion happens.
func NormalizeMoney(m *backend.TypedMoney) *domain.Money {
	if m == nil {
		return nil
	}
	digits := defaultFractionDigits
	if m.FractionDigits != nil {
		digits = *m.FractionDigits
	}
	return &domain.Money{
		CentAmount:     m.CentAmount,
		CurrencyCode:   m.CurrencyCode,
		FractionDigits: digits,
	}
}

// LocalizedValue resolves a dynamic backend value against the locale:
// enum {key,label} pairs keep the key and recurse into the label,
// sequences map the resolution over each element, and language-keyed maps
// select the locale's language. A map without the requested language is
// returned unchanged rather than treated as an error.
func LocalizedValue(value interface{}, loc locale.Locale) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		if key, hasKey := v["key"]; hasKey {
			if label, hasLabel := v["label"]; hasLabel {
				return map[string]interface{}{
					"key":   key,
					"label": LocalizedValue(label, loc),
				}
			}
		}
		if resolved, ok := v[loc.Language]; ok {
			return resolved
		}
		return v
	case []interface{}:
		resolved := make([]interface{}, len(v))
		for i, item := range v {
			resolved[i] = LocalizedValue(item, loc)
		}
		return resolved
	default:
		return value
	}
}

// localized selects one language from a localized string, empty when the
// language is absent.
func localized(ls backend.LocalizedString, language string) string {
	return ls[language]
}
