package locale

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		raw  string
		want Locale
	}{
		{"en_GB", Locale{Language: "en", Country: "GB"}},
		{"de-DE", Locale{Language: "de", Country: "DE"}},
		{"en_GB@EUR", Locale{Language: "en", Country: "GB", Currency: "EUR"}},
		{"en", Locale{Language: "en"}},
		{"", Locale{}},
	}

	for _, tc := range cases {
		if got := Parse(tc.raw); got != tc.want {
			t.Fatalf("Parse(%q) = %+v, want %+v", tc.raw, got, tc.want)
		}
	}
}

func TestResolveDefaults(t *testing.T) {
	r := Resolver{DefaultLocale: "en_GB", DefaultCurrency: "EUR"}

	got := r.Resolve(nil, nil)
	want := Locale{Language: "en", Country: "GB", Currency: "EUR"}
	if got != want {
		t.Fatalf("expected defaults %+v, got %+v", want, got)
	}
}

func TestResolveQueryWinsOverHeader(t *testing.T) {
	r := Resolver{DefaultLocale: "en_GB", DefaultCurrency: "EUR"}

	got := r.Resolve(
		map[string]string{"locale": "de_DE"},
		map[string]string{"commerce-locale": "fr_FR"},
	)
	if got.Language != "de" || got.Country != "DE" {
		t.Fatalf("expected query locale, got %+v", got)
	}
}

func TestResolveHeaderCaseInsensitive(t *testing.T) {
	r := Resolver{DefaultLocale: "en_GB", DefaultCurrency: "EUR"}

	got := r.Resolve(nil, map[string]string{"Commerce-Locale": "de_DE", "Commerce-Currency": "CHF"})
	if got.Language != "de" || got.Country != "DE" || got.Currency != "CHF" {
		t.Fatalf("unexpected locale: %+v", got)
	}
}

func TestResolveCurrencyFromLocaleTag(t *testing.T) {
	r := Resolver{DefaultLocale: "en_GB", DefaultCurrency: "EUR"}

	got := r.Resolve(map[string]string{"locale": "en_GB@USD"}, nil)
	if got.Currency != "USD" {
		t.Fatalf("expected tag currency, got %+v", got)
	}
}

func TestResolveCurrencyOverride(t *testing.T) {
	r := Resolver{DefaultLocale: "en_GB", DefaultCurrency: "EUR"}

	got := r.Resolve(map[string]string{"currency": "GBP"}, nil)
	if got.Currency != "GBP" {
		t.Fatalf("expected query currency, got %+v", got)
	}
}
