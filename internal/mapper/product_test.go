package mapper

import (
	"testing"

	"storefront-extensions/internal/backend"
	"storefront-extensions/internal/locale"
)

var testLocale = locale.Locale{Language: "en", Country: "GB", Currency: "EUR"}

func projection() backend.ProductProjection {
	return backend.ProductProjection{
		ID:      "prod-1",
		Version: 7,
		Name:    backend.LocalizedString{"en": "Red Shoes", "de": "Rote Schuhe"},
		Slug:    backend.LocalizedString{"en": "red-shoes", "de": "rote-schuhe"},
		Categories: []backend.Reference{
			{TypeID: "category", ID: "cat-1"},
		},
		MasterVariant: &backend.ProductVariant{
			ID:  1,
			SKU: "SKU1",
			Price: &backend.Price{
				Value: backend.TypedMoney{CurrencyCode: "EUR", CentAmount: 4999},
			},
			Images: []backend.Image{{URL: "https://img/shoe.jpg"}},
		},
		Variants: []backend.ProductVariant{
			{ID: 2, SKU: "SKU2"},
		},
	}
}

func TestProductFromProjection(t *testing.T) {
	product := ProductFromProjection(projection(), testLocale)

	if product.ProductID != "prod-1" || product.Version != "7" {
		t.Fatalf("unexpected identity: %+v", product)
	}
	if product.Name != "Red Shoes" || product.Slug != "red-shoes" {
		t.Fatalf("unexpected localization: name=%q slug=%q", product.Name, product.Slug)
	}
	if product.URL != "/red-shoes/p/SKU1" {
		t.Fatalf("unexpected url: %q", product.URL)
	}
	if len(product.Categories) != 1 || product.Categories[0].CategoryID != "cat-1" {
		t.Fatalf("unexpected categories: %+v", product.Categories)
	}
}

func TestVariantsMasterFirst(t *testing.T) {
	variants := VariantsFromProjection(projection(), testLocale)

	if len(variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(variants))
	}
	if variants[0].SKU != "SKU1" || variants[1].SKU != "SKU2" {
		t.Fatalf("unexpected variant order: %q, %q", variants[0].SKU, variants[1].SKU)
	}
	if variants[0].ID != "1" {
		t.Fatalf("expected numeric id rendered as string, got %q", variants[0].ID)
	}
}

func TestProductWithoutVariantsHasNoURL(t *testing.T) {
	p := projection()
	p.MasterVariant = nil
	p.Variants = nil

	product := ProductFromProjection(p, testLocale)
	if product.URL != "" {
		t.Fatalf("expected empty url, got %q", product.URL)
	}
}

func TestScopedPriceWins(t *testing.T) {
	variant := backend.ProductVariant{
		ID:  1,
		SKU: "SKU1",
		Price: &backend.Price{
			Value: backend.TypedMoney{CurrencyCode: "EUR", CentAmount: 5999},
		},
		ScopedPrice: &backend.ScopedPrice{
			Value: backend.TypedMoney{CurrencyCode: "EUR", CentAmount: 4999},
			Discounted: &backend.DiscountedPrice{
				Value: backend.TypedMoney{CurrencyCode: "EUR", CentAmount: 3999},
			},
		},
	}

	price, discounted := ExtractPriceAndDiscountedPrice(variant)
	if price == nil || price.CentAmount != 4999 {
		t.Fatalf("expected scoped price 4999, got %+v", price)
	}
	if discounted == nil || discounted.CentAmount != 3999 {
		t.Fatalf("expected scoped discount 3999, got %+v", discounted)
	}
}

func TestStandardPriceFallback(t *testing.T) {
	variant := backend.ProductVariant{
		Price: &backend.Price{
			Value: backend.TypedMoney{CurrencyCode: "EUR", CentAmount: 5999},
		},
	}

	price, discounted := ExtractPriceAndDiscountedPrice(variant)
	if price == nil || price.CentAmount != 5999 {
		t.Fatalf("expected standard price 5999, got %+v", price)
	}
	if discounted != nil {
		t.Fatalf("expected nil discount, got %+v", discounted)
	}
}

func TestNoPriceYieldsNil(t *testing.T) {
	price, discounted := ExtractPriceAndDiscountedPrice(backend.ProductVariant{})
	if price != nil || discounted != nil {
		t.Fatalf("expected nil prices, got %+v / %+v", price, discounted)
	}
}

func TestAttributesResolveLocale(t *testing.T) {
	attrs := AttributesFrom([]backend.Attribute{
		{Name: "color", Value: map[string]interface{}{"en": "red", "de": "rot"}},
		{Name: "size", Value: "42"},
	}, testLocale)

	if attrs["color"] != "red" {
		t.Fatalf("expected localized color, got %v", attrs["color"])
	}
	if attrs["size"] != "42" {
		t.Fatalf("expected scalar size, got %v", attrs["size"])
	}
}
