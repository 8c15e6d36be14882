package mapper

import (
	"strconv"

	"storefront-extensions/internal/backend"
	"storefront-extensions/internal/domain"
	"storefront-extensions/internal/locale"
)

// ProductFromProjection maps a backend product projection into the
// storefront product, deriving its canonical URL from slug and master SKU.
func ProductFromProjection(p backend.ProductProjection, loc locale.Locale) domain.Product {
	product := domain.Product{
		ProductID:  p.ID,
		Version:    strconv.Itoa(p.Version),
		Name:       localized(p.Name, loc.Language),
		Slug:       localized(p.Slug, loc.Language),
		Categories: CategoriesFromReferences(p.Categories),
		Variants:   VariantsFromProjection(p, loc),
	}
	if len(product.Variants) > 0 {
		product.URL = domain.ProductURL(product.Slug, product.Variants[0].SKU)
	}
	return product
}

// VariantsFromProjection flattens the projection into one ordered variant
// list: master variant first, then the remaining variants in declaration
// order.
func VariantsFromProjection(p backend.ProductProjection, loc locale.Locale) []domain.Variant {
	variants := make([]domain.Variant, 0, len(p.Variants)+1)
	if p.MasterVariant != nil {
		variants = append(variants, VariantFrom(*p.MasterVariant, loc))
	}
	for _, v := range p.Variants {
		variants = append(variants, VariantFrom(v, loc))
	}
	return variants
}

// VariantFrom maps one backend variant, resolving attributes against the
// locale and applying the price precedence rule.
func VariantFrom(v backend.ProductVariant, loc locale.Locale) domain.Variant {
	images := make([]string, 0, len(v.Images))
	for _, img := range v.Images {
		images = append(images, img.URL)
	}

	price, discounted := ExtractPriceAndDiscountedPrice(v)

	return domain.Variant{
		ID:              strconv.Itoa(v.ID),
		SKU:             v.SKU,
		Images:          images,
		Attributes:      AttributesFrom(v.Attributes, loc),
		Price:           price,
		DiscountedPrice: discounted,
	}
}

// AttributesFrom resolves each attribute value against the locale.
func AttributesFrom(attrs []backend.Attribute, loc locale.Locale) domain.Attributes {
	attributes := domain.Attributes{}
	for _, attr := range attrs {
		attributes[attr.Name] = LocalizedValue(attr.Value, loc)
	}
	return attributes
}

// CategoriesFromReferences keeps the category identity of each reference.
func CategoriesFromReferences(refs []backend.Reference) []domain.Category {
	categories := make([]domain.Category, 0, len(refs))
	for _, ref := range refs {
		categories = append(categories, domain.Category{CategoryID: ref.ID})
	}
	return categories
}

// ExtractPriceAndDiscountedPrice applies the hard precedence rule: a
// scoped (customer/channel-specific) price always wins over the standard
// price, including its nested discount. With neither present both results
// are nil.
func ExtractPriceAndDiscountedPrice(v backend.ProductVariant) (*domain.Money, *domain.Money) {
	if v.ScopedPrice != nil {
		price := NormalizeMoney(&v.ScopedPrice.Value)
		var discounted *domain.Money
		if v.ScopedPrice.Discounted != nil {
			discounted = NormalizeMoney(&v.ScopedPrice.Discounted.Value)
		}
		return price, discounted
	}

	if v.Price != nil {
		price := NormalizeMoney(&v.Price.Value)
		var discounted *domain.Money
		if v.Price.Discounted != nil {
			discounted = NormalizeMoney(&v.Price.Discounted.Value)
		}
		return price, discounted
	}

	return nil, nil
}
