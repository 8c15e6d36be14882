package domain

// Attributes holds variant attribute values keyed by attribute name,
// already resolved against the request locale.
type Attributes map[string]interface{}

type Category struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name,omitempty"`
	Slug       string `json:"slug,omitempty"`
}

type Variant struct {
	ID              string     `json:"id"`
	SKU             string     `json:"sku"`
	Images          []string   `json:"images"`
	Attributes      Attributes `json:"attributes"`
	Price           *Money     `json:"price,omitempty"`
	DiscountedPrice *Money     `json:"discountedPrice,omitempty"`
}

type Product struct {
	ProductID  string     `json:"productId"`
	Version    string     `json:"version"`
	Name       string     `json:"name"`
	Slug       string     `json:"slug"`
	Categories []Category `json:"categories"`
	Variants   []Variant  `json:"variants"`
	URL        string     `json:"_url"`
}

// ProductURL derives the canonical storefront path for a product. The first
// variant is the master variant, so its SKU identifies the product page.
func ProductURL(slug, firstVariantSKU string) string {
	return "/" + slug + "/p/" + firstVariantSKU
}

// LineItemURL derives a storefront path for a line item, which carries no
// product slug of its own.
func LineItemURL(sku string) string {
	return "/slug/p/" + sku
}

// Result is a paged collection of mapped products together with the query
// that produced it.
type Result struct {
	Total          int         `json:"total"`
	Count          int         `json:"count"`
	Items          []Product   `json:"items"`
	PreviousCursor string      `json:"previousCursor,omitempty"`
	NextCursor     string      `json:"nextCursor,omitempty"`
	Query          interface{} `json:"query,omitempty"`
}
