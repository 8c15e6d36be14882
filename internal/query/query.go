// Package query assembles structured backend product queries from raw
// request parameters and data-source configuration.
package query

import (
	"strconv"
	"strings"
)

// DefaultLimit caps a query page when the caller gives none.
const DefaultLimit = 25

// ProductQuery is the structured query consumed by the product service and
// the routers.
type ProductQuery struct {
	ProductIDs []string `json:"productIds,omitempty"`
	SKUs       []string `json:"skus,omitempty"`
	Query      string   `json:"query,omitempty"`
	Filters    []string `json:"filters,omitempty"`
	Category   string   `json:"category,omitempty"`
	Cursor     string   `json:"cursor,omitempty"`
	Limit      int      `json:"limit,omitempty"`
}

// Params are the raw inputs a query is assembled from: the request's query
// parameters and, for data sources, the source configuration.
type Params struct {
	Query  map[string]string
	Config map[string]interface{}
}

// FromParams builds a ProductQuery. Request parameters win over
// configuration values; the free-text term is read from `query` with `q`
// as the short alias.
func FromParams(p Params) ProductQuery {
	q := ProductQuery{
		ProductIDs: splitList(pick(p, "productIds")),
		SKUs:       splitList(pick(p, "skus")),
		Category:   pick(p, "category"),
		Cursor:     p.Query["cursor"],
	}

	if sku := p.Query["sku"]; sku != "" && len(q.SKUs) == 0 {
		q.SKUs = []string{sku}
	}

	q.Query = p.Query["query"]
	if q.Query == "" {
		q.Query = p.Query["q"]
	}

	if raw := pick(p, "limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			q.Limit = limit
		}
	}

	if filters, ok := p.Config["filters"].([]interface{}); ok {
		for _, f := range filters {
			if s, ok := f.(string); ok && s != "" {
				q.Filters = append(q.Filters, s)
			}
		}
	}

	return q
}

// ParseCursor turns an offset cursor back into a numeric offset. Anything
// unparseable means start from the beginning.
func ParseCursor(cursor string) int {
	raw := strings.TrimPrefix(cursor, "offset:")
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

// Cursor renders an offset as an opaque cursor string.
func Cursor(offset int) string {
	return "offset:" + strconv.Itoa(offset)
}

func pick(p Params, key string) string {
	if v := p.Query[key]; v != "" {
		return v
	}
	if v, ok := p.Config[key].(string); ok {
		return v
	}
	return ""
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
