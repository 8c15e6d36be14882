package domain

// FilterField describes one searchable/filterable product attribute to the
// host, derived from backend product-type metadata.
type FilterField struct {
	Field  string             `json:"field"`
	Type   string             `json:"type"`
	Label  string             `json:"label"`
	Values []FilterFieldValue `json:"values,omitempty"`
}

type FilterFieldValue struct {
	Value string `json:"value"`
	Name  string `json:"name,omitempty"`
}
