package mapper

import (
	"storefront-extensions/internal/backend"
	"storefront-extensions/internal/domain"
	"storefront-extensions/internal/locale"
)

// filterTypes remaps backend attribute type names onto the flat storefront
// vocabulary. Types not listed pass through unchanged.
var filterTypes = map[string]string{
	"lenum": "enum",
	"ltext": "text",
}

// FilterFieldsFromProductTypes derives filter-field descriptors from every
// attribute definition of the given product types.
func FilterFieldsFromProductTypes(productTypes []backend.ProductType, loc locale.Locale) []domain.FilterField {
	var fields []domain.FilterField
	for _, pt := range productTypes {
		for _, def := range pt.Attributes {
			fields = append(fields, FilterFieldFromAttribute(def, loc))
		}
	}
	return fields
}

// FilterFieldFromAttribute maps one attribute definition. A set type is
// unwrapped one level so the element type drives the descriptor.
func FilterFieldFromAttribute(def backend.AttributeDefinition, loc locale.Locale) domain.FilterField {
	attrType := def.Type
	if attrType.Name == "set" && attrType.ElementType != nil {
		attrType = *attrType.ElementType
	}

	typeName := attrType.Name
	if mapped, ok := filterTypes[typeName]; ok {
		typeName = mapped
	}

	label := localized(def.Label, loc.Language)
	if label == "" {
		label = def.Name
	}

	var values []domain.FilterFieldValue
	for _, v := range attrType.Values {
		values = append(values, domain.FilterFieldValue{
			Value: v.Key,
			Name:  enumLabel(v.Label, loc),
		})
	}

	return domain.FilterField{
		Field:  "variants.attributes." + def.Name,
		Type:   typeName,
		Label:  label,
		Values: values,
	}
}

// enumLabel renders an enum label, which is a plain string for enums and a
// language-keyed map for localized enums.
func enumLabel(label interface{}, loc locale.Locale) string {
	switch v := LocalizedValue(label, loc).(type) {
	case string:
		return v
	default:
		return ""
	}
}
