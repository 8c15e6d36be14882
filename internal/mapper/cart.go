package mapper

import (
	"encoding/json"
	"strconv"

	"storefront-extensions/internal/backend"
	"storefront-extensions/internal/domain"
	"storefront-extensions/internal/locale"
)

// CartFrom maps a backend cart. The version token is carried through as an
// opaque string.
func CartFrom(c backend.Cart, loc locale.Locale) domain.Cart {
	return domain.Cart{
		CartID:          c.ID,
		CartVersion:     strconv.Itoa(c.Version),
		LineItems:       LineItemsFrom(c.LineItems, loc),
		Email:           c.CustomerEmail,
		Sum:             NormalizeMoney(&c.TotalPrice),
		ShippingAddress: AddressFrom(c.ShippingAddress),
		BillingAddress:  AddressFrom(c.BillingAddress),
		ShippingInfo:    ShippingInfoFrom(c.ShippingInfo, loc),
		Payments:        PaymentsFrom(c.PaymentInfo),
	}
}

// LineItemsFrom maps backend line items, resolving names against the
// locale and flagging gift items.
func LineItemsFrom(items []backend.LineItem, loc locale.Locale) []domain.LineItem {
	lineItems := make([]domain.LineItem, 0, len(items))
	for _, li := range items {
		variant := VariantFrom(li.Variant, loc)

		var price, discounted *domain.Money
		if li.Price != nil {
			price = NormalizeMoney(&li.Price.Value)
			if li.Price.Discounted != nil {
				discounted = NormalizeMoney(&li.Price.Discounted.Value)
			}
		}

		lineItems = append(lineItems, domain.LineItem{
			LineItemID:      li.ID,
			Name:            localized(li.Name, loc.Language),
			Type:            "variant",
			Count:           li.Quantity,
			Price:           price,
			DiscountedPrice: discounted,
			TotalPrice:      NormalizeMoney(&li.TotalPrice),
			Variant:         &variant,
			IsGift:          li.LineItemMode == "GiftLineItem",
			URL:             domain.LineItemURL(variant.SKU),
		})
	}
	return lineItems
}

// AddressFrom maps an optional backend address; nil stays nil.
func AddressFrom(a *backend.Address) *domain.Address {
	if a == nil {
		return nil
	}
	return &domain.Address{
		AddressID:             a.ID,
		Salutation:            a.Salutation,
		FirstName:             a.FirstName,
		LastName:              a.LastName,
		StreetName:            a.StreetName,
		StreetNumber:          a.StreetNumber,
		AdditionalStreetInfo:  a.AdditionalStreetInfo,
		AdditionalAddressInfo: a.AdditionalAddressInfo,
		PostalCode:            a.PostalCode,
		City:                  a.City,
		Country:               a.Country,
		State:                 a.State,
		Phone:                 a.Phone,
	}
}

// AddressDraft converts a storefront address back into the backend wire
// shape for cart update actions.
func AddressDraft(a *domain.Address) *backend.Address {
	if a == nil {
		return nil
	}
	return &backend.Address{
		ID:                    a.AddressID,
		Salutation:            a.Salutation,
		FirstName:             a.FirstName,
		LastName:              a.LastName,
		StreetName:            a.StreetName,
		StreetNumber:          a.StreetNumber,
		AdditionalStreetInfo:  a.AdditionalStreetInfo,
		AdditionalAddressInfo: a.AdditionalAddressInfo,
		PostalCode:            a.PostalCode,
		City:                  a.City,
		Country:               a.Country,
		State:                 a.State,
		Phone:                 a.Phone,
	}
}

// OrderFrom maps a placed order. It is structurally the cart mapping with
// the order identity fields on top.
func OrderFrom(o backend.Order, loc locale.Locale) domain.Order {
	return domain.Order{
		CartID:          o.ID,
		OrderState:      o.OrderState,
		OrderID:         o.OrderNumber,
		OrderVersion:    strconv.Itoa(o.Version),
		LineItems:       LineItemsFrom(o.LineItems, loc),
		Email:           o.CustomerEmail,
		ShippingAddress: AddressFrom(o.ShippingAddress),
		BillingAddress:  AddressFrom(o.BillingAddress),
		Sum:             NormalizeMoney(&o.TotalPrice),
	}
}

// ShippingInfoFrom maps the cart's shipping info. Without the expanded
// shipping-method object only the bare method id is retained; partial data
// is acceptable here.
func ShippingInfoFrom(si *backend.ShippingInfo, loc locale.Locale) *domain.ShippingInfo {
	if si == nil {
		return nil
	}

	var method domain.ShippingMethod
	if si.ShippingMethod != nil {
		method = domain.ShippingMethod{ShippingMethodID: si.ShippingMethod.ID}
		if si.ShippingMethod.Obj != nil {
			method = ShippingMethodFrom(*si.ShippingMethod.Obj, loc)
		}
	}

	return &domain.ShippingInfo{
		ShippingMethod: method,
		Price:          NormalizeMoney(&si.Price),
	}
}

// ShippingMethodFrom maps a shipping method, preferring localized name and
// description over the plain ones.
func ShippingMethodFrom(sm backend.ShippingMethod, loc locale.Locale) domain.ShippingMethod {
	name := localized(sm.LocalizedName, loc.Language)
	if name == "" {
		name = sm.Name
	}
	description := localized(sm.LocalizedDescription, loc.Language)
	if description == "" {
		description = sm.Description
	}
	return domain.ShippingMethod{
		ShippingMethodID: sm.ID,
		Name:             name,
		Description:      description,
		Rates:            RatesFromZoneRates(sm.ZoneRates, loc),
	}
}

// RatesFromZoneRates flattens zone rates into shipping rates. A rate
// explicitly flagged isMatching=false is dropped; unflagged rates and
// rates flagged true are kept, so the same mapping serves both the
// all-rates and the location-matching query modes.
func RatesFromZoneRates(zoneRates []backend.ZoneRate, loc locale.Locale) []domain.ShippingRate {
	if zoneRates == nil {
		return nil
	}

	rates := make([]domain.ShippingRate, 0, len(zoneRates))
	for _, zr := range zoneRates {
		var name string
		var locations []domain.ShippingLocation
		if zr.Zone.Obj != nil {
			name = zr.Zone.Obj.Name
			for _, l := range zr.Zone.Obj.Locations {
				locations = append(locations, domain.ShippingLocation{Country: l.Country, State: l.State})
			}
		}

		for _, rate := range zr.ShippingRates {
			if rate.IsMatching != nil && !*rate.IsMatching {
				continue
			}
			price := rate.Price
			rates = append(rates, domain.ShippingRate{
				ShippingRateID: zr.Zone.ID,
				Name:           name,
				Locations:      locations,
				Price:          NormalizeMoney(&price),
			})
		}
	}
	return rates
}

// PaymentsFrom maps the payments attached to a cart. Unexpanded payment
// references carry no detail and are skipped.
func PaymentsFrom(pi *backend.PaymentInfo) []domain.Payment {
	if pi == nil {
		return nil
	}

	payments := make([]domain.Payment, 0, len(pi.Payments))
	for _, ref := range pi.Payments {
		if ref.Obj == nil {
			continue
		}
		debug, _ := json.Marshal(ref)
		payments = append(payments, PaymentFrom(*ref.Obj, string(debug)))
	}
	return payments
}

// PaymentFrom maps one expanded backend payment.
func PaymentFrom(p backend.Payment, debug string) domain.Payment {
	var amount domain.Money
	if m := NormalizeMoney(&p.AmountPlanned); m != nil {
		amount = *m
	}
	return domain.Payment{
		ID:              p.Key,
		PaymentID:       p.InterfaceID,
		PaymentProvider: p.PaymentMethodInfo.PaymentInterface,
		PaymentMethod:   p.PaymentMethodInfo.Method,
		AmountPlanned:   amount,
		Debug:           debug,
		PaymentStatus:   p.PaymentStatus.InterfaceCode,
		Version:         p.Version,
	}
}
