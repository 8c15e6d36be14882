package extension

import (
	"context"
	"encoding/json"
	"net/http"

	"storefront-extensions/internal/domain"
	"storefront-extensions/internal/locale"
)

// cartResponse wraps a cart into the action envelope, pinning the cart id
// into the session so follow-up requests address the same cart.
func (r *Registry) cartResponse(req Request, cart *domain.Cart) (Response, error) {
	body, err := json.Marshal(cart)
	if err != nil {
		return Response{}, err
	}
	return Response{
		StatusCode:  http.StatusOK,
		Body:        string(body),
		SessionData: req.WithSession(map[string]interface{}{"cartId": cart.CartID}),
	}, nil
}

func (r *Registry) getCart(ctx context.Context, req Request) (Response, error) {
	cart, err := r.FetchCart(ctx, req)
	if err != nil {
		return Response{}, err
	}
	return r.cartResponse(req, cart)
}

func (r *Registry) addToCart(ctx context.Context, req Request) (Response, error) {
	var body struct {
		Variant struct {
			SKU   string `json:"sku"`
			Count int    `json:"count"`
		} `json:"variant"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}
	count := body.Variant.Count
	if count <= 0 {
		count = 1
	}

	cart, err := r.FetchCart(ctx, req)
	if err != nil {
		return Response{}, err
	}
	cart, err = r.carts.AddToCart(ctx, req.Locale(r.locale), cart, body.Variant.SKU, count)
	if err != nil {
		return Response{}, err
	}
	return r.cartResponse(req, cart)
}

func (r *Registry) updateLineItem(ctx context.Context, req Request) (Response, error) {
	var body struct {
		LineItem struct {
			ID    string `json:"id"`
			Count int    `json:"count"`
		} `json:"lineItem"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}

	cart, err := r.FetchCart(ctx, req)
	if err != nil {
		return Response{}, err
	}
	cart, err = r.carts.UpdateLineItem(ctx, req.Locale(r.locale), cart, body.LineItem.ID, body.LineItem.Count)
	if err != nil {
		return Response{}, err
	}
	return r.cartResponse(req, cart)
}

func (r *Registry) removeLineItem(ctx context.Context, req Request) (Response, error) {
	var body struct {
		LineItem struct {
			ID string `json:"id"`
		} `json:"lineItem"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}

	cart, err := r.FetchCart(ctx, req)
	if err != nil {
		return Response{}, err
	}
	cart, err = r.carts.RemoveLineItem(ctx, req.Locale(r.locale), cart, body.LineItem.ID)
	if err != nil {
		return Response{}, err
	}
	return r.cartResponse(req, cart)
}

func (r *Registry) setEmail(ctx context.Context, req Request) (Response, error) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}

	cart, err := r.FetchCart(ctx, req)
	if err != nil {
		return Response{}, err
	}
	cart, err = r.carts.SetEmail(ctx, req.Locale(r.locale), cart, body.Email)
	if err != nil {
		return Response{}, err
	}
	return r.cartResponse(req, cart)
}

func (r *Registry) setShippingAddress(ctx context.Context, req Request) (Response, error) {
	return r.setAddress(ctx, req, r.carts.SetShippingAddress)
}

func (r *Registry) setBillingAddress(ctx context.Context, req Request) (Response, error) {
	return r.setAddress(ctx, req, r.carts.SetBillingAddress)
}

func (r *Registry) setAddress(ctx context.Context, req Request, set func(context.Context, locale.Locale, *domain.Cart, *domain.Address) (*domain.Cart, error)) (Response, error) {
	var body struct {
		Address domain.Address `json:"address"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}

	cart, err := r.FetchCart(ctx, req)
	if err != nil {
		return Response{}, err
	}
	cart, err = set(ctx, req.Locale(r.locale), cart, &body.Address)
	if err != nil {
		return Response{}, err
	}
	return r.cartResponse(req, cart)
}

func (r *Registry) setShippingMethod(ctx context.Context, req Request) (Response, error) {
	var body struct {
		ShippingMethod struct {
			ID string `json:"id"`
		} `json:"shippingMethod"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}

	cart, err := r.FetchCart(ctx, req)
	if err != nil {
		return Response{}, err
	}
	cart, err = r.carts.SetShippingMethod(ctx, req.Locale(r.locale), cart, body.ShippingMethod.ID)
	if err != nil {
		return Response{}, err
	}
	return r.cartResponse(req, cart)
}

func (r *Registry) getShippingMethods(ctx context.Context, req Request) (Response, error) {
	onlyMatching := req.Query["onlyMatching"] == "true"
	methods, err := r.carts.GetShippingMethods(ctx, req.Locale(r.locale), onlyMatching)
	if err != nil {
		return Response{}, err
	}
	return jsonResponse(req, methods)
}

func (r *Registry) getAvailableShippingMethods(ctx context.Context, req Request) (Response, error) {
	cart, err := r.FetchCart(ctx, req)
	if err != nil {
		return Response{}, err
	}
	methods, err := r.carts.GetAvailableShippingMethods(ctx, req.Locale(r.locale), cart)
	if err != nil {
		return Response{}, err
	}
	return jsonResponse(req, methods)
}

func (r *Registry) checkout(ctx context.Context, req Request) (Response, error) {
	cart, err := r.FetchCart(ctx, req)
	if err != nil {
		return Response{}, err
	}
	order, err := r.carts.Checkout(ctx, req.Locale(r.locale), cart)
	if err != nil {
		return Response{}, err
	}

	body, err := json.Marshal(order)
	if err != nil {
		return Response{}, err
	}
	// The cart was consumed by the order; drop it from the session.
	return Response{
		StatusCode:  http.StatusOK,
		Body:        string(body),
		SessionData: req.WithSession(map[string]interface{}{"cartId": nil}),
	}, nil
}

func (r *Registry) addPaymentByInvoice(ctx context.Context, req Request) (Response, error) {
	var body struct {
		Payment domain.Payment `json:"payment"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}

	payment := body.Payment
	if payment.PaymentProvider == "" {
		payment.PaymentProvider = "invoice"
	}

	cart, err := r.FetchCart(ctx, req)
	if err != nil {
		return Response{}, err
	}
	cart, err = r.carts.AddPayment(ctx, req.Locale(r.locale), cart, payment)
	if err != nil {
		return Response{}, err
	}
	return r.cartResponse(req, cart)
}

func (r *Registry) updatePayment(ctx context.Context, req Request) (Response, error) {
	var body struct {
		Payment domain.Payment `json:"payment"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}

	cart, err := r.FetchCart(ctx, req)
	if err != nil {
		return Response{}, err
	}
	payment, err := r.carts.UpdatePayment(ctx, req.Locale(r.locale), cart, body.Payment)
	if err != nil {
		return Response{}, err
	}
	return jsonResponse(req, payment)
}

func jsonResponse(req Request, payload interface{}) (Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Response{}, err
	}
	return Response{
		StatusCode:  http.StatusOK,
		Body:        string(body),
		SessionData: req.SessionData,
	}, nil
}
