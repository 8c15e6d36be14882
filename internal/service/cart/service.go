// Package cart drives the backend cart, order, shipping and payment
// endpoints and maps their responses. The cart version token is threaded
// through every mutation unchanged; version conflicts surface as backend
// errors.
package cart

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/google/uuid"

	"storefront-extensions/internal/backend"
	"storefront-extensions/internal/domain"
	"storefront-extensions/internal/locale"
	"storefront-extensions/internal/mapper"
)

// cartExpand is requested on every cart read so discounts and payments
// come back expanded.
var cartExpand = []string{
	"lineItems[*].discountedPrice.includedDiscounts[*].discount",
	"discountCodes[*].discountCode",
	"paymentInfo.payments[*]",
}

var zoneExpand = []string{"zoneRates[*].zone"}

type backendClient interface {
	QueryCarts(ctx context.Context, args backend.CartQueryArgs) (*backend.CartPagedQueryResponse, error)
	GetCartByID(ctx context.Context, id string, expand []string) (*backend.Cart, error)
	CreateCart(ctx context.Context, draft backend.CartDraft, expand []string) (*backend.Cart, error)
	UpdateCart(ctx context.Context, id string, update backend.Update, expand []string) (*backend.Cart, error)
	CreateOrderFromCart(ctx context.Context, draft backend.OrderFromCartDraft, expand []string) (*backend.Order, error)
	QueryShippingMethods(ctx context.Context, expand []string) (*backend.ShippingMethodPagedQueryResponse, error)
	QueryShippingMethodsMatchingLocation(ctx context.Context, country string, expand []string) (*backend.ShippingMethodPagedQueryResponse, error)
	QueryShippingMethodsMatchingCart(ctx context.Context, cartID string, expand []string) (*backend.ShippingMethodPagedQueryResponse, error)
	CreatePayment(ctx context.Context, draft backend.PaymentDraft) (*backend.Payment, error)
	UpdatePaymentByKey(ctx context.Context, key string, update backend.Update) (*backend.Payment, error)
}

// Service exposes cart operations to actions and routers.
type Service struct {
	client backendClient
	logger *log.Logger
}

func New(client backendClient, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{client: client, logger: logger}
}

// GetForUser finds the customer's active cart or creates one in the
// request's currency and country.
func (s *Service) GetForUser(ctx context.Context, loc locale.Locale, accountID string) (*domain.Cart, error) {
	response, err := s.client.QueryCarts(ctx, backend.CartQueryArgs{
		Limit:      1,
		CustomerID: accountID,
		Expand:     cartExpand,
	})
	if err != nil {
		return nil, fmt.Errorf("getForUser failed: %w", err)
	}
	if response.Count >= 1 {
		return s.buildCartWithAvailableShippingMethods(ctx, response.Results[0], loc)
	}

	created, err := s.client.CreateCart(ctx, backend.CartDraft{
		Currency:   loc.Currency,
		Country:    loc.Country,
		Locale:     loc.Language,
		CustomerID: accountID,
	}, cartExpand)
	if err != nil {
		return nil, fmt.Errorf("getForUser failed: %w", err)
	}
	return s.buildCartWithAvailableShippingMethods(ctx, *created, loc)
}

// GetAnonymous finds or creates the cart owned by an anonymous id.
func (s *Service) GetAnonymous(ctx context.Context, loc locale.Locale, anonymousID string) (*domain.Cart, error) {
	response, err := s.client.QueryCarts(ctx, backend.CartQueryArgs{
		Limit:  1,
		Where:  []string{fmt.Sprintf("anonymousId=%q", anonymousID)},
		Expand: cartExpand,
	})
	if err != nil {
		return nil, fmt.Errorf("getAnonymous failed: %w", err)
	}
	if response.Count >= 1 {
		return s.buildCartWithAvailableShippingMethods(ctx, response.Results[0], loc)
	}

	created, err := s.client.CreateCart(ctx, backend.CartDraft{
		Currency:    loc.Currency,
		Country:     loc.Country,
		Locale:      loc.Language,
		AnonymousID: anonymousID,
	}, cartExpand)
	if err != nil {
		return nil, fmt.Errorf("getAnonymous failed: %w", err)
	}
	return s.buildCartWithAvailableShippingMethods(ctx, *created, loc)
}

// GetByID fetches a cart by id.
func (s *Service) GetByID(ctx context.Context, loc locale.Locale, cartID string) (*domain.Cart, error) {
	response, err := s.client.GetCartByID(ctx, cartID, cartExpand)
	if err != nil {
		if backend.IsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getById failed: %w", err)
	}
	return s.buildCartWithAvailableShippingMethods(ctx, *response, loc)
}

// AddToCart adds a SKU to the cart.
func (s *Service) AddToCart(ctx context.Context, loc locale.Locale, cart *domain.Cart, sku string, count int) (*domain.Cart, error) {
	updated, err := s.update(ctx, loc, cart, backend.UpdateAction{
		Action:   "addLineItem",
		SKU:      sku,
		Quantity: count,
	})
	if err != nil {
		return nil, fmt.Errorf("addToCart failed: %w", err)
	}
	return updated, nil
}

// UpdateLineItem changes a line item's quantity.
func (s *Service) UpdateLineItem(ctx context.Context, loc locale.Locale, cart *domain.Cart, lineItemID string, count int) (*domain.Cart, error) {
	updated, err := s.update(ctx, loc, cart, backend.UpdateAction{
		Action:     "changeLineItemQuantity",
		LineItemID: lineItemID,
		Quantity:   count,
	})
	if err != nil {
		return nil, fmt.Errorf("updateLineItem failed: %w", err)
	}
	return updated, nil
}

// RemoveLineItem deletes a line item from the cart.
func (s *Service) RemoveLineItem(ctx context.Context, loc locale.Locale, cart *domain.Cart, lineItemID string) (*domain.Cart, error) {
	updated, err := s.update(ctx, loc, cart, backend.UpdateAction{
		Action:     "removeLineItem",
		LineItemID: lineItemID,
	})
	if err != nil {
		return nil, fmt.Errorf("removeLineItem failed: %w", err)
	}
	return updated, nil
}

// SetEmail sets the customer email on the cart.
func (s *Service) SetEmail(ctx context.Context, loc locale.Locale, cart *domain.Cart, email string) (*domain.Cart, error) {
	updated, err := s.update(ctx, loc, cart, backend.UpdateAction{
		Action: "setCustomerEmail",
		Email:  email,
	})
	if err != nil {
		return nil, fmt.Errorf("setEmail failed: %w", err)
	}
	return updated, nil
}

// SetShippingAddress sets the shipping address.
func (s *Service) SetShippingAddress(ctx context.Context, loc locale.Locale, cart *domain.Cart, address *domain.Address) (*domain.Cart, error) {
	updated, err := s.update(ctx, loc, cart, backend.UpdateAction{
		Action:  "setShippingAddress",
		Address: mapper.AddressDraft(address),
	})
	if err != nil {
		return nil, fmt.Errorf("setShippingAddress failed: %w", err)
	}
	return updated, nil
}

// SetBillingAddress sets the billing address.
func (s *Service) SetBillingAddress(ctx context.Context, loc locale.Locale, cart *domain.Cart, address *domain.Address) (*domain.Cart, error) {
	updated, err := s.update(ctx, loc, cart, backend.UpdateAction{
		Action:  "setBillingAddress",
		Address: mapper.AddressDraft(address),
	})
	if err != nil {
		return nil, fmt.Errorf("setBillingAddress failed: %w", err)
	}
	return updated, nil
}

// SetShippingMethod selects a shipping method on the cart.
func (s *Service) SetShippingMethod(ctx context.Context, loc locale.Locale, cart *domain.Cart, shippingMethodID string) (*domain.Cart, error) {
	updated, err := s.update(ctx, loc, cart, backend.UpdateAction{
		Action: "setShippingMethod",
		ShippingMethod: &backend.ResourceIdentifier{
			TypeID: "shipping-method",
			ID:     shippingMethodID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("setShippingMethod failed: %w", err)
	}
	return updated, nil
}

// Checkout places an order from the cart, assigning a generated order
// number. Cart readiness is validated by the backend.
func (s *Service) Checkout(ctx context.Context, loc locale.Locale, cart *domain.Cart) (*domain.Order, error) {
	version, err := cartVersion(cart)
	if err != nil {
		return nil, fmt.Errorf("order failed: %w", err)
	}

	response, err := s.client.CreateOrderFromCart(ctx, backend.OrderFromCartDraft{
		ID:          cart.CartID,
		Version:     version,
		OrderNumber: uuid.NewString(),
	}, cartExpand)
	if err != nil {
		return nil, fmt.Errorf("order failed: %w", err)
	}

	order := mapper.OrderFrom(*response, loc)
	return &order, nil
}

// GetShippingMethods lists the project's shipping methods; with
// onlyMatching the backend restricts rates to the locale's country and
// flags them, which the mapping then filters on.
func (s *Service) GetShippingMethods(ctx context.Context, loc locale.Locale, onlyMatching bool) ([]domain.ShippingMethod, error) {
	var response *backend.ShippingMethodPagedQueryResponse
	var err error
	if onlyMatching {
		response, err = s.client.QueryShippingMethodsMatchingLocation(ctx, loc.Country, zoneExpand)
	} else {
		response, err = s.client.QueryShippingMethods(ctx, zoneExpand)
	}
	if err != nil {
		return nil, fmt.Errorf("getShippingMethods failed: %w", err)
	}

	methods := make([]domain.ShippingMethod, 0, len(response.Results))
	for _, sm := range response.Results {
		methods = append(methods, mapper.ShippingMethodFrom(sm, loc))
	}
	return methods, nil
}

// GetAvailableShippingMethods lists the methods deliverable to the cart's
// shipping address.
func (s *Service) GetAvailableShippingMethods(ctx context.Context, loc locale.Locale, cart *domain.Cart) ([]domain.ShippingMethod, error) {
	response, err := s.client.QueryShippingMethodsMatchingCart(ctx, cart.CartID, zoneExpand)
	if err != nil {
		return nil, fmt.Errorf("getAvailableShippingMethods failed: %w", err)
	}

	methods := make([]domain.ShippingMethod, 0, len(response.Results))
	for _, sm := range response.Results {
		methods = append(methods, mapper.ShippingMethodFrom(sm, loc))
	}
	return methods, nil
}

// AddPayment registers a payment with the backend and attaches it to the
// cart.
func (s *Service) AddPayment(ctx context.Context, loc locale.Locale, cart *domain.Cart, payment domain.Payment) (*domain.Cart, error) {
	created, err := s.client.CreatePayment(ctx, backend.PaymentDraft{
		Key:         payment.ID,
		InterfaceID: payment.PaymentID,
		AmountPlanned: backend.TypedMoney{
			CentAmount:   payment.AmountPlanned.CentAmount,
			CurrencyCode: payment.AmountPlanned.CurrencyCode,
		},
		PaymentMethodInfo: backend.PaymentMethodInfo{
			PaymentInterface: payment.PaymentProvider,
			Method:           payment.PaymentMethod,
		},
		PaymentStatus: backend.PaymentStatus{
			InterfaceCode: payment.PaymentStatus,
			InterfaceText: payment.Debug,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("addPayment failed: %w", err)
	}

	updated, err := s.update(ctx, loc, cart, backend.UpdateAction{
		Action: "addPayment",
		Payment: &backend.ResourceIdentifier{
			TypeID: "payment",
			ID:     created.ID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("addPayment failed: %w", err)
	}
	return updated, nil
}

// UpdatePayment pushes status changes onto a payment already attached to
// the cart.
func (s *Service) UpdatePayment(ctx context.Context, loc locale.Locale, cart *domain.Cart, payment domain.Payment) (*domain.Payment, error) {
	var original *domain.Payment
	for i := range cart.Payments {
		if cart.Payments[i].ID == payment.ID {
			original = &cart.Payments[i]
			break
		}
	}
	if original == nil {
		return nil, fmt.Errorf("updatePayment failed: payment %s not found in cart %s", payment.ID, cart.CartID)
	}

	var actions []backend.UpdateAction
	if payment.PaymentStatus != "" {
		actions = append(actions, backend.UpdateAction{Action: "setStatusInterfaceCode", InterfaceCode: payment.PaymentStatus})
	}
	if payment.Debug != "" {
		actions = append(actions, backend.UpdateAction{Action: "setStatusInterfaceText", InterfaceText: payment.Debug})
	}
	if payment.PaymentID != "" {
		actions = append(actions, backend.UpdateAction{Action: "setInterfaceId", InterfaceID: payment.PaymentID})
	}
	if len(actions) == 0 {
		return &payment, nil
	}

	response, err := s.client.UpdatePaymentByKey(ctx, original.ID, backend.Update{
		Version: original.Version,
		Actions: actions,
	})
	if err != nil {
		return nil, fmt.Errorf("updatePayment failed: %w", err)
	}

	mapped := mapper.PaymentFrom(*response, "")
	return &mapped, nil
}

func (s *Service) update(ctx context.Context, loc locale.Locale, cart *domain.Cart, actions ...backend.UpdateAction) (*domain.Cart, error) {
	version, err := cartVersion(cart)
	if err != nil {
		return nil, err
	}

	response, err := s.client.UpdateCart(ctx, cart.CartID, backend.Update{
		Version: version,
		Actions: actions,
	}, cartExpand)
	if err != nil {
		return nil, err
	}
	return s.buildCartWithAvailableShippingMethods(ctx, *response, loc)
}

// buildCartWithAvailableShippingMethods maps the backend cart and, when a
// shipping address with a country is present, enriches it with the
// shipping methods available for it. Enrichment failures propagate; they
// are not swallowed into a degraded cart.
func (s *Service) buildCartWithAvailableShippingMethods(ctx context.Context, backendCart backend.Cart, loc locale.Locale) (*domain.Cart, error) {
	cart := mapper.CartFrom(backendCart, loc)

	if cart.ShippingAddress != nil && cart.ShippingAddress.Country != "" {
		methods, err := s.GetAvailableShippingMethods(ctx, loc, &cart)
		if err != nil {
			return nil, fmt.Errorf("buildCartWithAvailableShippingMethods failed: %w", err)
		}
		cart.AvailableShippingMethods = methods
	}

	s.logger.Printf("cart service: built cart id=%s version=%s lineItems=%d", cart.CartID, cart.CartVersion, len(cart.LineItems))
	return &cart, nil
}

func cartVersion(cart *domain.Cart) (int, error) {
	version, err := strconv.Atoi(cart.CartVersion)
	if err != nil {
		return 0, fmt.Errorf("invalid cart version %q", cart.CartVersion)
	}
	return version, nil
}
