package extension

import (
	"context"
	"io"
	"log"

	"storefront-extensions/internal/domain"
	"storefront-extensions/internal/locale"
	"storefront-extensions/internal/query"
	"storefront-extensions/internal/service/account"
)

// ActionFunc is a named, independently invokable request handler.
type ActionFunc func(ctx context.Context, req Request) (Response, error)

// DataSourceFunc is a named data-fetching function invoked during page
// assembly.
type DataSourceFunc func(ctx context.Context, config DataSourceConfig, req Request) (DataSourceResult, error)

type cartService interface {
	GetForUser(ctx context.Context, loc locale.Locale, accountID string) (*domain.Cart, error)
	GetAnonymous(ctx context.Context, loc locale.Locale, anonymousID string) (*domain.Cart, error)
	GetByID(ctx context.Context, loc locale.Locale, cartID string) (*domain.Cart, error)
	AddToCart(ctx context.Context, loc locale.Locale, cart *domain.Cart, sku string, count int) (*domain.Cart, error)
	UpdateLineItem(ctx context.Context, loc locale.Locale, cart *domain.Cart, lineItemID string, count int) (*domain.Cart, error)
	RemoveLineItem(ctx context.Context, loc locale.Locale, cart *domain.Cart, lineItemID string) (*domain.Cart, error)
	SetEmail(ctx context.Context, loc locale.Locale, cart *domain.Cart, email string) (*domain.Cart, error)
	SetShippingAddress(ctx context.Context, loc locale.Locale, cart *domain.Cart, address *domain.Address) (*domain.Cart, error)
	SetBillingAddress(ctx context.Context, loc locale.Locale, cart *domain.Cart, address *domain.Address) (*domain.Cart, error)
	SetShippingMethod(ctx context.Context, loc locale.Locale, cart *domain.Cart, shippingMethodID string) (*domain.Cart, error)
	Checkout(ctx context.Context, loc locale.Locale, cart *domain.Cart) (*domain.Order, error)
	GetShippingMethods(ctx context.Context, loc locale.Locale, onlyMatching bool) ([]domain.ShippingMethod, error)
	GetAvailableShippingMethods(ctx context.Context, loc locale.Locale, cart *domain.Cart) ([]domain.ShippingMethod, error)
	AddPayment(ctx context.Context, loc locale.Locale, cart *domain.Cart, payment domain.Payment) (*domain.Cart, error)
	UpdatePayment(ctx context.Context, loc locale.Locale, cart *domain.Cart, payment domain.Payment) (*domain.Payment, error)
}

type productService interface {
	Query(ctx context.Context, loc locale.Locale, q query.ProductQuery) (*domain.Result, error)
	GetProduct(ctx context.Context, loc locale.Locale, q query.ProductQuery) (*domain.Product, error)
	FilterFields(ctx context.Context, loc locale.Locale) ([]domain.FilterField, error)
}

type wishlistService interface {
	GetByID(ctx context.Context, loc locale.Locale, wishlistID string) (*domain.Wishlist, error)
	Create(ctx context.Context, loc locale.Locale, anonymousID, name string) (*domain.Wishlist, error)
	AddLineItem(ctx context.Context, loc locale.Locale, wishlist *domain.Wishlist, sku string, count int) (*domain.Wishlist, error)
	RemoveLineItem(ctx context.Context, loc locale.Locale, wishlist *domain.Wishlist, lineItemID string) (*domain.Wishlist, error)
}

type accountService interface {
	Login(ctx context.Context, email, password string) (*domain.Account, error)
	Register(ctx context.Context, in account.RegisterInput) (*domain.Account, error)
	Update(ctx context.Context, accountID string, in account.UpdateInput) (*domain.Account, error)
	ChangePassword(ctx context.Context, accountID, currentPassword, newPassword string) (*domain.Account, error)
	AddAddress(ctx context.Context, accountID string, address *domain.Address) (*domain.Account, error)
	UpdateAddress(ctx context.Context, accountID string, address *domain.Address) (*domain.Account, error)
	RemoveAddress(ctx context.Context, accountID, addressID string) (*domain.Account, error)
	SetDefaultBillingAddress(ctx context.Context, accountID, addressID string) (*domain.Account, error)
	SetDefaultShippingAddress(ctx context.Context, accountID, addressID string) (*domain.Account, error)
}

// Deps are the collaborators the registry dispatches to.
type Deps struct {
	Carts     cartService
	Products  productService
	Wishlists wishlistService
	Accounts  accountService
	Locale    locale.Resolver
	Logger    *log.Logger
}

// Registry holds the named action and data-source lookups exposed to the
// host.
type Registry struct {
	carts     cartService
	products  productService
	wishlists wishlistService
	accounts  accountService
	locale    locale.Resolver
	logger    *log.Logger
}

func NewRegistry(deps Deps) *Registry {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Registry{
		carts:     deps.Carts,
		products:  deps.Products,
		wishlists: deps.Wishlists,
		accounts:  deps.Accounts,
		locale:    deps.Locale,
		logger:    logger,
	}
}

// Actions returns the namespace -> action-name dispatch table.
func (r *Registry) Actions() map[string]map[string]ActionFunc {
	return map[string]map[string]ActionFunc{
		"cart": {
			"getCart":                     r.getCart,
			"addToCart":                   r.addToCart,
			"updateLineItem":              r.updateLineItem,
			"removeLineItem":              r.removeLineItem,
			"setEmail":                    r.setEmail,
			"setShippingAddress":          r.setShippingAddress,
			"setBillingAddress":           r.setBillingAddress,
			"setShippingMethod":           r.setShippingMethod,
			"getShippingMethods":          r.getShippingMethods,
			"getAvailableShippingMethods": r.getAvailableShippingMethods,
			"checkout":                    r.checkout,
			"addPaymentByInvoice":         r.addPaymentByInvoice,
			"updatePayment":               r.updatePayment,
		},
		"product": {
			"getProduct":           r.getProduct,
			"query":                r.queryProducts,
			"searchableAttributes": r.searchableAttributes,
		},
		"wishlist": {
			"getWishlist":    r.getWishlist,
			"addToWishlist":  r.addToWishlist,
			"removeLineItem": r.removeWishlistLineItem,
		},
		"account": {
			"getAccount":                r.getAccount,
			"login":                     r.login,
			"logout":                    r.logout,
			"register":                  r.register,
			"update":                    r.updateAccount,
			"password":                  r.changePassword,
			"addAddress":                r.addAddress,
			"updateAddress":             r.updateAddress,
			"removeAddress":             r.removeAddress,
			"setDefaultBillingAddress":  r.setDefaultBillingAddress,
			"setDefaultShippingAddress": r.setDefaultShippingAddress,
		},
	}
}

// DataSources returns the named data-source lookup.
func (r *Registry) DataSources() map[string]DataSourceFunc {
	return map[string]DataSourceFunc{
		"commerce/product-list": r.productListDataSource,
	}
}
