// Package account delegates customer login, registration, and profile
// maintenance to the backend. Credential and token semantics stay on the
// backend side; this service only maps the results for the session bag.
package account

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"storefront-extensions/internal/backend"
	"storefront-extensions/internal/domain"
	"storefront-extensions/internal/mapper"
)

type backendClient interface {
	Login(ctx context.Context, email, password string) (*backend.CustomerSignInResult, error)
	CreateCustomer(ctx context.Context, draft backend.CustomerDraft) (*backend.CustomerSignInResult, error)
	GetCustomerByID(ctx context.Context, id string) (*backend.Customer, error)
	UpdateCustomer(ctx context.Context, id string, update backend.Update) (*backend.Customer, error)
	ChangeCustomerPassword(ctx context.Context, change backend.PasswordChange) (*backend.Customer, error)
}

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

// Login authenticates the customer with the backend. A backend 400 or 401
// means the credentials were rejected; any other failure is an outage and
// surfaces as a wrapped error.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Account, error) {
	result, err := s.client.Login(ctx, email, password)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusUnauthorized) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login failed: %w", err)
	}
	account := mapper.AccountFrom(result.Customer)
	s.logger.Printf("account service: login accountId=%s", account.AccountID)
	return &account, nil
}

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Email           string
	Password        string
	Salutation      string
	FirstName       string
	LastName        string
	Birthday        string
	BillingAddress  *domain.Address
	ShippingAddress *domain.Address
	AnonymousCartID string
}

// Register creates the customer, attaching the anonymous cart when one
// exists so the backend merges it into the new account.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Account, error) {
	draft := backend.CustomerDraft{
		Email:           in.Email,
		Password:        in.Password,
		Salutation:      in.Salutation,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		DateOfBirth:     in.Birthday,
		AnonymousCartID: in.AnonymousCartID,
	}
	if in.BillingAddress != nil {
		draft.Addresses = append(draft.Addresses, *mapper.AddressDraft(in.BillingAddress))
	}
	if in.ShippingAddress != nil {
		draft.Addresses = append(draft.Addresses, *mapper.AddressDraft(in.ShippingAddress))
	}

	result, err := s.client.CreateCustomer(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("register failed: %w", err)
	}
	account := mapper.AccountFrom(result.Customer)
	s.logger.Printf("account service: registered accountId=%s", account.AccountID)
	return &account, nil
}

// UpdateInput carries profile fields to change. Empty fields are left
// untouched.
type UpdateInput struct {
	Salutation string
	FirstName  string
	LastName   string
	Birthday   string
}

// Update changes the customer's profile fields. With nothing to change it
// returns the current account without posting an update.
func (s *Service) Update(ctx context.Context, accountID string, in UpdateInput) (*domain.Account, error) {
	var actions []backend.UpdateAction
	if in.Salutation != "" {
		actions = append(actions, backend.UpdateAction{Action: "setSalutation", Salutation: in.Salutation})
	}
	if in.FirstName != "" {
		actions = append(actions, backend.UpdateAction{Action: "setFirstName", FirstName: in.FirstName})
	}
	if in.LastName != "" {
		actions = append(actions, backend.UpdateAction{Action: "setLastName", LastName: in.LastName})
	}
	if in.Birthday != "" {
		actions = append(actions, backend.UpdateAction{Action: "setDateOfBirth", DateOfBirth: in.Birthday})
	}
	if len(actions) == 0 {
		current, err := s.client.GetCustomerByID(ctx, accountID)
		if err != nil {
			return nil, fmt.Errorf("updateAccount failed: %w", err)
		}
		account := mapper.AccountFrom(*current)
		return &account, nil
	}

	account, err := s.customerUpdate(ctx, accountID, actions...)
	if err != nil {
		return nil, fmt.Errorf("updateAccount failed: %w", err)
	}
	return account, nil
}

// ChangePassword replaces the customer's password. The backend verifies the
// current password and rejects the call when it does not match.
func (s *Service) ChangePassword(ctx context.Context, accountID, currentPassword, newPassword string) (*domain.Account, error) {
	current, err := s.client.GetCustomerByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("changePassword failed: %w", err)
	}
	updated, err := s.client.ChangeCustomerPassword(ctx, backend.PasswordChange{
		ID:              accountID,
		Version:         current.Version,
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("changePassword failed: %w", err)
	}
	account := mapper.AccountFrom(*updated)
	s.logger.Printf("account service: password changed accountId=%s", account.AccountID)
	return &account, nil
}

// AddAddress appends an address to the customer's address book.
func (s *Service) AddAddress(ctx context.Context, accountID string, address *domain.Address) (*domain.Account, error) {
	account, err := s.customerUpdate(ctx, accountID, backend.UpdateAction{
		Action:  "addAddress",
		Address: mapper.AddressDraft(address),
	})
	if err != nil {
		return nil, fmt.Errorf("addAddress failed: %w", err)
	}
	return account, nil
}

// UpdateAddress replaces the address identified by its id.
func (s *Service) UpdateAddress(ctx context.Context, accountID string, address *domain.Address) (*domain.Account, error) {
	account, err := s.customerUpdate(ctx, accountID, backend.UpdateAction{
		Action:    "changeAddress",
		AddressID: address.AddressID,
		Address:   mapper.AddressDraft(address),
	})
	if err != nil {
		return nil, fmt.Errorf("updateAddress failed: %w", err)
	}
	return account, nil
}

// RemoveAddress deletes an address from the customer's address book.
func (s *Service) RemoveAddress(ctx context.Context, accountID, addressID string) (*domain.Account, error) {
	account, err := s.customerUpdate(ctx, accountID, backend.UpdateAction{
		Action:    "removeAddress",
		AddressID: addressID,
	})
	if err != nil {
		return nil, fmt.Errorf("removeAddress failed: %w", err)
	}
	return account, nil
}

// SetDefaultBillingAddress marks an existing address as the billing default.
func (s *Service) SetDefaultBillingAddress(ctx context.Context, accountID, addressID string) (*domain.Account, error) {
	account, err := s.customerUpdate(ctx, accountID, backend.UpdateAction{
		Action:    "setDefaultBillingAddress",
		AddressID: addressID,
	})
	if err != nil {
		return nil, fmt.Errorf("setDefaultBillingAddress failed: %w", err)
	}
	return account, nil
}

// SetDefaultShippingAddress marks an existing address as the shipping
// default.
func (s *Service) SetDefaultShippingAddress(ctx context.Context, accountID, addressID string) (*domain.Account, error) {
	account, err := s.customerUpdate(ctx, accountID, backend.UpdateAction{
		Action:    "setDefaultShippingAddress",
		AddressID: addressID,
	})
	if err != nil {
		return nil, fmt.Errorf("setDefaultShippingAddress failed: %w", err)
	}
	return account, nil
}

// customerUpdate refetches the customer for its current version and posts
// the actions against it.
func (s *Service) customerUpdate(ctx context.Context, accountID string, actions ...backend.UpdateAction) (*domain.Account, error) {
	current, err := s.client.GetCustomerByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	updated, err := s.client.UpdateCustomer(ctx, accountID, backend.Update{
		Version: current.Version,
		Actions: actions,
	})
	if err != nil {
		return nil, err
	}
	account := mapper.AccountFrom(*updated)
	return &account, nil
}
