package account

import (
	"context"
	"errors"
	"testing"

	"storefront-extensions/internal/backend"
	"storefront-extensions/internal/domain"
)

type stubClient struct {
	result *backend.CustomerSignInResult
	err    error

	lastEmail    string
	lastPassword string
	lastDraft    backend.CustomerDraft

	customer *backend.Customer
	getErr   error

	updated      *backend.Customer
	updateErr    error
	lastUpdateID string
	lastUpdate   backend.Update

	lastPasswordChange backend.PasswordChange
}

func (s *stubClient) Login(_ context.Context, email, password string) (*backend.CustomerSignInResult, error) {
	s.lastEmail = email
	s.lastPassword = password
	return s.result, s.err
}

func (s *stubClient) CreateCustomer(_ context.Context, draft backend.CustomerDraft) (*backend.CustomerSignInResult, error) {
	s.lastDraft = draft
	return s.result, s.err
}

func (s *stubClient) GetCustomerByID(_ context.Context, _ string) (*backend.Customer, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.customer, nil
}

func (s *stubClient) UpdateCustomer(_ context.Context, id string, update backend.Update) (*backend.Customer, error) {
	s.lastUpdateID = id
	s.lastUpdate = update
	return s.updated, s.updateErr
}

func (s *stubClient) ChangeCustomerPassword(_ context.Context, change backend.PasswordChange) (*backend.Customer, error) {
	s.lastPasswordChange = change
	return s.updated, s.updateErr
}

func TestLogin(t *testing.T) {
	client := &stubClient{result: &backend.CustomerSignInResult{
		Customer: backend.Customer{ID: "cust-1", Email: "a@b.c", FirstName: "Ann"},
	}}
	svc := New(client, nil)

	account, err := svc.Login(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.AccountID != "cust-1" || account.Email != "a@b.c" || account.FirstName != "Ann" {
		t.Fatalf("unexpected account: %+v", account)
	}
	if client.lastEmail != "a@b.c" || client.lastPassword != "secret" {
		t.Fatalf("unexpected credentials forwarded")
	}
}

func TestLoginRejectedCredentials(t *testing.T) {
	client := &stubClient{err: &backend.APIError{StatusCode: 400, Message: "invalid credentials"}}
	svc := New(client, nil)

	_, err := svc.Login(context.Background(), "a@b.c", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginOutageIsNotACredentialError(t *testing.T) {
	client := &stubClient{err: &backend.APIError{StatusCode: 503}}
	svc := New(client, nil)

	_, err := svc.Login(context.Background(), "a@b.c", "secret")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected wrapped outage error, got %v", err)
	}
	if !errors.Is(err, client.err) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
}

func TestLoginError(t *testing.T) {
	client := &stubClient{err: errors.New("connection refused")}
	svc := New(client, nil)

	_, err := svc.Login(context.Background(), "a@b.c", "wrong")
	if err == nil || !errors.Is(err, client.err) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestRegisterBuildsDraft(t *testing.T) {
	client := &stubClient{result: &backend.CustomerSignInResult{
		Customer: backend.Customer{ID: "cust-1", Email: "a@b.c"},
	}}
	svc := New(client, nil)

	account, err := svc.Register(context.Background(), RegisterInput{
		Email:           "a@b.c",
		Password:        "secret",
		FirstName:       "Ann",
		LastName:        "Smith",
		Birthday:        "1990-04-01",
		BillingAddress:  &domain.Address{City: "Berlin", Country: "DE"},
		ShippingAddress: &domain.Address{City: "Hamburg", Country: "DE"},
		AnonymousCartID: "cart-anon",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.AccountID != "cust-1" {
		t.Fatalf("unexpected account: %+v", account)
	}

	draft := client.lastDraft
	if draft.Email != "a@b.c" || draft.DateOfBirth != "1990-04-01" {
		t.Fatalf("unexpected draft: %+v", draft)
	}
	if draft.AnonymousCartID != "cart-anon" {
		t.Fatalf("expected anonymous cart forwarded, got %+v", draft)
	}
	if len(draft.Addresses) != 2 || draft.Addresses[0].City != "Berlin" || draft.Addresses[1].City != "Hamburg" {
		t.Fatalf("unexpected addresses: %+v", draft.Addresses)
	}
}

func TestRegisterWithoutAddresses(t *testing.T) {
	client := &stubClient{result: &backend.CustomerSignInResult{
		Customer: backend.Customer{ID: "cust-1"},
	}}
	svc := New(client, nil)

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.lastDraft.Addresses) != 0 {
		t.Fatalf("expected no addresses, got %+v", client.lastDraft.Addresses)
	}
}

func TestUpdateSendsConditionalActions(t *testing.T) {
	client := &stubClient{
		customer: &backend.Customer{ID: "cust-1", Version: 3},
		updated:  &backend.Customer{ID: "cust-1", Version: 4, Salutation: "ms", FirstName: "Ann", DateOfBirth: "1990-04-01"},
	}
	svc := New(client, nil)

	account, err := svc.Update(context.Background(), "cust-1", UpdateInput{
		FirstName: "Ann",
		Birthday:  "1990-04-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Salutation != "ms" || account.FirstName != "Ann" || account.Birthday != "1990-04-01" {
		t.Fatalf("unexpected account: %+v", account)
	}

	if client.lastUpdateID != "cust-1" || client.lastUpdate.Version != 3 {
		t.Fatalf("unexpected update target: id=%q version=%d", client.lastUpdateID, client.lastUpdate.Version)
	}
	actions := client.lastUpdate.Actions
	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %+v", actions)
	}
	if actions[0].Action != "setFirstName" || actions[0].FirstName != "Ann" {
		t.Fatalf("unexpected first action: %+v", actions[0])
	}
	if actions[1].Action != "setDateOfBirth" || actions[1].DateOfBirth != "1990-04-01" {
		t.Fatalf("unexpected second action: %+v", actions[1])
	}
}

func TestUpdateWithoutChangesReturnsCurrent(t *testing.T) {
	client := &stubClient{customer: &backend.Customer{ID: "cust-1", Version: 3, Email: "a@b.c"}}
	svc := New(client, nil)

	account, err := svc.Update(context.Background(), "cust-1", UpdateInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Email != "a@b.c" {
		t.Fatalf("unexpected account: %+v", account)
	}
	if client.lastUpdateID != "" {
		t.Fatalf("expected no update posted, got id %q", client.lastUpdateID)
	}
}

func TestChangePasswordUsesCurrentVersion(t *testing.T) {
	client := &stubClient{
		customer: &backend.Customer{ID: "cust-1", Version: 7},
		updated:  &backend.Customer{ID: "cust-1", Version: 8},
	}
	svc := New(client, nil)

	_, err := svc.ChangePassword(context.Background(), "cust-1", "old", "new")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	change := client.lastPasswordChange
	if change.ID != "cust-1" || change.Version != 7 {
		t.Fatalf("unexpected change target: %+v", change)
	}
	if change.CurrentPassword != "old" || change.NewPassword != "new" {
		t.Fatalf("unexpected passwords: %+v", change)
	}
}

func TestAddAddress(t *testing.T) {
	client := &stubClient{
		customer: &backend.Customer{ID: "cust-1", Version: 2},
		updated:  &backend.Customer{ID: "cust-1", Version: 3, Addresses: []backend.Address{{ID: "addr-1", City: "Berlin"}}},
	}
	svc := New(client, nil)

	account, err := svc.AddAddress(context.Background(), "cust-1", &domain.Address{City: "Berlin", Country: "DE"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(account.Addresses) != 1 || account.Addresses[0].City != "Berlin" {
		t.Fatalf("unexpected addresses: %+v", account.Addresses)
	}

	action := client.lastUpdate.Actions[0]
	if action.Action != "addAddress" || action.Address == nil || action.Address.City != "Berlin" {
		t.Fatalf("unexpected action: %+v", action)
	}
}

func TestUpdateAddress(t *testing.T) {
	client := &stubClient{
		customer: &backend.Customer{ID: "cust-1", Version: 2},
		updated:  &backend.Customer{ID: "cust-1", Version: 3},
	}
	svc := New(client, nil)

	_, err := svc.UpdateAddress(context.Background(), "cust-1", &domain.Address{AddressID: "addr-1", City: "Hamburg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	action := client.lastUpdate.Actions[0]
	if action.Action != "changeAddress" || action.AddressID != "addr-1" {
		t.Fatalf("unexpected action: %+v", action)
	}
	if action.Address == nil || action.Address.City != "Hamburg" {
		t.Fatalf("unexpected address payload: %+v", action.Address)
	}
}

func TestRemoveAddress(t *testing.T) {
	client := &stubClient{
		customer: &backend.Customer{ID: "cust-1", Version: 2},
		updated:  &backend.Customer{ID: "cust-1", Version: 3},
	}
	svc := New(client, nil)

	_, err := svc.RemoveAddress(context.Background(), "cust-1", "addr-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	action := client.lastUpdate.Actions[0]
	if action.Action != "removeAddress" || action.AddressID != "addr-1" {
		t.Fatalf("unexpected action: %+v", action)
	}
}

func TestSetDefaultAddresses(t *testing.T) {
	client := &stubClient{
		customer: &backend.Customer{ID: "cust-1", Version: 2},
		updated:  &backend.Customer{ID: "cust-1", Version: 3, DefaultShippingAddressID: "addr-1"},
	}
	svc := New(client, nil)

	account, err := svc.SetDefaultShippingAddress(context.Background(), "cust-1", "addr-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.DefaultShippingAddressID != "addr-1" {
		t.Fatalf("unexpected account: %+v", account)
	}
	if action := client.lastUpdate.Actions[0]; action.Action != "setDefaultShippingAddress" || action.AddressID != "addr-1" {
		t.Fatalf("unexpected action: %+v", action)
	}

	_, err = svc.SetDefaultBillingAddress(context.Background(), "cust-1", "addr-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action := client.lastUpdate.Actions[0]; action.Action != "setDefaultBillingAddress" || action.AddressID != "addr-1" {
		t.Fatalf("unexpected action: %+v", action)
	}
}

func TestUpdateVersionFetchFailure(t *testing.T) {
	client := &stubClient{getErr: errors.New("boom")}
	svc := New(client, nil)

	_, err := svc.Update(context.Background(), "cust-1", UpdateInput{FirstName: "Ann"})
	if err == nil || !errors.Is(err, client.getErr) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
}
