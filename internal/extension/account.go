package extension

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"storefront-extensions/internal/domain"
	"storefront-extensions/internal/service/account"
)

// accountSession is the shape the session bag keeps for a logged-in
// customer. Only the id is authoritative; the rest saves a round trip.
func accountSession(a *domain.Account) map[string]interface{} {
	return map[string]interface{}{
		"accountId": a.AccountID,
		"email":     a.Email,
		"firstName": a.FirstName,
		"lastName":  a.LastName,
	}
}

// requireAccount resolves the logged-in account id from the session. The
// denied response is non-nil when no customer is logged in.
func (r *Registry) requireAccount(req Request) (string, *Response) {
	accountID := sessionAccountID(req)
	if accountID == "" {
		return "", &Response{
			StatusCode:  http.StatusUnauthorized,
			Body:        `{"error":"not logged in"}`,
			SessionData: req.SessionData,
		}
	}
	return accountID, nil
}

// accountResponse renders the account and refreshes the session copy.
func (r *Registry) accountResponse(req Request, a *domain.Account) (Response, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return Response{}, err
	}
	return Response{
		StatusCode: http.StatusOK,
		Body:       string(payload),
		SessionData: req.WithSession(map[string]interface{}{
			"account": accountSession(a),
		}),
	}, nil
}

func (r *Registry) getAccount(ctx context.Context, req Request) (Response, error) {
	session, ok := req.SessionData["account"].(map[string]interface{})
	if !ok {
		return Response{
			StatusCode:  http.StatusOK,
			Body:        `{"loggedIn":false}`,
			SessionData: req.SessionData,
		}, nil
	}
	body, err := json.Marshal(map[string]interface{}{
		"loggedIn": true,
		"account":  session,
	})
	if err != nil {
		return Response{}, err
	}
	return Response{
		StatusCode:  http.StatusOK,
		Body:        string(body),
		SessionData: req.SessionData,
	}, nil
}

func (r *Registry) login(ctx context.Context, req Request) (Response, error) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}

	loggedIn, err := r.accounts.Login(ctx, body.Email, body.Password)
	if err != nil {
		// Only a backend credential rejection answers 401. Outages and
		// other failures surface to the host as errors.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return Response{
				StatusCode:  http.StatusUnauthorized,
				Body:        `{"error":"invalid credentials"}`,
				SessionData: req.SessionData,
			}, nil
		}
		return Response{}, err
	}

	payload, err := json.Marshal(loggedIn)
	if err != nil {
		return Response{}, err
	}
	return Response{
		StatusCode: http.StatusOK,
		Body:       string(payload),
		SessionData: req.WithSession(map[string]interface{}{
			"account": accountSession(loggedIn),
			// An account cart replaces whatever anonymous cart was pinned.
			"cartId": nil,
		}),
	}, nil
}

func (r *Registry) logout(ctx context.Context, req Request) (Response, error) {
	return Response{
		StatusCode: http.StatusOK,
		Body:       `{"loggedIn":false}`,
		SessionData: req.WithSession(map[string]interface{}{
			"account": nil,
			"cartId":  nil,
		}),
	}, nil
}

func (r *Registry) register(ctx context.Context, req Request) (Response, error) {
	var body struct {
		Email           string          `json:"email"`
		Password        string          `json:"password"`
		Salutation      string          `json:"salutation"`
		FirstName       string          `json:"firstName"`
		LastName        string          `json:"lastName"`
		Birthday        string          `json:"birthday"`
		BillingAddress  *domain.Address `json:"billingAddress"`
		ShippingAddress *domain.Address `json:"shippingAddress"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}

	registered, err := r.accounts.Register(ctx, account.RegisterInput{
		Email:           body.Email,
		Password:        body.Password,
		Salutation:      body.Salutation,
		FirstName:       body.FirstName,
		LastName:        body.LastName,
		Birthday:        body.Birthday,
		BillingAddress:  body.BillingAddress,
		ShippingAddress: body.ShippingAddress,
		AnonymousCartID: req.SessionString("cartId"),
	})
	if err != nil {
		return Response{}, err
	}

	payload, err := json.Marshal(registered)
	if err != nil {
		return Response{}, err
	}
	return Response{
		StatusCode: http.StatusOK,
		Body:       string(payload),
		SessionData: req.WithSession(map[string]interface{}{
			"account": accountSession(registered),
			"cartId":  nil,
		}),
	}, nil
}

func (r *Registry) updateAccount(ctx context.Context, req Request) (Response, error) {
	accountID, denied := r.requireAccount(req)
	if denied != nil {
		return *denied, nil
	}
	var body struct {
		Salutation string `json:"salutation"`
		FirstName  string `json:"firstName"`
		LastName   string `json:"lastName"`
		Birthday   string `json:"birthday"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}

	updated, err := r.accounts.Update(ctx, accountID, account.UpdateInput{
		Salutation: body.Salutation,
		FirstName:  body.FirstName,
		LastName:   body.LastName,
		Birthday:   body.Birthday,
	})
	if err != nil {
		return Response{}, err
	}
	return r.accountResponse(req, updated)
}

func (r *Registry) changePassword(ctx context.Context, req Request) (Response, error) {
	accountID, denied := r.requireAccount(req)
	if denied != nil {
		return *denied, nil
	}
	var body struct {
		Password    string `json:"password"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}

	updated, err := r.accounts.ChangePassword(ctx, accountID, body.Password, body.NewPassword)
	if err != nil {
		return Response{}, err
	}
	return r.accountResponse(req, updated)
}

func (r *Registry) addAddress(ctx context.Context, req Request) (Response, error) {
	accountID, denied := r.requireAccount(req)
	if denied != nil {
		return *denied, nil
	}
	var body struct {
		Address domain.Address `json:"address"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}

	updated, err := r.accounts.AddAddress(ctx, accountID, &body.Address)
	if err != nil {
		return Response{}, err
	}
	return r.accountResponse(req, updated)
}

func (r *Registry) updateAddress(ctx context.Context, req Request) (Response, error) {
	accountID, denied := r.requireAccount(req)
	if denied != nil {
		return *denied, nil
	}
	var body struct {
		Address domain.Address `json:"address"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}

	updated, err := r.accounts.UpdateAddress(ctx, accountID, &body.Address)
	if err != nil {
		return Response{}, err
	}
	return r.accountResponse(req, updated)
}

func (r *Registry) removeAddress(ctx context.Context, req Request) (Response, error) {
	accountID, denied := r.requireAccount(req)
	if denied != nil {
		return *denied, nil
	}
	var body struct {
		Address domain.Address `json:"address"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}

	updated, err := r.accounts.RemoveAddress(ctx, accountID, body.Address.AddressID)
	if err != nil {
		return Response{}, err
	}
	return r.accountResponse(req, updated)
}

func (r *Registry) setDefaultBillingAddress(ctx context.Context, req Request) (Response, error) {
	accountID, denied := r.requireAccount(req)
	if denied != nil {
		return *denied, nil
	}
	var body struct {
		Address domain.Address `json:"address"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}

	updated, err := r.accounts.SetDefaultBillingAddress(ctx, accountID, body.Address.AddressID)
	if err != nil {
		return Response{}, err
	}
	return r.accountResponse(req, updated)
}

func (r *Registry) setDefaultShippingAddress(ctx context.Context, req Request) (Response, error) {
	accountID, denied := r.requireAccount(req)
	if denied != nil {
		return *denied, nil
	}
	var body struct {
		Address domain.Address `json:"address"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Response{}, err
	}

	updated, err := r.accounts.SetDefaultShippingAddress(ctx, accountID, body.Address.AddressID)
	if err != nil {
		return Response{}, err
	}
	return r.accountResponse(req, updated)
}
