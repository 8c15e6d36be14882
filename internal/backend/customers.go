package backend

import "context"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a customer against the backend. Credential checks and
// account state live entirely on the backend side.
func (c *Client) Login(ctx context.Context, email, password string) (*CustomerSignInResult, error) {
	var out CustomerSignInResult
	if err := c.post(ctx, "/login", nil, loginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCustomer registers a new customer.
func (c *Client) CreateCustomer(ctx context.Context, draft CustomerDraft) (*CustomerSignInResult, error) {
	var out CustomerSignInResult
	if err := c.post(ctx, "/customers", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCustomerByID fetches one customer.
func (c *Client) GetCustomerByID(ctx context.Context, id string) (*Customer, error) {
	var out Customer
	if err := c.get(ctx, "/customers/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCustomer posts update actions against the customer's current version.
func (c *Client) UpdateCustomer(ctx context.Context, id string, update Update) (*Customer, error) {
	var out Customer
	if err := c.post(ctx, "/customers/"+id, nil, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PasswordChange is the payload of the dedicated password endpoint. The
// backend verifies the current password itself.
type PasswordChange struct {
	ID              string `json:"id"`
	Version         int    `json:"version"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangeCustomerPassword replaces the customer's password.
func (c *Client) ChangeCustomerPassword(ctx context.Context, change PasswordChange) (*Customer, error) {
	var out Customer
	if err := c.post(ctx, "/customers/password", nil, change, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
