package backend

import "context"

// CreatePayment registers a payment object with the backend.
func (c *Client) CreatePayment(ctx context.Context, draft PaymentDraft) (*Payment, error) {
	var out Payment
	if err := c.post(ctx, "/payments", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePaymentByKey applies update actions to the payment with the given
// key.
func (c *Client) UpdatePaymentByKey(ctx context.Context, key string, update Update) (*Payment, error) {
	var out Payment
	if err := c.post(ctx, "/payments/key="+key, nil, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
