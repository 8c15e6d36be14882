package backend

import (
	"context"
	"net/url"
)

func expandValues(expand []string) url.Values {
	v := url.Values{}
	for _, e := range expand {
		v.Add("expand", e)
	}
	return v
}

// GetShoppingListByID fetches one shopping list.
func (c *Client) GetShoppingListByID(ctx context.Context, id string, expand []string) (*ShoppingList, error) {
	var out ShoppingList
	if err := c.get(ctx, "/shopping-lists/"+id, expandValues(expand), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateShoppingList creates a shopping list from a draft.
func (c *Client) CreateShoppingList(ctx context.Context, draft ShoppingListDraft, expand []string) (*ShoppingList, error) {
	var out ShoppingList
	if err := c.post(ctx, "/shopping-lists", expandValues(expand), draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateShoppingList applies update actions against the list's current
// version.
func (c *Client) UpdateShoppingList(ctx context.Context, id string, update Update, expand []string) (*ShoppingList, error) {
	var out ShoppingList
	if err := c.post(ctx, "/shopping-lists/"+id, expandValues(expand), update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
