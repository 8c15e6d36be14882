package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(context.Background(), Config{
		APIURL:     server.URL,
		ProjectKey: "test-project",
		HTTPClient: server.Client(),
	}, nil)
	return client, server
}

func TestSearchProductProjectionsQuery(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test-project/product-projections/search" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("limit") != "25" || q.Get("offset") != "50" {
			t.Fatalf("unexpected paging: %v", q)
		}
		if q.Get("text.en") != "shoe" {
			t.Fatalf("unexpected text param: %v", q)
		}
		if q.Get("priceCurrency") != "EUR" || q.Get("priceCountry") != "GB" {
			t.Fatalf("unexpected price scope: %v", q)
		}
		if got := q["filter.query"]; len(got) != 2 || got[0] != `variants.sku:"SKU1"` {
			t.Fatalf("unexpected filter queries: %v", got)
		}
		json.NewEncoder(w).Encode(ProductProjectionPagedSearchResponse{Count: 1, Total: 1})
	})

	resp, err := client.SearchProductProjections(context.Background(), ProductSearchArgs{
		Limit:         25,
		Offset:        50,
		Text:          "shoe",
		TextLanguage:  "en",
		PriceCurrency: "EUR",
		PriceCountry:  "GB",
		FilterQuery:   []string{`variants.sku:"SKU1"`, `categories.id:subtree("cat-1")`},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "cart gone"})
	})

	_, err := client.GetCartByID(context.Background(), "missing", nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsNotFound(err) {
		t.Fatalf("expected 404 detection, got %v", err)
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Message != "cart gone" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestUpdateCartPostsActions(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/test-project/carts/cart-1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query()["expand"]; len(got) != 1 || got[0] != "paymentInfo.payments[*]" {
			t.Fatalf("unexpected expand: %v", got)
		}

		var update Update
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if update.Version != 2 || len(update.Actions) != 1 || update.Actions[0].Action != "addLineItem" {
			t.Fatalf("unexpected update: %+v", update)
		}
		json.NewEncoder(w).Encode(Cart{ID: "cart-1", Version: 3})
	})

	cart, err := client.UpdateCart(context.Background(), "cart-1", Update{
		Version: 2,
		Actions: []UpdateAction{{Action: "addLineItem", SKU: "SKU1", Quantity: 1}},
	}, []string{"paymentInfo.payments[*]"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Version != 3 {
		t.Fatalf("unexpected cart: %+v", cart)
	}
}

func TestUpdatePaymentByKeyPath(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test-project/payments/key=key-1" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(Payment{ID: "pay-1", Version: 2})
	})

	payment, err := client.UpdatePaymentByKey(context.Background(), "key-1", Update{Version: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.Version != 2 {
		t.Fatalf("unexpected payment: %+v", payment)
	}
}

func TestLoginPostsCredentials(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/test-project/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["email"] != "a@b.c" || body["password"] != "secret" {
			t.Fatalf("unexpected body: %v", body)
		}
		json.NewEncoder(w).Encode(CustomerSignInResult{Customer: Customer{ID: "cust-1", Email: "a@b.c"}})
	})

	result, err := client.Login(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Customer.ID != "cust-1" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestUpdateCustomerPostsActions(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/test-project/customers/cust-1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var update Update
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if update.Version != 3 || len(update.Actions) != 1 || update.Actions[0].Action != "setFirstName" {
			t.Fatalf("unexpected update: %+v", update)
		}
		json.NewEncoder(w).Encode(Customer{ID: "cust-1", Version: 4})
	})

	customer, err := client.UpdateCustomer(context.Background(), "cust-1", Update{
		Version: 3,
		Actions: []UpdateAction{{Action: "setFirstName", FirstName: "Ann"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customer.Version != 4 {
		t.Fatalf("unexpected customer: %+v", customer)
	}
}

func TestChangeCustomerPasswordPath(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/test-project/customers/password" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var change PasswordChange
		if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if change.ID != "cust-1" || change.Version != 3 || change.CurrentPassword != "old" || change.NewPassword != "new" {
			t.Fatalf("unexpected payload: %+v", change)
		}
		json.NewEncoder(w).Encode(Customer{ID: "cust-1", Version: 4})
	})

	customer, err := client.ChangeCustomerPassword(context.Background(), PasswordChange{
		ID:              "cust-1",
		Version:         3,
		CurrentPassword: "old",
		NewPassword:     "new",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customer.Version != 4 {
		t.Fatalf("unexpected customer: %+v", customer)
	}
}
