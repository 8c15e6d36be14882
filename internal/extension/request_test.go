package extension

import "testing"

func TestPagePathPrecedence(t *testing.T) {
	req := Request{
		Path:    "/fallback",
		Query:   map[string]string{"path": "/from-query"},
		Headers: map[string]string{"Commerce-Path": "/from-header"},
	}
	if got := req.PagePath(); got != "/from-query" {
		t.Fatalf("expected query path, got %q", got)
	}

	req.Query = nil
	if got := req.PagePath(); got != "/from-header" {
		t.Fatalf("expected header path, got %q", got)
	}

	req.Headers = nil
	if got := req.PagePath(); got != "/fallback" {
		t.Fatalf("expected request path, got %q", got)
	}
}

func TestWithSessionOverlayAndDelete(t *testing.T) {
	req := Request{SessionData: map[string]interface{}{
		"cartId": "cart-1",
		"other":  "keep",
	}}

	session := req.WithSession(map[string]interface{}{
		"cartId":     nil,
		"wishlistId": "wl-1",
	})

	if _, ok := session["cartId"]; ok {
		t.Fatalf("expected cartId removed, got %v", session)
	}
	if session["wishlistId"] != "wl-1" || session["other"] != "keep" {
		t.Fatalf("unexpected session: %v", session)
	}
	if req.SessionData["cartId"] != "cart-1" {
		t.Fatalf("original session must not be mutated")
	}
}

func TestSessionString(t *testing.T) {
	req := Request{SessionData: map[string]interface{}{"cartId": "cart-1", "count": 2}}

	if got := req.SessionString("cartId"); got != "cart-1" {
		t.Fatalf("unexpected value: %q", got)
	}
	if got := req.SessionString("count"); got != "" {
		t.Fatalf("expected empty for non-string, got %q", got)
	}
	if got := (Request{}).SessionString("cartId"); got != "" {
		t.Fatalf("expected empty for nil session, got %q", got)
	}
}
