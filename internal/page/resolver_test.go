package page

import (
	"context"
	"errors"
	"testing"

	"storefront-extensions/internal/extension"
	"storefront-extensions/internal/router"
)

type stubMatcher struct {
	identify bool
	match    *router.Match
	err      error

	identifyCalls int
	loadCalls     int
}

func (s *stubMatcher) Identify(_ extension.Request) bool {
	s.identifyCalls++
	return s.identify
}

func (s *stubMatcher) Load(_ context.Context, _ extension.Request) (*router.Match, error) {
	s.loadCalls++
	return s.match, s.err
}

func TestResolveFirstMatcherWins(t *testing.T) {
	first := &stubMatcher{identify: true, match: &router.Match{PageType: "commerce/product-detail-page"}}
	second := &stubMatcher{identify: true, match: &router.Match{PageType: "commerce/category-page"}}
	r := NewResolver(nil, first, second)

	resolution, err := r.Resolve(context.Background(), extension.Request{Path: "/x/p/SKU1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolution.DynamicPageType != "commerce/product-detail-page" {
		t.Fatalf("unexpected page type: %q", resolution.DynamicPageType)
	}
	if second.loadCalls != 0 {
		t.Fatalf("expected no load on later matchers")
	}
}

func TestResolveNoBacktracking(t *testing.T) {
	owner := &stubMatcher{identify: true, match: nil}
	fallback := &stubMatcher{identify: true, match: &router.Match{PageType: "commerce/category-page"}}
	r := NewResolver(nil, owner, fallback)

	resolution, err := r.Resolve(context.Background(), extension.Request{Path: "/x/p/missing"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolution != nil {
		t.Fatalf("expected unmatched resolution, got %+v", resolution)
	}
	if fallback.identifyCalls != 0 && fallback.loadCalls != 0 {
		t.Fatalf("expected owner to end the scan")
	}
}

func TestResolveRedirectOnCanonicalMismatch(t *testing.T) {
	matcher := &stubMatcher{identify: true, match: &router.Match{
		PageType:      "commerce/product-detail-page",
		CanonicalPath: "/red-shoes/p/SKU1",
	}}
	r := NewResolver(nil, matcher)

	resolution, err := r.Resolve(context.Background(), extension.Request{Path: "/redshoes/p/SKU1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolution.StatusCode != 301 || resolution.RedirectLocation != "/red-shoes/p/SKU1" {
		t.Fatalf("unexpected resolution: %+v", resolution)
	}
	if resolution.DynamicPageType != "" {
		t.Fatalf("redirect must not carry a page type")
	}
}

func TestResolveCanonicalMatchIsSuccess(t *testing.T) {
	matcher := &stubMatcher{identify: true, match: &router.Match{
		PageType:      "commerce/product-detail-page",
		Data:          map[string]interface{}{"product": "p"},
		CanonicalPath: "/red-shoes/p/SKU1",
	}}
	r := NewResolver(nil, matcher)

	resolution, err := r.Resolve(context.Background(), extension.Request{Path: "/red-shoes/p/SKU1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolution.StatusCode != 0 || resolution.DynamicPageType != "commerce/product-detail-page" {
		t.Fatalf("unexpected resolution: %+v", resolution)
	}
	if resolution.DataSourcePayload == nil {
		t.Fatalf("expected data payload")
	}
}

func TestResolveUnmatched(t *testing.T) {
	r := NewResolver(nil, &stubMatcher{identify: false})

	resolution, err := r.Resolve(context.Background(), extension.Request{Path: "/unknown"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolution != nil {
		t.Fatalf("expected nil resolution, got %+v", resolution)
	}
}

func TestResolvePropagatesLoadError(t *testing.T) {
	boom := errors.New("backend down")
	r := NewResolver(nil, &stubMatcher{identify: true, err: boom})

	_, err := r.Resolve(context.Background(), extension.Request{Path: "/shoes"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}
}
