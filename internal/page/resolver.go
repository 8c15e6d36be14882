// Package page resolves a storefront path to a page: the first matcher
// that identifies the path owns the request, loads its data and produces
// the resolution the host renders from.
package page

import (
	"context"
	"io"
	"log"
	"net/http"

	"storefront-extensions/internal/extension"
	"storefront-extensions/internal/router"
)

// Matcher is one page family: a pure path test and a data load.
type Matcher interface {
	Identify(req extension.Request) bool
	Load(ctx context.Context, req extension.Request) (*router.Match, error)
}

// Resolution is the host-facing outcome of resolving a path. A page hit
// carries the page type and payloads; a redirect carries the status code
// and location. An unmatched path resolves to a nil *Resolution.
type Resolution struct {
	DynamicPageType     string      `json:"dynamicPageType,omitempty"`
	DataSourcePayload   interface{} `json:"dataSourcePayload,omitempty"`
	PageMatchingPayload interface{} `json:"pageMatchingPayload,omitempty"`
	StatusCode          int         `json:"statusCode,omitempty"`
	RedirectLocation    string      `json:"redirectLocation,omitempty"`
}

// Resolver scans its matchers in a fixed order. The first matcher whose
// Identify returns true owns the request; there is no backtracking when
// its load comes up empty.
type Resolver struct {
	matchers []Matcher
	logger   *log.Logger
}

func NewResolver(logger *log.Logger, matchers ...Matcher) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Resolver{matchers: matchers, logger: logger}
}

func (r *Resolver) Resolve(ctx context.Context, req extension.Request) (*Resolution, error) {
	path := req.PagePath()

	for _, matcher := range r.matchers {
		if !matcher.Identify(req) {
			continue
		}

		match, err := matcher.Load(ctx, req)
		if err != nil {
			return nil, err
		}
		if match == nil {
			r.logger.Printf("page resolver: unmatched path=%s", path)
			return nil, nil
		}

		if match.CanonicalPath != "" && match.CanonicalPath != path {
			r.logger.Printf("page resolver: redirect path=%s location=%s", path, match.CanonicalPath)
			return &Resolution{
				StatusCode:       http.StatusMovedPermanently,
				RedirectLocation: match.CanonicalPath,
			}, nil
		}

		r.logger.Printf("page resolver: matched path=%s pageType=%s", path, match.PageType)
		return &Resolution{
			DynamicPageType:     match.PageType,
			DataSourcePayload:   match.Data,
			PageMatchingPayload: match.Matching,
		}, nil
	}

	r.logger.Printf("page resolver: unmatched path=%s", path)
	return nil, nil
}
