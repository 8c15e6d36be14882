package extension

import (
	"context"
	"errors"
	"net/http"

	"storefront-extensions/internal/domain"
	"storefront-extensions/internal/query"
)

func (r *Registry) getProduct(ctx context.Context, req Request) (Response, error) {
	q := query.ProductQuery{Limit: 1}
	if id := req.Query["id"]; id != "" {
		q.ProductIDs = []string{id}
	}
	if sku := req.Query["sku"]; sku != "" {
		q.SKUs = []string{sku}
	}

	product, err := r.products.GetProduct(ctx, req.Locale(r.locale), q)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Response{
				StatusCode:  http.StatusNotFound,
				Body:        `{"error":"product not found"}`,
				SessionData: req.SessionData,
			}, nil
		}
		return Response{}, err
	}
	return jsonResponse(req, product)
}

func (r *Registry) queryProducts(ctx context.Context, req Request) (Response, error) {
	q := query.FromParams(query.Params{Query: req.Query})
	result, err := r.products.Query(ctx, req.Locale(r.locale), q)
	if err != nil {
		return Response{}, err
	}
	return jsonResponse(req, result)
}

func (r *Registry) searchableAttributes(ctx context.Context, req Request) (Response, error) {
	fields, err := r.products.FilterFields(ctx, req.Locale(r.locale))
	if err != nil {
		return Response{}, err
	}
	return jsonResponse(req, fields)
}
