// Package product queries the backend product catalog and returns mapped
// storefront records.
package product

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"storefront-extensions/internal/backend"
	"storefront-extensions/internal/domain"
	"storefront-extensions/internal/locale"
	"storefront-extensions/internal/mapper"
	"storefront-extensions/internal/query"
)

type backendClient interface {
	SearchProductProjections(ctx context.Context, args backend.ProductSearchArgs) (*backend.ProductProjectionPagedSearchResponse, error)
	QueryCategories(ctx context.Context, args backend.CategoryQueryArgs) (*backend.CategoryPagedQueryResponse, error)
	QueryProductTypes(ctx context.Context) (*backend.ProductTypePagedQueryResponse, error)
}

// Service runs catalog queries for one backend project.
type Service struct {
	client backendClient
	logger *log.Logger
}

func New(client backendClient, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{client: client, logger: logger}
}

// Query searches the catalog. Identifier filters (ids, skus, category) and
// the free-text term are combined; the locale scopes prices and the text
// language.
func (s *Service) Query(ctx context.Context, loc locale.Locale, q query.ProductQuery) (*domain.Result, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = query.DefaultLimit
	}
	offset := query.ParseCursor(q.Cursor)

	args := backend.ProductSearchArgs{
		Limit:         limit,
		Offset:        offset,
		FilterQuery:   filterQueries(q),
		Text:          q.Query,
		TextLanguage:  loc.Language,
		PriceCurrency: loc.Currency,
		PriceCountry:  loc.Country,
	}

	response, err := s.client.SearchProductProjections(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	items := make([]domain.Product, 0, len(response.Results))
	for _, projection := range response.Results {
		items = append(items, mapper.ProductFromProjection(projection, loc))
	}

	result := &domain.Result{
		Total: response.Total,
		Count: response.Count,
		Items: items,
		Query: q,
	}
	if response.Offset > 0 {
		prev := response.Offset - limit
		if prev < 0 {
			prev = 0
		}
		result.PreviousCursor = query.Cursor(prev)
	}
	if response.Offset+response.Count < response.Total {
		result.NextCursor = query.Cursor(response.Offset + response.Count)
	}

	s.logger.Printf("product service: query text=%q filters=%d count=%d total=%d", q.Query, len(args.FilterQuery), result.Count, result.Total)
	return result, nil
}

// GetProduct returns the first product matching the query, or
// domain.ErrNotFound when the backend yields nothing.
func (s *Service) GetProduct(ctx context.Context, loc locale.Locale, q query.ProductQuery) (*domain.Product, error) {
	q.Limit = 1
	result, err := s.Query(ctx, loc, q)
	if err != nil {
		return nil, fmt.Errorf("getProduct failed: %w", err)
	}
	if len(result.Items) == 0 {
		return nil, domain.ErrNotFound
	}
	return &result.Items[0], nil
}

// QueryCategoryBySlug resolves a category by its localized slug.
func (s *Service) QueryCategoryBySlug(ctx context.Context, loc locale.Locale, slug string) (*domain.Category, error) {
	response, err := s.client.QueryCategories(ctx, backend.CategoryQueryArgs{
		Where: []string{fmt.Sprintf("slug(%s=%q)", loc.Language, slug)},
		Limit: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("queryCategories failed: %w", err)
	}
	if len(response.Results) == 0 {
		return nil, domain.ErrNotFound
	}

	c := response.Results[0]
	return &domain.Category{
		CategoryID: c.ID,
		Name:       c.Name[loc.Language],
		Slug:       c.Slug[loc.Language],
	}, nil
}

// FilterFields derives the searchable-attribute descriptors from the
// project's product types.
func (s *Service) FilterFields(ctx context.Context, loc locale.Locale) ([]domain.FilterField, error) {
	response, err := s.client.QueryProductTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("queryProductTypes failed: %w", err)
	}
	return mapper.FilterFieldsFromProductTypes(response.Results, loc), nil
}

func filterQueries(q query.ProductQuery) []string {
	var filters []string
	if len(q.ProductIDs) > 0 {
		filters = append(filters, `id:"`+strings.Join(q.ProductIDs, `","`)+`"`)
	}
	if len(q.SKUs) > 0 {
		filters = append(filters, `variants.sku:"`+strings.Join(q.SKUs, `","`)+`"`)
	}
	if q.Category != "" {
		filters = append(filters, fmt.Sprintf(`categories.id:subtree("%s")`, q.Category))
	}
	filters = append(filters, q.Filters...)
	return filters
}
