package extension

import (
	"context"

	"storefront-extensions/internal/query"
)

// productListDataSource fetches a product result for a configured product
// list. Configuration values seed the query; request parameters override
// them so the storefront can page and refine the same list.
func (r *Registry) productListDataSource(ctx context.Context, config DataSourceConfig, req Request) (DataSourceResult, error) {
	q := query.FromParams(query.Params{
		Query:  req.Query,
		Config: config.Configuration,
	})

	result, err := r.products.Query(ctx, req.Locale(r.locale), q)
	if err != nil {
		return DataSourceResult{}, err
	}
	return DataSourceResult{DataSourcePayload: result}, nil
}
