package listing

import (
	"context"

	"rentwise/internal/models/response_models"
)

// Engine produces one page of the building listing.
type Engine interface {
	List(ctx context.Context, params Params) (response_models.PaginatedBuildings, error)
}

// AggregateSource returns every building matching the filter joined with its aggregates,
// computed in one grouped query.
type AggregateSource interface {
	FindWithRatings(ctx context.Context, filter Filter) ([]response_models.BuildingWithRatings, error)
}

// PagedSource sorts and slices on the database side.
type PagedSource interface {
	PageWithRatings(ctx context.Context, params Params) ([]response_models.BuildingWithRatings, int64, error)
}

// MemoryEngine materialises the filtered, aggregated set then sorts and slices it in process.
type MemoryEngine struct {
	source AggregateSource
}

func NewMemoryEngine(source AggregateSource) *MemoryEngine {
	return &MemoryEngine{source: source}
}

func (e *MemoryEngine) List(ctx context.Context, params Params) (response_models.PaginatedBuildings, error) {
	rows, err := e.source.FindWithRatings(ctx, params.Filter)
	if err != nil {
		return response_models.PaginatedBuildings{}, err
	}
	Sort(rows, params.SortBy)
	return Paginate(rows, params.Limit, params.Offset), nil
}

// SQLEngine pushes ORDER BY / LIMIT / OFFSET down to the store.
type SQLEngine struct {
	source PagedSource
}

func NewSQLEngine(source PagedSource) *SQLEngine {
	return &SQLEngine{source: source}
}

func (e *SQLEngine) List(ctx context.Context, params Params) (response_models.PaginatedBuildings, error) {
	rows, total, err := e.source.PageWithRatings(ctx, params)
	if err != nil {
		return response_models.PaginatedBuildings{}, err
	}
	if rows == nil {
		rows = []response_models.BuildingWithRatings{}
	}
	return response_models.PaginatedBuildings{
		Buildings: rows,
		Total:     total,
		HasMore:   hasMore(params.Offset, params.Limit, total),
	}, nil
}
