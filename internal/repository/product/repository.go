package product

import (
	"context"

	"autoparts-storefront/internal/domain"
)

// ListParams filters a catalogue listing. Zero values mean "no filter".
type ListParams struct {
	CategoryID  string
	Sort        string
	InStockOnly bool
	Limit       int
}

// FitmentParams selects parts fitted to a vehicle model, optionally narrowed by year and category.
type FitmentParams struct {
	ModelID    string
	Year       int
	CategoryID string
}

type Repository interface {
	List(ctx context.Context, params ListParams) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	SearchOEM(ctx context.Context, query string, limit int) ([]domain.Product, error)
	ListByFitment(ctx context.Context, params FitmentParams) ([]domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}
