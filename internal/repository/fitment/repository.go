package fitment

import (
	"context"

	"autoparts-storefront/internal/domain"
)

// Repository stores the brand/model/year compatibility data.
type Repository interface {
	Brands(ctx context.Context) ([]domain.VehicleBrand, error)
	ModelsByBrand(ctx context.Context, brandID string) ([]domain.VehicleModel, error)
	GetModel(ctx context.Context, id string) (*domain.VehicleModel, error)
	CompatibleVehicles(ctx context.Context, productID string) ([]domain.CompatibleVehicle, error)
	UpsertBrand(ctx context.Context, name string) (*domain.VehicleBrand, error)
	UpsertModel(ctx context.Context, m domain.VehicleModel) (*domain.VehicleModel, error)
	LinkProduct(ctx context.Context, productID, modelID string, yearFrom, yearTo int) error
}
