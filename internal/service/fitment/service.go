package fitment

import (
	"context"

	"autoparts-storefront/internal/domain"
	fitmentrepo "autoparts-storefront/internal/repository/fitment"
)

type Service struct {
	repo fitmentrepo.Repository
}

func New(repo fitmentrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Brands(ctx context.Context) ([]domain.VehicleBrand, error) {
	return s.repo.Brands(ctx)
}

func (s *Service) Models(ctx context.Context, brandID string) ([]domain.VehicleModel, error) {
	return s.repo.ModelsByBrand(ctx, brandID)
}

func (s *Service) Model(ctx context.Context, id string) (*domain.VehicleModel, error) {
	return s.repo.GetModel(ctx, id)
}

func (s *Service) CompatibleVehicles(ctx context.Context, productID string) ([]domain.CompatibleVehicle, error) {
	return s.repo.CompatibleVehicles(ctx, productID)
}
