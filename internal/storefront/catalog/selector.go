package catalog

import (
	"context"

	"autoparts-storefront/internal/domain"
)

func (s *Service) Brands(ctx context.Context) ([]domain.VehicleBrand, error) {
	return s.client.Fitment().Brands(ctx)
}

func (s *Service) Models(ctx context.Context, brandID string) ([]domain.VehicleModel, error) {
	return s.client.Fitment().Models(ctx, brandID)
}

// Years lists a model's production years, newest first.
func (s *Service) Years(ctx context.Context, modelID string) ([]int, error) {
	m, err := s.client.Fitment().Model(ctx, modelID)
	if err != nil {
		return nil, err
	}
	return s.client.Fitment().Years(*m), nil
}
