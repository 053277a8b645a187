package product

import (
	"context"
	"strings"

	"autoparts-storefront/internal/domain"
	productrepo "autoparts-storefront/internal/repository/product"
)

const defaultSearchLimit = 50

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List falls back to name ordering for unknown sort values.
func (s *Service) List(ctx context.Context, params productrepo.ListParams) ([]domain.Product, error) {
	if !domain.ValidSort(params.Sort) {
		params.Sort = domain.SortNameAsc
	}
	return s.repo.List(ctx, params)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) SearchOEM(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Product{}, nil
	}
	return s.repo.SearchOEM(ctx, query, defaultSearchLimit)
}

func (s *Service) ByFitment(ctx context.Context, params productrepo.FitmentParams) ([]domain.Product, error) {
	return s.repo.ListByFitment(ctx, params)
}

func (s *Service) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	return s.repo.Upsert(ctx, p)
}
