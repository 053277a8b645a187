package pricing

import (
	"context"
	"fmt"

	"autoparts-storefront/internal/domain"
	pricingrepo "autoparts-storefront/internal/repository/pricing"
)

const (
	BaseCurrency    = "USD"
	DisplayCurrency = "EGP"
)

type Service struct {
	repo pricingrepo.Repository
}

func New(repo pricingrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Rate returns the effective USD to EGP multiplier, markup included.
func (s *Service) Rate(ctx context.Context) (float64, error) {
	rate, err := s.repo.GetRate(ctx, BaseCurrency, DisplayCurrency)
	if err != nil {
		return 0, err
	}
	eff := rate.Effective()
	if eff <= 0 {
		return 0, fmt.Errorf("%w: non-positive exchange rate %v", domain.ErrInvalidInput, eff)
	}
	return eff, nil
}

func (s *Service) SetRate(ctx context.Context, rate, markup float64) (*domain.ExchangeRate, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: exchange rate must be positive", domain.ErrInvalidInput)
	}
	return s.repo.UpsertRate(ctx, domain.ExchangeRate{Base: BaseCurrency, Quote: DisplayCurrency, Rate: rate, Markup: markup})
}
