package pricing

import (
	"context"

	"autoparts-storefront/internal/domain"
)

type Repository interface {
	GetRate(ctx context.Context, base, quote string) (*domain.ExchangeRate, error)
	UpsertRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error)
}
