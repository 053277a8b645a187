package pricing

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"autoparts-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) GetRate(ctx context.Context, base, quote string) (*domain.ExchangeRate, error) {
	const q = `
SELECT base, quote, rate::float8, markup::float8, updated_at
FROM exchange_rates
WHERE base = $1 AND quote = $2
`
	var rate domain.ExchangeRate
	err := r.pool.QueryRow(ctx, q, strings.ToUpper(base), strings.ToUpper(quote)).
		Scan(&rate.Base, &rate.Quote, &rate.Rate, &rate.Markup, &rate.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("pricing repo: rate %s/%s not found", base, quote)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("pricing repo: rate %s/%s error=%v", base, quote, err)
		return nil, err
	}
	return &rate, nil
}

func (r *postgresRepo) UpsertRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	if rate.Markup <= 0 {
		rate.Markup = 1
	}
	const q = `
INSERT INTO exchange_rates (base, quote, rate, markup, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (base, quote) DO UPDATE
SET rate = EXCLUDED.rate,
    markup = EXCLUDED.markup,
    updated_at = now()
RETURNING updated_at
`
	out := rate
	out.Base = strings.ToUpper(rate.Base)
	out.Quote = strings.ToUpper(rate.Quote)
	if err := r.pool.QueryRow(ctx, q, out.Base, out.Quote, out.Rate, out.Markup).Scan(&out.UpdatedAt); err != nil {
		r.logger.Printf("pricing repo: upsert %s/%s error=%v", out.Base, out.Quote, err)
		return nil, err
	}
	r.logger.Printf("pricing repo: upserted %s/%s rate=%.4f markup=%.4f", out.Base, out.Quote, out.Rate, out.Markup)
	return &out, nil
}
