package category

import (
	"context"
	"errors"
	"io"
	"log"

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

// List returns every category with the number of parts filed under it.
func (r *postgresRepo) List(ctx context.Context) ([]domain.Category, error) {
	const q = `
SELECT c.id::text, c.key, c.name, COALESCE(c.name_ar, ''), COALESCE(c.icon, ''), COUNT(p.id), c.created_at
FROM categories c
LEFT JOIN products p ON p.category_id = c.id
GROUP BY c.id
ORDER BY c.name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("category repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Key, &c.Name, &c.NameAr, &c.Icon, &c.ProductCount, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.logger.Printf("category repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) GetByKey(ctx context.Context, key string) (*domain.Category, error) {
	const q = `
SELECT id::text, key, name, COALESCE(name_ar, ''), COALESCE(icon, ''), created_at
FROM categories
WHERE key = $1
`
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, key).Scan(&c.ID, &c.Key, &c.Name, &c.NameAr, &c.Icon, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("category repo: get key=%s error=%v", key, err)
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO categories (key, name, name_ar, icon)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
ON CONFLICT (key) DO UPDATE
SET name = EXCLUDED.name,
    name_ar = COALESCE(EXCLUDED.name_ar, categories.name_ar),
    icon = COALESCE(EXCLUDED.icon, categories.icon)
RETURNING id::text, COALESCE(name_ar, ''), COALESCE(icon, ''), created_at
`
	out := c
	err := r.pool.QueryRow(ctx, q, c.Key, c.Name, c.NameAr, c.Icon).Scan(&out.ID, &out.NameAr, &out.Icon, &out.CreatedAt)
	if err != nil {
		r.logger.Printf("category repo: upsert key=%s error=%v", c.Key, err)
		return nil, err
	}
	r.logger.Printf("category repo: upserted key=%s id=%s", out.Key, out.ID)
	return &out, nil
}
