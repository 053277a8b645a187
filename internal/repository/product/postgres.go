package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"autoparts-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectColumns = `p.id::text, p.oem, p.name, COALESCE(p.name_ar, ''), COALESCE(p.category_id::text, ''),
       COALESCE(p.base_price_cents, 0), p.images, p.stock, p.specifications, p.created_at`

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

func (r *postgresRepo) List(ctx context.Context, params ListParams) ([]domain.Product, error) {
	q := `
SELECT ` + selectColumns + `
FROM products p
WHERE ($1::text = '' OR p.category_id::text = $1)
  AND (NOT $2::bool OR p.stock > 0)
ORDER BY ` + orderBy(params.Sort)
	args := []any{params.CategoryID, params.InStockOnly}
	if params.Limit > 0 {
		q += "\nLIMIT $3"
		args = append(args, params.Limit)
	}

	result, err := r.query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: list category_id=%s sort=%s error=%v", params.CategoryID, params.Sort, err)
		return nil, err
	}
	r.logger.Printf("product repo: list category_id=%s sort=%s count=%d", params.CategoryID, params.Sort, len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + selectColumns + `
FROM products p
WHERE p.id::text = $1
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	r.logger.Printf("product repo: get id=%s oem=%s", id, p.OEM)
	return p, nil
}

// SearchOEM matches exact or prefix OEM numbers, alternate OEMs and names. Exact OEM hits sort first.
func (r *postgresRepo) SearchOEM(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	const q = `
SELECT ` + selectColumns + `
FROM products p
WHERE upper(p.oem) LIKE upper($3) || '%' ESCAPE '\'
   OR p.specifications->'alternativeOems' ? upper($1)
   OR p.name ILIKE '%' || $3 || '%' ESCAPE '\'
   OR p.name_ar ILIKE '%' || $3 || '%' ESCAPE '\'
ORDER BY (upper(p.oem) = upper($1)) DESC, p.name ASC
LIMIT $2
`
	result, err := r.query(ctx, q, query, limit, escapeLike(query))
	if err != nil {
		r.logger.Printf("product repo: search q=%q error=%v", query, err)
		return nil, err
	}
	r.logger.Printf("product repo: search q=%q count=%d", query, len(result))
	return result, nil
}

func (r *postgresRepo) ListByFitment(ctx context.Context, params FitmentParams) ([]domain.Product, error) {
	const q = `
SELECT ` + selectColumns + `
FROM products p
JOIN product_fitments f ON f.product_id = p.id
WHERE f.model_id::text = $1
  AND ($2::int = 0 OR $2::int BETWEEN f.year_from AND f.year_to)
  AND ($3::text = '' OR p.category_id::text = $3)
ORDER BY p.name ASC
`
	result, err := r.query(ctx, q, params.ModelID, params.Year, params.CategoryID)
	if err != nil {
		r.logger.Printf("product repo: fitment model_id=%s year=%d error=%v", params.ModelID, params.Year, err)
		return nil, err
	}
	r.logger.Printf("product repo: fitment model_id=%s year=%d category_id=%s count=%d", params.ModelID, params.Year, params.CategoryID, len(result))
	return result, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	images := product.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return nil, err
	}
	specJSON, err := json.Marshal(product.Specifications)
	if err != nil {
		return nil, err
	}

	const q = `
INSERT INTO products (oem, name, name_ar, category_id, base_price_cents, images, stock, specifications)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, '')::uuid, NULLIF($5::bigint, 0), $6::jsonb, $7, $8::jsonb)
ON CONFLICT (oem) DO UPDATE SET
    name = EXCLUDED.name,
    name_ar = EXCLUDED.name_ar,
    category_id = COALESCE(EXCLUDED.category_id, products.category_id),
    base_price_cents = EXCLUDED.base_price_cents,
    images = EXCLUDED.images,
    stock = EXCLUDED.stock,
    specifications = EXCLUDED.specifications
RETURNING id::text, created_at
`
	res := product
	err = r.pool.QueryRow(ctx, q,
		product.OEM,
		product.Name,
		product.NameAr,
		product.CategoryID,
		product.BasePriceCents,
		imagesJSON,
		product.Stock,
		specJSON,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: upsert oem=%s error=%v", product.OEM, err)
		return nil, fmt.Errorf("upsert product %s: %w", product.OEM, err)
	}
	res.Images = images
	r.logger.Printf("product repo: upserted oem=%s id=%s", res.OEM, res.ID)
	return &res, nil
}

func (r *postgresRepo) query(ctx context.Context, q string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p         domain.Product
		imagesRaw []byte
		specRaw   []byte
	)
	if err := row.Scan(&p.ID, &p.OEM, &p.Name, &p.NameAr, &p.CategoryID, &p.BasePriceCents, &imagesRaw, &p.Stock, &specRaw, &p.CreatedAt); err != nil {
		return nil, err
	}
	if len(imagesRaw) > 0 {
		if err := json.Unmarshal(imagesRaw, &p.Images); err != nil {
			return nil, fmt.Errorf("decode images for %s: %w", p.OEM, err)
		}
	}
	if len(specRaw) > 0 {
		if err := json.Unmarshal(specRaw, &p.Specifications); err != nil {
			return nil, fmt.Errorf("decode specifications for %s: %w", p.OEM, err)
		}
	}
	return &p, nil
}

func orderBy(sort string) string {
	switch sort {
	case domain.SortPriceAsc:
		return "p.base_price_cents ASC NULLS LAST, p.name ASC"
	case domain.SortPriceDesc:
		return "p.base_price_cents DESC NULLS LAST, p.name ASC"
	case domain.SortNewest:
		return "p.created_at DESC, p.name ASC"
	default:
		return "p.name ASC"
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user text match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
