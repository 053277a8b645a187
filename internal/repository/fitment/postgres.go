package fitment

import (
	"context"
	"errors"
	"fmt"
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

func (r *postgresRepo) Brands(ctx context.Context) ([]domain.VehicleBrand, error) {
	rows, err := r.pool.Query(ctx, `SELECT id::text, name FROM vehicle_brands ORDER BY name ASC`)
	if err != nil {
		r.logger.Printf("fitment repo: brands error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.VehicleBrand
	for rows.Next() {
		var b domain.VehicleBrand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) ModelsByBrand(ctx context.Context, brandID string) ([]domain.VehicleModel, error) {
	const q = `
SELECT m.id::text, m.brand_id::text, b.name, m.name, m.chassis, m.year_from, m.year_to
FROM vehicle_models m
JOIN vehicle_brands b ON b.id = m.brand_id
WHERE m.brand_id::text = $1
ORDER BY m.name ASC, m.year_from DESC
`
	rows, err := r.pool.Query(ctx, q, brandID)
	if err != nil {
		r.logger.Printf("fitment repo: models brand_id=%s error=%v", brandID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.VehicleModel
	for rows.Next() {
		var m domain.VehicleModel
		if err := rows.Scan(&m.ID, &m.BrandID, &m.BrandName, &m.Name, &m.Chassis, &m.YearFrom, &m.YearTo); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.logger.Printf("fitment repo: models brand_id=%s count=%d", brandID, len(result))
	return result, nil
}

func (r *postgresRepo) GetModel(ctx context.Context, id string) (*domain.VehicleModel, error) {
	const q = `
SELECT m.id::text, m.brand_id::text, b.name, m.name, m.chassis, m.year_from, m.year_to
FROM vehicle_models m
JOIN vehicle_brands b ON b.id = m.brand_id
WHERE m.id::text = $1
`
	var m domain.VehicleModel
	err := r.pool.QueryRow(ctx, q, id).Scan(&m.ID, &m.BrandID, &m.BrandName, &m.Name, &m.Chassis, &m.YearFrom, &m.YearTo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("fitment repo: get model id=%s error=%v", id, err)
		return nil, err
	}
	return &m, nil
}

func (r *postgresRepo) CompatibleVehicles(ctx context.Context, productID string) ([]domain.CompatibleVehicle, error) {
	const q = `
SELECT b.name, m.name, m.chassis, f.year_from, f.year_to
FROM product_fitments f
JOIN vehicle_models m ON m.id = f.model_id
JOIN vehicle_brands b ON b.id = m.brand_id
WHERE f.product_id::text = $1
ORDER BY b.name ASC, m.name ASC, f.year_from ASC
`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		r.logger.Printf("fitment repo: vehicles product_id=%s error=%v", productID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.CompatibleVehicle
	for rows.Next() {
		var v domain.CompatibleVehicle
		if err := rows.Scan(&v.Brand, &v.Model, &v.Chassis, &v.YearFrom, &v.YearTo); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) UpsertBrand(ctx context.Context, name string) (*domain.VehicleBrand, error) {
	const q = `
INSERT INTO vehicle_brands (name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text, name
`
	var b domain.VehicleBrand
	if err := r.pool.QueryRow(ctx, q, name).Scan(&b.ID, &b.Name); err != nil {
		r.logger.Printf("fitment repo: upsert brand name=%s error=%v", name, err)
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepo) UpsertModel(ctx context.Context, m domain.VehicleModel) (*domain.VehicleModel, error) {
	if m.YearTo < m.YearFrom {
		return nil, fmt.Errorf("%w: model %s year range %d-%d", domain.ErrInvalidInput, m.Name, m.YearFrom, m.YearTo)
	}
	const q = `
INSERT INTO vehicle_models (brand_id, name, chassis, year_from, year_to)
VALUES ($1::uuid, $2, $3, $4, $5)
ON CONFLICT (brand_id, name, chassis) DO UPDATE
SET year_from = LEAST(vehicle_models.year_from, EXCLUDED.year_from),
    year_to = GREATEST(vehicle_models.year_to, EXCLUDED.year_to)
RETURNING id::text, year_from, year_to
`
	out := m
	if err := r.pool.QueryRow(ctx, q, m.BrandID, m.Name, m.Chassis, m.YearFrom, m.YearTo).Scan(&out.ID, &out.YearFrom, &out.YearTo); err != nil {
		r.logger.Printf("fitment repo: upsert model name=%s chassis=%s error=%v", m.Name, m.Chassis, err)
		return nil, err
	}
	r.logger.Printf("fitment repo: upserted model name=%s chassis=%s id=%s", out.Name, out.Chassis, out.ID)
	return &out, nil
}

func (r *postgresRepo) LinkProduct(ctx context.Context, productID, modelID string, yearFrom, yearTo int) error {
	if yearTo < yearFrom {
		return fmt.Errorf("%w: fitment year range %d-%d", domain.ErrInvalidInput, yearFrom, yearTo)
	}
	const q = `
INSERT INTO product_fitments (product_id, model_id, year_from, year_to)
VALUES ($1::uuid, $2::uuid, $3, $4)
ON CONFLICT (product_id, model_id) DO UPDATE
SET year_from = EXCLUDED.year_from,
    year_to = EXCLUDED.year_to
`
	if _, err := r.pool.Exec(ctx, q, productID, modelID, yearFrom, yearTo); err != nil {
		r.logger.Printf("fitment repo: link product_id=%s model_id=%s error=%v", productID, modelID, err)
		return err
	}
	return nil
}
