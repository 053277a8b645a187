package customer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"

	"autoparts-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const returningColumns = `id::text, email, password_hash, name, phone, addresses, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	addrJSON, err := encodeAddresses(c.Addresses)
	if err != nil {
		return nil, err
	}
	const q = `
INSERT INTO customers (email, password_hash, name, phone, addresses)
VALUES ($1, $2, $3, $4, $5::jsonb)
RETURNING ` + returningColumns
	return r.scanCustomer(r.pool.QueryRow(ctx, q, strings.ToLower(c.Email), c.PasswordHash, c.Name, c.Phone, addrJSON))
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const q = `
SELECT ` + returningColumns + `
FROM customers
WHERE lower(email) = lower($1)
LIMIT 1
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	const q = `
SELECT ` + returningColumns + `
FROM customers
WHERE id::text = $1
LIMIT 1
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) UpdateProfile(ctx context.Context, id, name, phone string) (*domain.Customer, error) {
	const q = `
UPDATE customers SET name = $2, phone = $3
WHERE id::text = $1
RETURNING ` + returningColumns
	c, err := r.scanCustomer(r.pool.QueryRow(ctx, q, id, name, phone))
	if err != nil {
		return nil, err
	}
	r.logger.Printf("customer repo: updated profile id=%s", id)
	return c, nil
}

func (r *postgresRepo) UpdateAddresses(ctx context.Context, id string, edit AddressEdit) (*domain.Customer, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const lockQ = `
SELECT ` + returningColumns + `
FROM customers
WHERE id::text = $1
FOR UPDATE
`
	current, err := r.scanCustomer(tx.QueryRow(ctx, lockQ, id))
	if err != nil {
		return nil, err
	}
	addresses, err := edit(current.Addresses)
	if err != nil {
		return nil, err
	}
	addrJSON, err := encodeAddresses(addresses)
	if err != nil {
		return nil, err
	}

	const q = `
UPDATE customers SET addresses = $2::jsonb
WHERE id::text = $1
RETURNING ` + returningColumns
	c, err := r.scanCustomer(tx.QueryRow(ctx, q, id, addrJSON))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		r.logger.Printf("customer repo: commit addresses id=%s err=%v", id, err)
		return nil, err
	}
	r.logger.Printf("customer repo: set addresses id=%s count=%d", id, len(addresses))
	return c, nil
}

func (r *postgresRepo) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	var addrJSON []byte
	err := row.Scan(&c.ID, &c.Email, &c.PasswordHash, &c.Name, &c.Phone, &addrJSON, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("customer repo: scan error=%v", err)
		return nil, err
	}
	if len(addrJSON) > 0 {
		if err := json.Unmarshal(addrJSON, &c.Addresses); err != nil {
			r.logger.Printf("customer repo: decode addresses id=%s err=%v", c.ID, err)
			return nil, err
		}
	}
	if c.Addresses == nil {
		c.Addresses = []domain.SavedAddress{}
	}
	return &c, nil
}

func encodeAddresses(addresses []domain.SavedAddress) ([]byte, error) {
	if addresses == nil {
		addresses = []domain.SavedAddress{}
	}
	return json.Marshal(addresses)
}
