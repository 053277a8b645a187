package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"autoparts-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `id::text, order_number, COALESCE(customer_id::text, ''), status, shipping_address, total_cents, created_at`

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

// Create inserts the order header and its lines in one transaction.
func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	addrJSON, err := json.Marshal(in.ShippingAddress)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, it := range in.Items {
		total += it.PriceCents * int64(it.Quantity)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const insertOrder = `
INSERT INTO orders (order_number, customer_id, status, shipping_address, total_cents)
VALUES ($1, NULLIF($2, '')::uuid, $3, $4::jsonb, $5)
RETURNING ` + orderColumns
	o, err := scanOrder(tx.QueryRow(ctx, insertOrder, in.OrderNumber, in.CustomerID, string(domain.OrderPending), addrJSON, total))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("order repo: insert number=%s error=%v", in.OrderNumber, err)
		return nil, err
	}

	const insertItem = `
INSERT INTO order_items (order_id, position, product_id, oem, name, quantity, price_cents)
VALUES ($1::uuid, $2, $3, $4, $5, $6, $7)
`
	for i, it := range in.Items {
		if _, err := tx.Exec(ctx, insertItem, o.ID, i, it.ProductID, it.OEM, it.Name, it.Quantity, it.PriceCents); err != nil {
			r.logger.Printf("order repo: insert item number=%s product_id=%s error=%v", in.OrderNumber, it.ProductID, err)
			return nil, fmt.Errorf("insert order item %s: %w", it.ProductID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	o.Items = append([]domain.OrderItem(nil), in.Items...)
	r.logger.Printf("order repo: created number=%s id=%s items=%d total_cents=%d", o.OrderNumber, o.ID, len(o.Items), o.TotalCents)
	return o, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id::text = $1`
	return r.fetchOne(ctx, q, id)
}

func (r *postgresRepo) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE order_number = $1`
	return r.fetchOne(ctx, q, number)
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID string, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE customer_id::text = $1
ORDER BY created_at DESC
LIMIT $2
`
	rows, err := r.pool.Query(ctx, q, customerID, limit)
	if err != nil {
		r.logger.Printf("order repo: list customer_id=%s error=%v", customerID, err)
		return nil, err
	}
	defer rows.Close()

	var (
		result []domain.Order
		ids    []string
	)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return result, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Items = items[result[i].ID]
	}
	r.logger.Printf("order repo: list customer_id=%s count=%d", customerID, len(result))
	return result, nil
}

func (r *postgresRepo) fetchOne(ctx context.Context, q string, arg string) (*domain.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx, q, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get key=%s error=%v", arg, err)
		return nil, err
	}
	items, err := r.loadItems(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return o, nil
}

func (r *postgresRepo) loadItems(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error) {
	const q = `
SELECT order_id::text, product_id, oem, name, quantity, price_cents
FROM order_items
WHERE order_id::text = ANY($1::text[])
ORDER BY order_id, position
`
	rows, err := r.pool.Query(ctx, q, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var (
			orderID string
			it      domain.OrderItem
		)
		if err := rows.Scan(&orderID, &it.ProductID, &it.OEM, &it.Name, &it.Quantity, &it.PriceCents); err != nil {
			return nil, err
		}
		out[orderID] = append(out[orderID], it)
	}
	return out, rows.Err()
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o       domain.Order
		status  string
		addrRaw []byte
	)
	if err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &status, &addrRaw, &o.TotalCents, &o.CreatedAt); err != nil {
		return nil, err
	}
	o.Status = domain.OrderStatus(status)
	if len(addrRaw) > 0 {
		if err := json.Unmarshal(addrRaw, &o.ShippingAddress); err != nil {
			return nil, fmt.Errorf("decode shipping address for %s: %w", o.OrderNumber, err)
		}
	}
	return &o, nil
}
