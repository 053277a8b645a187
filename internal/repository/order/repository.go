package order

import (
	"context"

	"autoparts-storefront/internal/domain"
)

// CreateOrderInput is a fully validated order ready to persist.
type CreateOrderInput struct {
	OrderNumber     string
	CustomerID      string
	Items           []domain.OrderItem
	ShippingAddress domain.ShippingAddress
}

type Repository interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]domain.Order, error)
}
