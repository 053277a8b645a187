package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"autoparts-storefront/internal/domain"
	orderrepo "autoparts-storefront/internal/repository/order"
	"github.com/google/uuid"
)

type productLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type Service struct {
	repo      orderrepo.Repository
	products  productLookup
	newNumber func() string
}

func New(repo orderrepo.Repository, products productLookup) *Service {
	return &Service{repo: repo, products: products, newNumber: newOrderNumber}
}

type ItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CreateInput struct {
	CustomerID      string                 `json:"customerId,omitempty"`
	Items           []ItemInput            `json:"items"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
}

// Create validates the payload, prices every line from the catalogue and stores a pending order.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, invalid("order has no items")
	}
	addr := in.ShippingAddress
	if strings.TrimSpace(addr.FullName) == "" || strings.TrimSpace(addr.Phone) == "" ||
		strings.TrimSpace(addr.City) == "" || strings.TrimSpace(addr.Address) == "" {
		return nil, invalid("shipping address incomplete")
	}

	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, invalid(fmt.Sprintf("quantity for %s must be at least 1", it.ProductID))
		}
		p, err := s.products.GetByID(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, invalid(fmt.Sprintf("unknown product %s", it.ProductID))
			}
			return nil, err
		}
		items = append(items, domain.OrderItem{
			ProductID:  p.ID,
			OEM:        p.OEM,
			Name:       p.Name,
			Quantity:   it.Quantity,
			PriceCents: p.BasePriceCents,
		})
	}

	return s.repo.Create(ctx, orderrepo.CreateOrderInput{
		OrderNumber:     s.newNumber(),
		CustomerID:      in.CustomerID,
		Items:           items,
		ShippingAddress: addr,
	})
}

// Get resolves an order by id or order number. A non-empty customerID hides other customers' orders.
func (s *Service) Get(ctx context.Context, key, customerID string) (*domain.Order, error) {
	var (
		o   *domain.Order
		err error
	)
	if _, parseErr := uuid.Parse(key); parseErr == nil {
		o, err = s.repo.GetByID(ctx, key)
	} else {
		o, err = s.repo.GetByNumber(ctx, key)
	}
	if err != nil {
		return nil, err
	}
	if customerID != "" && o.CustomerID != customerID {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID string, limit int) ([]domain.Order, error) {
	if customerID == "" {
		return nil, invalid("customer required")
	}
	return s.repo.ListByCustomer(ctx, customerID, limit)
}

func newOrderNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "AP-" + strings.ToUpper(raw[:8])
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
}
