package account

import (
	"context"
	"fmt"

	"autoparts-storefront/internal/commerce"
	"autoparts-storefront/internal/domain"
	"autoparts-storefront/internal/i18n"
	"autoparts-storefront/internal/state/auth"
	"autoparts-storefront/internal/state/lang"
	"autoparts-storefront/internal/storefront/pricing"
)

type Step struct {
	Status  string `json:"status"`
	Label   string `json:"label"`
	Done    bool   `json:"done"`
	Current bool   `json:"current"`
}

type OrderLine struct {
	domain.OrderItem
	Price     pricing.Price `json:"price"`
	LineTotal pricing.Price `json:"lineTotal"`
}

// OrderView is the order tracking page.
type OrderView struct {
	Order       *domain.Order `json:"order"`
	StatusLabel string        `json:"statusLabel"`
	Cancelled   bool          `json:"cancelled"`
	CurrentStep int           `json:"currentStep"`
	Steps       []Step        `json:"steps"`
	Lines       []OrderLine   `json:"lines"`
	Total       pricing.Price `json:"total"`
}

// Order resolves id as an order id or order number for the signed-in customer.
func (s *Service) Order(ctx context.Context, l lang.Lang, a *auth.Session, id string) (*OrderView, error) {
	customerID, err := requireCustomer(a)
	if err != nil {
		return nil, err
	}
	order, err := s.findOrder(ctx, customerID, id)
	if err != nil {
		return nil, err
	}
	return s.orderView(ctx, l, order), nil
}

func (s *Service) findOrder(ctx context.Context, customerID, id string) (*domain.Order, error) {
	if o, err := s.client.Checkout().GetOrder(ctx, id, customerID); err == nil {
		return o, nil
	}
	recent, err := s.client.Customers().ListOrders(ctx, customerID, fallbackOrders)
	if err != nil {
		s.logger.Printf("account: order fallback customer=%s err=%v", customerID, err)
		return nil, orderNotFound(id)
	}
	for i := range recent {
		o := recent[i]
		if o.ID != id && o.OrderNumber != id {
			continue
		}
		key := o.OrderNumber
		if key == "" {
			key = o.ID
		}
		if full, err := s.client.Checkout().GetOrder(ctx, key, customerID); err == nil {
			return full, nil
		}
		return &o, nil
	}
	return nil, orderNotFound(id)
}

func orderNotFound(id string) error {
	return commerce.NewError(commerce.KindNotFound, "account.order", fmt.Errorf("%w: order %s", domain.ErrNotFound, id))
}

func (s *Service) orderView(ctx context.Context, l lang.Lang, o *domain.Order) *OrderView {
	current := o.Status.Step()
	v := &OrderView{
		Order:       o,
		StatusLabel: i18n.StatusLabel(l, string(o.Status)),
		Cancelled:   o.Status == domain.OrderCancelled,
		CurrentStep: current,
		Steps:       make([]Step, 0, len(domain.OrderSteps)),
		Lines:       make([]OrderLine, 0, len(o.Items)),
		Total:       s.prices.Quote(ctx, l, o.TotalCents),
	}
	for i, st := range domain.OrderSteps {
		v.Steps = append(v.Steps, Step{
			Status:  string(st),
			Label:   i18n.StatusLabel(l, string(st)),
			Done:    i <= current,
			Current: i == current,
		})
	}
	for _, it := range o.Items {
		v.Lines = append(v.Lines, OrderLine{
			OrderItem: it,
			Price:     s.prices.Quote(ctx, l, it.PriceCents),
			LineTotal: s.prices.Quote(ctx, l, it.PriceCents*int64(it.Quantity)),
		})
	}
	return v
}
