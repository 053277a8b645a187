package account

import (
	"context"
	"slices"
	"strings"

	"autoparts-storefront/internal/commerce"
	"autoparts-storefront/internal/domain"
	"autoparts-storefront/internal/i18n"
	"autoparts-storefront/internal/state/auth"
	"autoparts-storefront/internal/state/lang"
	"autoparts-storefront/internal/storefront"
	"autoparts-storefront/internal/storefront/checkout"
	"autoparts-storefront/internal/storefront/pricing"
)

type OrderSummary struct {
	ID          string        `json:"id"`
	OrderNumber string        `json:"orderNumber"`
	Status      string        `json:"status"`
	StatusLabel string        `json:"statusLabel"`
	ItemCount   int           `json:"itemCount"`
	Total       pricing.Price `json:"total"`
	CreatedAt   string        `json:"createdAt"`
}

type Profile struct {
	Customer *domain.Customer `json:"customer"`
	Orders   []OrderSummary   `json:"orders"`
}

func (s *Service) summarize(ctx context.Context, l lang.Lang, o domain.Order) OrderSummary {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return OrderSummary{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Status:      string(o.Status),
		StatusLabel: i18n.StatusLabel(l, string(o.Status)),
		ItemCount:   n,
		Total:       s.prices.Quote(ctx, l, o.TotalCents),
		CreatedAt:   o.CreatedAt.Format("2006-01-02"),
	}
}

// Profile loads the customer and their latest orders.
func (s *Service) Profile(ctx context.Context, l lang.Lang, a *auth.Session) (*Profile, error) {
	id, err := requireCustomer(a)
	if err != nil {
		return nil, err
	}
	c, err := s.client.Customers().Profile(ctx, id)
	if err != nil {
		return nil, err
	}
	orders, err := s.client.Customers().ListOrders(ctx, id, profileOrders)
	if err != nil {
		return nil, err
	}
	p := &Profile{Customer: c, Orders: make([]OrderSummary, 0, len(orders))}
	for _, o := range orders {
		p.Orders = append(p.Orders, s.summarize(ctx, l, o))
	}
	return p, nil
}

type ProfileInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (s *Service) UpdateProfile(ctx context.Context, l lang.Lang, a *auth.Session, in ProfileInput) (*domain.Customer, error) {
	id, err := requireCustomer(a)
	if err != nil {
		return nil, err
	}
	errs := &storefront.FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs.Add("name", i18n.T(l, "errors.nameRequired"))
	}
	if in.Phone != "" && !checkout.PhonePattern.MatchString(in.Phone) {
		errs.Add("phone", i18n.T(l, "errors.phoneFormat"))
	}
	if errs := errs.OrNil(); errs != nil {
		return nil, errs
	}
	return s.client.Customers().UpdateProfile(ctx, id, strings.TrimSpace(in.Name), in.Phone)
}

func (s *Service) AddAddress(ctx context.Context, l lang.Lang, a *auth.Session, in commerce.AddressRequest) (*domain.Customer, error) {
	id, err := requireCustomer(a)
	if err != nil {
		return nil, err
	}
	errs := &storefront.FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs.Add("name", i18n.T(l, "errors.nameRequired"))
	}
	if !checkout.PhonePattern.MatchString(in.Phone) {
		errs.Add("phone", i18n.T(l, "errors.phoneInvalid"))
	}
	if strings.TrimSpace(in.AddressLine1) == "" {
		errs.Add("addressLine1", i18n.T(l, "errors.addressRequired"))
	}
	// Saved addresses prefill checkout, so they must pass the same city and area rules.
	in.City = strings.TrimSpace(in.City)
	if !slices.Contains(checkout.Governorates, in.City) {
		errs.Add("city", i18n.T(l, "errors.cityRequired"))
	}
	if strings.TrimSpace(in.AddressLine2) == "" {
		errs.Add("addressLine2", i18n.T(l, "errors.areaRequired"))
	}
	if errs := errs.OrNil(); errs != nil {
		return nil, errs
	}
	if strings.TrimSpace(in.Label) == "" {
		in.Label = in.City
	}
	return s.client.Customers().AddAddress(ctx, id, in)
}

func (s *Service) RemoveAddress(ctx context.Context, a *auth.Session, addressID string) (*domain.Customer, error) {
	id, err := requireCustomer(a)
	if err != nil {
		return nil, err
	}
	return s.client.Customers().RemoveAddress(ctx, id, addressID)
}

func (s *Service) SetDefaultAddress(ctx context.Context, a *auth.Session, addressID string) (*domain.Customer, error) {
	id, err := requireCustomer(a)
	if err != nil {
		return nil, err
	}
	return s.client.Customers().SetDefaultAddress(ctx, id, addressID)
}
