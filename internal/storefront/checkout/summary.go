package checkout

import (
	"context"

	"autoparts-storefront/internal/domain"
	"autoparts-storefront/internal/i18n"
	"autoparts-storefront/internal/state/auth"
	"autoparts-storefront/internal/state/cart"
	"autoparts-storefront/internal/state/lang"
	"autoparts-storefront/internal/storefront/pricing"
)

type Line struct {
	cart.CartItem
	Name      string        `json:"name"`
	Price     pricing.Price `json:"price"`
	LineTotal pricing.Price `json:"lineTotal"`
}

type CartView struct {
	Lines      []Line        `json:"lines"`
	TotalItems int           `json:"totalItems"`
	PartsCount string        `json:"partsCount"`
	Total      pricing.Price `json:"total"`
}

// CartView prices every cart line at the current rate.
func (s *Service) CartView(ctx context.Context, l lang.Lang, c *cart.Cart) CartView {
	items := c.Items()
	v := CartView{Lines: make([]Line, 0, len(items)), TotalItems: c.TotalItems()}
	for _, it := range items {
		name := it.NameAr
		if l == lang.English || name == "" {
			name = it.NameEn
		}
		v.Lines = append(v.Lines, Line{
			CartItem:  it,
			Name:      name,
			Price:     s.prices.Quote(ctx, l, it.PriceCents),
			LineTotal: s.prices.Quote(ctx, l, it.PriceCents*int64(it.Quantity)),
		})
	}
	v.PartsCount = i18n.PartsCount(l, v.TotalItems)
	v.Total = s.prices.Quote(ctx, l, c.TotalCents())
	return v
}

type Summary struct {
	Cart            CartView              `json:"cart"`
	Governorates    []string              `json:"governorates"`
	Addresses       []domain.SavedAddress `json:"addresses"`
	SelectedAddress string                `json:"selectedAddress,omitempty"`
	Form            Form                  `json:"form"`
}

// Summary is the checkout page: priced cart, city list and the preselected saved address.
func (s *Service) Summary(ctx context.Context, l lang.Lang, c *cart.Cart, a *auth.Session) *Summary {
	sum := &Summary{Cart: s.CartView(ctx, l, c), Governorates: Governorates, Addresses: []domain.SavedAddress{}}
	sel := NewSelection(s.SavedAddresses(ctx, a))
	if addrs := sel.Addresses(); len(addrs) > 0 {
		sum.Addresses = addrs
	}
	sum.SelectedAddress = sel.Selected()
	sum.Form = sel.Form
	return sum
}

// SavedAddresses lists the logged-in customer's addresses. Guests and lookup
// failures get none.
func (s *Service) SavedAddresses(ctx context.Context, a *auth.Session) []domain.SavedAddress {
	if a == nil {
		return nil
	}
	customerID, ok := a.CustomerID()
	if !ok {
		return nil
	}
	profile, err := s.client.Customers().Profile(ctx, customerID)
	if err != nil {
		s.logger.Printf("checkout: load saved addresses customer=%s err=%v", customerID, err)
		return nil
	}
	return profile.Addresses
}
