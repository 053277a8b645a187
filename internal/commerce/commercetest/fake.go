// Package commercetest provides a scriptable commerce.Client for tests.
package commercetest

import (
	"context"
	"sync"

	"autoparts-storefront/internal/commerce"
	"autoparts-storefront/internal/domain"
)

// Fake routes every call to the matching Fn field. Unset fields return zero values.
type Fake struct {
	ListProductsFn       func(ctx context.Context, p commerce.ListParams) ([]domain.Product, error)
	GetProductFn         func(ctx context.Context, id string) (*domain.Product, error)
	ListCategoriesFn     func(ctx context.Context) ([]domain.Category, error)
	BrandsFn             func(ctx context.Context) ([]domain.VehicleBrand, error)
	ModelsFn             func(ctx context.Context, brandID string) ([]domain.VehicleModel, error)
	ModelFn              func(ctx context.Context, id string) (*domain.VehicleModel, error)
	FitmentProductsFn    func(ctx context.Context, q commerce.FitmentQuery) ([]domain.Product, error)
	CompatibleFn         func(ctx context.Context, productID string) ([]domain.CompatibleVehicle, error)
	SearchFn             func(ctx context.Context, query string) ([]domain.Product, error)
	RateFn               func(ctx context.Context) (float64, error)
	CreateOrderFn        func(ctx context.Context, req commerce.OrderRequest) (*domain.Order, error)
	GetOrderFn           func(ctx context.Context, id, customerID string) (*domain.Order, error)
	RegisterFn           func(ctx context.Context, r commerce.Registration) (*domain.Customer, error)
	LoginFn              func(ctx context.Context, email, password string) (*domain.Customer, error)
	ProfileFn            func(ctx context.Context, customerID string) (*domain.Customer, error)
	UpdateProfileFn      func(ctx context.Context, customerID, name, phone string) (*domain.Customer, error)
	AddAddressFn         func(ctx context.Context, customerID string, a commerce.AddressRequest) (*domain.Customer, error)
	RemoveAddressFn      func(ctx context.Context, customerID, addressID string) (*domain.Customer, error)
	SetDefaultAddressFn  func(ctx context.Context, customerID, addressID string) (*domain.Customer, error)
	ListOrdersFn         func(ctx context.Context, customerID string, limit int) ([]domain.Order, error)
	LogoutFn             func(ctx context.Context, customerID string) error

	mu    sync.Mutex
	calls map[string]int
}

func (f *Fake) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[op]++
}

// Calls reports how many times op (e.g. "oem.search") was invoked.
func (f *Fake) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *Fake) Products() commerce.Products     { return products{f} }
func (f *Fake) Categories() commerce.Categories { return categories{f} }
func (f *Fake) Fitment() commerce.Fitment       { return fitment{f} }
func (f *Fake) OEM() commerce.OEM               { return oem{f} }
func (f *Fake) Pricing() commerce.Pricing       { return pricing{f} }
func (f *Fake) Checkout() commerce.Checkout     { return checkout{f} }
func (f *Fake) Customers() commerce.Customers   { return customers{f} }

type products struct{ f *Fake }

func (p products) List(ctx context.Context, params commerce.ListParams) ([]domain.Product, error) {
	p.f.record("products.list")
	if p.f.ListProductsFn == nil {
		return nil, nil
	}
	return p.f.ListProductsFn(ctx, params)
}

func (p products) Get(ctx context.Context, id string) (*domain.Product, error) {
	p.f.record("products.get")
	if p.f.GetProductFn == nil {
		return nil, commerce.NewError(commerce.KindNotFound, "products.get", domain.ErrNotFound)
	}
	return p.f.GetProductFn(ctx, id)
}

type categories struct{ f *Fake }

func (c categories) List(ctx context.Context) ([]domain.Category, error) {
	c.f.record("categories.list")
	if c.f.ListCategoriesFn == nil {
		return nil, nil
	}
	return c.f.ListCategoriesFn(ctx)
}

type fitment struct{ f *Fake }

func (x fitment) Brands(ctx context.Context) ([]domain.VehicleBrand, error) {
	x.f.record("fitment.brands")
	if x.f.BrandsFn == nil {
		return nil, nil
	}
	return x.f.BrandsFn(ctx)
}

func (x fitment) Models(ctx context.Context, brandID string) ([]domain.VehicleModel, error) {
	x.f.record("fitment.models")
	if x.f.ModelsFn == nil {
		return nil, nil
	}
	return x.f.ModelsFn(ctx, brandID)
}

func (x fitment) Model(ctx context.Context, id string) (*domain.VehicleModel, error) {
	x.f.record("fitment.model")
	if x.f.ModelFn == nil {
		return nil, commerce.NewError(commerce.KindNotFound, "fitment.model", domain.ErrNotFound)
	}
	return x.f.ModelFn(ctx, id)
}

func (x fitment) Years(m domain.VehicleModel) []int { return m.Years() }

func (x fitment) Products(ctx context.Context, q commerce.FitmentQuery) ([]domain.Product, error) {
	x.f.record("fitment.products")
	if x.f.FitmentProductsFn == nil {
		return nil, nil
	}
	return x.f.FitmentProductsFn(ctx, q)
}

func (x fitment) CompatibleVehicles(ctx context.Context, productID string) ([]domain.CompatibleVehicle, error) {
	x.f.record("fitment.compatible")
	if x.f.CompatibleFn == nil {
		return nil, nil
	}
	return x.f.CompatibleFn(ctx, productID)
}

type oem struct{ f *Fake }

func (o oem) Search(ctx context.Context, query string) ([]domain.Product, error) {
	o.f.record("oem.search")
	if o.f.SearchFn == nil {
		return nil, nil
	}
	return o.f.SearchFn(ctx, query)
}

type pricing struct{ f *Fake }

func (p pricing) Rate(ctx context.Context) (float64, error) {
	p.f.record("pricing.rate")
	if p.f.RateFn == nil {
		return 0, nil
	}
	return p.f.RateFn(ctx)
}

type checkout struct{ f *Fake }

func (c checkout) CreateOrder(ctx context.Context, req commerce.OrderRequest) (*domain.Order, error) {
	c.f.record("checkout.create_order")
	if c.f.CreateOrderFn == nil {
		return &domain.Order{ID: "order-1", OrderNumber: "AP-00000001", Status: domain.OrderPending}, nil
	}
	return c.f.CreateOrderFn(ctx, req)
}

func (c checkout) GetOrder(ctx context.Context, id, customerID string) (*domain.Order, error) {
	c.f.record("checkout.get_order")
	if c.f.GetOrderFn == nil {
		return nil, commerce.NewError(commerce.KindNotFound, "checkout.get_order", domain.ErrNotFound)
	}
	return c.f.GetOrderFn(ctx, id, customerID)
}

type customers struct{ f *Fake }

func (c customers) Register(ctx context.Context, r commerce.Registration) (*domain.Customer, error) {
	c.f.record("customers.register")
	if c.f.RegisterFn == nil {
		return &domain.Customer{ID: "cust-1", Email: r.Email, Name: r.Name, Phone: r.Phone}, nil
	}
	return c.f.RegisterFn(ctx, r)
}

func (c customers) Login(ctx context.Context, email, password string) (*domain.Customer, error) {
	c.f.record("customers.login")
	if c.f.LoginFn == nil {
		return &domain.Customer{ID: "cust-1", Email: email}, nil
	}
	return c.f.LoginFn(ctx, email, password)
}

func (c customers) Profile(ctx context.Context, customerID string) (*domain.Customer, error) {
	c.f.record("customers.profile")
	if c.f.ProfileFn == nil {
		return &domain.Customer{ID: customerID}, nil
	}
	return c.f.ProfileFn(ctx, customerID)
}

func (c customers) UpdateProfile(ctx context.Context, customerID, name, phone string) (*domain.Customer, error) {
	c.f.record("customers.update_profile")
	if c.f.UpdateProfileFn == nil {
		return &domain.Customer{ID: customerID, Name: name, Phone: phone}, nil
	}
	return c.f.UpdateProfileFn(ctx, customerID, name, phone)
}

func (c customers) AddAddress(ctx context.Context, customerID string, a commerce.AddressRequest) (*domain.Customer, error) {
	c.f.record("customers.add_address")
	if c.f.AddAddressFn == nil {
		return &domain.Customer{ID: customerID}, nil
	}
	return c.f.AddAddressFn(ctx, customerID, a)
}

func (c customers) RemoveAddress(ctx context.Context, customerID, addressID string) (*domain.Customer, error) {
	c.f.record("customers.remove_address")
	if c.f.RemoveAddressFn == nil {
		return &domain.Customer{ID: customerID}, nil
	}
	return c.f.RemoveAddressFn(ctx, customerID, addressID)
}

func (c customers) SetDefaultAddress(ctx context.Context, customerID, addressID string) (*domain.Customer, error) {
	c.f.record("customers.set_default_address")
	if c.f.SetDefaultAddressFn == nil {
		return &domain.Customer{ID: customerID}, nil
	}
	return c.f.SetDefaultAddressFn(ctx, customerID, addressID)
}

func (c customers) ListOrders(ctx context.Context, customerID string, limit int) ([]domain.Order, error) {
	c.f.record("customers.list_orders")
	if c.f.ListOrdersFn == nil {
		return nil, nil
	}
	return c.f.ListOrdersFn(ctx, customerID, limit)
}

func (c customers) Logout(ctx context.Context, customerID string) error {
	c.f.record("customers.logout")
	if c.f.LogoutFn == nil {
		return nil
	}
	return c.f.LogoutFn(ctx, customerID)
}

var _ commerce.Client = (*Fake)(nil)
