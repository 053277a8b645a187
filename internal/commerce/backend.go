package commerce

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"autoparts-storefront/internal/domain"
	productrepo "autoparts-storefront/internal/repository/product"
	custsvc "autoparts-storefront/internal/service/customer"
	ordersvc "autoparts-storefront/internal/service/order"
)

type productService interface {
	List(ctx context.Context, params productrepo.ListParams) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	SearchOEM(ctx context.Context, query string) ([]domain.Product, error)
	ByFitment(ctx context.Context, params productrepo.FitmentParams) ([]domain.Product, error)
}

type categoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type fitmentService interface {
	Brands(ctx context.Context) ([]domain.VehicleBrand, error)
	Models(ctx context.Context, brandID string) ([]domain.VehicleModel, error)
	Model(ctx context.Context, id string) (*domain.VehicleModel, error)
	CompatibleVehicles(ctx context.Context, productID string) ([]domain.CompatibleVehicle, error)
}

type pricingService interface {
	Rate(ctx context.Context) (float64, error)
}

type orderService interface {
	Create(ctx context.Context, in ordersvc.CreateInput) (*domain.Order, error)
	Get(ctx context.Context, key, customerID string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]domain.Order, error)
}

type customerService interface {
	Register(ctx context.Context, in custsvc.RegisterInput) (*domain.Customer, error)
	Login(ctx context.Context, email, password string) (*domain.Customer, error)
	Profile(ctx context.Context, id string) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, id, name, phone string) (*domain.Customer, error)
	AddAddress(ctx context.Context, id string, in custsvc.AddressInput) (*domain.Customer, error)
	RemoveAddress(ctx context.Context, id, addressID string) (*domain.Customer, error)
	SetDefaultAddress(ctx context.Context, id, addressID string) (*domain.Customer, error)
}

// Services are the in-process services the backend adapter delegates to.
type Services struct {
	Products   productService
	Categories categoryService
	Fitment    fitmentService
	Pricing    pricingService
	Orders     orderService
	Customers  customerService
}

type backend struct {
	svc    Services
	logger *log.Logger
}

// NewBackend adapts the Postgres-backed services to Client.
func NewBackend(svc Services, logger *log.Logger) Client {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &backend{svc: svc, logger: logger}
}

func (b *backend) Products() Products     { return productsAPI{b} }
func (b *backend) Categories() Categories { return categoriesAPI{b} }
func (b *backend) Fitment() Fitment       { return fitmentAPI{b} }
func (b *backend) OEM() OEM               { return oemAPI{b} }
func (b *backend) Pricing() Pricing       { return pricingAPI{b} }
func (b *backend) Checkout() Checkout     { return checkoutAPI{b} }
func (b *backend) Customers() Customers   { return customersAPI{b} }

// Classify maps service errors onto the commerce error kinds. Errors that are
// already classified pass through unchanged.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var ce *Error
	if errors.As(err, &ce) {
		return err
	}
	switch {
	case errors.Is(err, custsvc.ErrInvalidCredentials):
		return NewError(KindAuthentication, op, err)
	case errors.Is(err, domain.ErrNotFound):
		return NewError(KindNotFound, op, err)
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrInvalidInput):
		return NewError(KindValidation, op, err)
	}
	return NewError(KindRemote, op, err)
}

func (b *backend) classify(op string, err error) error {
	out := Classify(op, err)
	if out != nil && KindOf(out) == KindRemote {
		b.logger.Printf("commerce: op=%s err=%v", op, err)
	}
	return out
}

type productsAPI struct{ b *backend }

func (a productsAPI) List(ctx context.Context, p ListParams) ([]domain.Product, error) {
	out, err := a.b.svc.Products.List(ctx, productrepo.ListParams{
		CategoryID:  p.CategoryID,
		Sort:        p.Sort,
		InStockOnly: p.InStockOnly,
		Limit:       p.Limit,
	})
	return out, a.b.classify("products.list", err)
}

func (a productsAPI) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := a.b.svc.Products.Get(ctx, id)
	return p, a.b.classify("products.get", err)
}

type categoriesAPI struct{ b *backend }

func (a categoriesAPI) List(ctx context.Context) ([]domain.Category, error) {
	out, err := a.b.svc.Categories.List(ctx)
	return out, a.b.classify("categories.list", err)
}

type fitmentAPI struct{ b *backend }

func (a fitmentAPI) Brands(ctx context.Context) ([]domain.VehicleBrand, error) {
	out, err := a.b.svc.Fitment.Brands(ctx)
	return out, a.b.classify("fitment.brands", err)
}

func (a fitmentAPI) Models(ctx context.Context, brandID string) ([]domain.VehicleModel, error) {
	out, err := a.b.svc.Fitment.Models(ctx, brandID)
	return out, a.b.classify("fitment.models", err)
}

func (a fitmentAPI) Model(ctx context.Context, id string) (*domain.VehicleModel, error) {
	m, err := a.b.svc.Fitment.Model(ctx, id)
	return m, a.b.classify("fitment.model", err)
}

func (a fitmentAPI) Years(m domain.VehicleModel) []int { return m.Years() }

func (a fitmentAPI) Products(ctx context.Context, q FitmentQuery) ([]domain.Product, error) {
	out, err := a.b.svc.Products.ByFitment(ctx, productrepo.FitmentParams{
		ModelID:    q.ModelID,
		Year:       q.Year,
		CategoryID: q.CategoryID,
	})
	return out, a.b.classify("fitment.products", err)
}

func (a fitmentAPI) CompatibleVehicles(ctx context.Context, productID string) ([]domain.CompatibleVehicle, error) {
	out, err := a.b.svc.Fitment.CompatibleVehicles(ctx, productID)
	return out, a.b.classify("fitment.compatible", err)
}

type oemAPI struct{ b *backend }

func (a oemAPI) Search(ctx context.Context, query string) ([]domain.Product, error) {
	out, err := a.b.svc.Products.SearchOEM(ctx, strings.TrimSpace(query))
	return out, a.b.classify("oem.search", err)
}

type pricingAPI struct{ b *backend }

func (a pricingAPI) Rate(ctx context.Context) (float64, error) {
	r, err := a.b.svc.Pricing.Rate(ctx)
	return r, a.b.classify("pricing.rate", err)
}

type checkoutAPI struct{ b *backend }

// CreateOrder forwards the cart lines; the backend reprices them from the catalogue.
func (a checkoutAPI) CreateOrder(ctx context.Context, req OrderRequest) (*domain.Order, error) {
	items := make([]ordersvc.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ordersvc.ItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	o, err := a.b.svc.Orders.Create(ctx, ordersvc.CreateInput{
		CustomerID:      req.CustomerID,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
	})
	if err == nil {
		a.b.logger.Printf("commerce: order created number=%s items=%d", o.OrderNumber, len(o.Items))
	}
	return o, a.b.classify("checkout.create_order", err)
}

func (a checkoutAPI) GetOrder(ctx context.Context, id, customerID string) (*domain.Order, error) {
	o, err := a.b.svc.Orders.Get(ctx, id, customerID)
	return o, a.b.classify("checkout.get_order", err)
}

type customersAPI struct{ b *backend }

func (a customersAPI) Register(ctx context.Context, r Registration) (*domain.Customer, error) {
	c, err := a.b.svc.Customers.Register(ctx, custsvc.RegisterInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
	})
	return c, a.b.classify("customers.register", err)
}

func (a customersAPI) Login(ctx context.Context, email, password string) (*domain.Customer, error) {
	c, err := a.b.svc.Customers.Login(ctx, email, password)
	return c, a.b.classify("customers.login", err)
}

func (a customersAPI) Profile(ctx context.Context, customerID string) (*domain.Customer, error) {
	c, err := a.b.svc.Customers.Profile(ctx, customerID)
	return c, a.b.classify("customers.profile", err)
}

func (a customersAPI) UpdateProfile(ctx context.Context, customerID, name, phone string) (*domain.Customer, error) {
	c, err := a.b.svc.Customers.UpdateProfile(ctx, customerID, name, phone)
	return c, a.b.classify("customers.update_profile", err)
}

func (a customersAPI) AddAddress(ctx context.Context, customerID string, in AddressRequest) (*domain.Customer, error) {
	c, err := a.b.svc.Customers.AddAddress(ctx, customerID, custsvc.AddressInput{
		Label:        in.Label,
		Name:         in.Name,
		Phone:        in.Phone,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		City:         in.City,
	})
	return c, a.b.classify("customers.add_address", err)
}

func (a customersAPI) RemoveAddress(ctx context.Context, customerID, addressID string) (*domain.Customer, error) {
	c, err := a.b.svc.Customers.RemoveAddress(ctx, customerID, addressID)
	return c, a.b.classify("customers.remove_address", err)
}

func (a customersAPI) SetDefaultAddress(ctx context.Context, customerID, addressID string) (*domain.Customer, error) {
	c, err := a.b.svc.Customers.SetDefaultAddress(ctx, customerID, addressID)
	return c, a.b.classify("customers.set_default_address", err)
}

func (a customersAPI) ListOrders(ctx context.Context, customerID string, limit int) ([]domain.Order, error) {
	out, err := a.b.svc.Orders.ListByCustomer(ctx, customerID, limit)
	return out, a.b.classify("customers.list_orders", err)
}

// Logout has nothing to revoke server side; the session drops its customer id.
func (a customersAPI) Logout(ctx context.Context, customerID string) error {
	a.b.logger.Printf("commerce: logout customer=%s", customerID)
	return nil
}
