// Package commerce is the storefront's view of the commerce backend: one
// interface per capability, bundled behind Client.
package commerce

import (
	"context"

	"autoparts-storefront/internal/domain"
)

// ListParams filters a product listing.
type ListParams struct {
	CategoryID  string
	Sort        string
	InStockOnly bool
	Limit       int
}

// FitmentQuery selects parts for a vehicle.
type FitmentQuery struct {
	ModelID    string
	Year       int
	CategoryID string
}

// OrderLine is one cart line as submitted at checkout. PriceCents is the price the shopper saw.
type OrderLine struct {
	ProductID  string `json:"productId"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"priceCents"`
}

type OrderRequest struct {
	CustomerID      string                 `json:"customerId,omitempty"`
	Items           []OrderLine            `json:"items"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
}

type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type AddressRequest struct {
	Label        string `json:"label"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
}

type Products interface {
	List(ctx context.Context, params ListParams) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

type Categories interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type Fitment interface {
	Brands(ctx context.Context) ([]domain.VehicleBrand, error)
	Models(ctx context.Context, brandID string) ([]domain.VehicleModel, error)
	Model(ctx context.Context, id string) (*domain.VehicleModel, error)
	// Years is computed locally from the model's production range.
	Years(model domain.VehicleModel) []int
	Products(ctx context.Context, q FitmentQuery) ([]domain.Product, error)
	CompatibleVehicles(ctx context.Context, productID string) ([]domain.CompatibleVehicle, error)
}

type OEM interface {
	Search(ctx context.Context, query string) ([]domain.Product, error)
}

type Pricing interface {
	// Rate is the USD to EGP multiplier.
	Rate(ctx context.Context) (float64, error)
}

type Checkout interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, id, customerID string) (*domain.Order, error)
}

type Customers interface {
	Register(ctx context.Context, r Registration) (*domain.Customer, error)
	Login(ctx context.Context, email, password string) (*domain.Customer, error)
	Profile(ctx context.Context, customerID string) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, customerID, name, phone string) (*domain.Customer, error)
	AddAddress(ctx context.Context, customerID string, a AddressRequest) (*domain.Customer, error)
	RemoveAddress(ctx context.Context, customerID, addressID string) (*domain.Customer, error)
	SetDefaultAddress(ctx context.Context, customerID, addressID string) (*domain.Customer, error)
	ListOrders(ctx context.Context, customerID string, limit int) ([]domain.Order, error)
	Logout(ctx context.Context, customerID string) error
}

// Client exposes every capability of the commerce backend.
type Client interface {
	Products() Products
	Categories() Categories
	Fitment() Fitment
	OEM() OEM
	Pricing() Pricing
	Checkout() Checkout
	Customers() Customers
}
