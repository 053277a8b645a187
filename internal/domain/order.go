package domain

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderSteps is the forward progression of a non-cancelled order.
var OrderSteps = []OrderStatus{OrderPending, OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	if s == OrderCancelled {
		return true
	}
	return s.Step() >= 0
}

// Step is the index of s in OrderSteps, or -1 for cancelled and unknown values.
func (s OrderStatus) Step() int {
	for i, step := range OrderSteps {
		if step == s {
			return i
		}
	}
	return -1
}

type OrderItem struct {
	ProductID  string `json:"productId"`
	OEM        string `json:"oem,omitempty"`
	Name       string `json:"name,omitempty"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"priceCents"`
}

// ShippingAddress is the delivery payload captured at checkout.
type ShippingAddress struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Area     string `json:"area"`
	Address  string `json:"address"`
	Notes    string `json:"notes,omitempty"`
}

type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	CustomerID      string          `json:"customerId,omitempty"`
	Status          OrderStatus     `json:"status"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	TotalCents      int64           `json:"totalCents"`
	CreatedAt       time.Time       `json:"createdAt"`
}
