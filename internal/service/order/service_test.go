package order

import (
	"context"
	"errors"
	"strings"
	"testing"

	"autoparts-storefront/internal/domain"
	orderrepo "autoparts-storefront/internal/repository/order"
)

type stubOrderRepo struct {
	lastCreate orderrepo.CreateOrderInput
	byID       map[string]*domain.Order
	byNumber   map[string]*domain.Order
	lastLimit  int
}

func (s *stubOrderRepo) Create(_ context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error) {
	s.lastCreate = in
	return &domain.Order{ID: "o1", OrderNumber: in.OrderNumber, CustomerID: in.CustomerID, Status: domain.OrderPending, Items: in.Items}, nil
}

func (s *stubOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	if o, ok := s.byID[id]; ok {
		return o, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubOrderRepo) GetByNumber(_ context.Context, number string) (*domain.Order, error) {
	if o, ok := s.byNumber[number]; ok {
		return o, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubOrderRepo) ListByCustomer(_ context.Context, _ string, limit int) ([]domain.Order, error) {
	s.lastLimit = limit
	return nil, nil
}

type stubProducts map[string]domain.Product

func (s stubProducts) GetByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := s[id]; ok {
		return &p, nil
	}
	return nil, domain.ErrNotFound
}

var validAddress = domain.ShippingAddress{FullName: "Omar", Phone: "01012345678", City: "القاهرة", Area: "مدينة نصر", Address: "12 Street"}

func TestCreate_PricesFromCatalogue(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := New(repo, stubProducts{"p1": {ID: "p1", OEM: "A1", Name: "Fender", BasePriceCents: 10000}})

	o, err := svc.Create(context.Background(), CreateInput{
		CustomerID:      "c1",
		Items:           []ItemInput{{ProductID: "p1", Quantity: 2}},
		ShippingAddress: validAddress,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(o.OrderNumber, "AP-") || len(o.OrderNumber) != 11 {
		t.Fatalf("unexpected order number %q", o.OrderNumber)
	}
	if len(repo.lastCreate.Items) != 1 || repo.lastCreate.Items[0].PriceCents != 10000 || repo.lastCreate.Items[0].OEM != "A1" {
		t.Fatalf("unexpected items %+v", repo.lastCreate.Items)
	}
	if repo.lastCreate.CustomerID != "c1" {
		t.Fatalf("expected customer id forwarded")
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := New(&stubOrderRepo{}, stubProducts{"p1": {ID: "p1"}})
	cases := []struct {
		name string
		in   CreateInput
	}{
		{"no items", CreateInput{ShippingAddress: validAddress}},
		{"zero quantity", CreateInput{Items: []ItemInput{{ProductID: "p1"}}, ShippingAddress: validAddress}},
		{"unknown product", CreateInput{Items: []ItemInput{{ProductID: "nope", Quantity: 1}}, ShippingAddress: validAddress}},
		{"missing address", CreateInput{Items: []ItemInput{{ProductID: "p1", Quantity: 1}}}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(context.Background(), tc.in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestGet_ByIDOrNumberScopedToCustomer(t *testing.T) {
	const id = "6f1c2a1e-5b1d-4f59-9d6a-1f2e3d4c5b6a"
	order := &domain.Order{ID: id, OrderNumber: "AP-1234ABCD", CustomerID: "c1"}
	repo := &stubOrderRepo{
		byID:     map[string]*domain.Order{id: order},
		byNumber: map[string]*domain.Order{"AP-1234ABCD": order},
	}
	svc := New(repo, stubProducts{})
	ctx := context.Background()

	if got, err := svc.Get(ctx, id, "c1"); err != nil || got.ID != id {
		t.Fatalf("get by id: %+v %v", got, err)
	}
	if got, err := svc.Get(ctx, "AP-1234ABCD", ""); err != nil || got.ID != id {
		t.Fatalf("get by number: %+v %v", got, err)
	}
	if _, err := svc.Get(ctx, id, "someone-else"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign customer, got %v", err)
	}
}

func TestListByCustomer_RequiresCustomer(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := New(repo, stubProducts{})
	if _, err := svc.ListByCustomer(context.Background(), "", 10); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.ListByCustomer(context.Background(), "c1", 50); err != nil || repo.lastLimit != 50 {
		t.Fatalf("expected limit forwarded, got %d %v", repo.lastLimit, err)
	}
}
