package customer

import (
	"context"

	"autoparts-storefront/internal/domain"
)

// Repository persists and fetches customers.
type Repository interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, id, name, phone string) (*domain.Customer, error)
	// UpdateAddresses locks the customer's address book, passes it to edit and
	// stores what edit returns. An error from edit aborts without writing.
	UpdateAddresses(ctx context.Context, id string, edit AddressEdit) (*domain.Customer, error)
}

// AddressEdit receives the current addresses and returns the new list.
type AddressEdit func(current []domain.SavedAddress) ([]domain.SavedAddress, error)
