package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"autoparts-storefront/internal/domain"
	custrepo "autoparts-storefront/internal/repository/customer"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when email/password do not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service handles customer registration, login and profile upkeep.
type Service struct {
	repo        custrepo.Repository
	passwordMin int
	newID       func() string
}

// New creates a Service with sane defaults.
func New(repo custrepo.Repository) *Service {
	return &Service{
		repo:        repo,
		passwordMin: 8,
		newID:       uuid.NewString,
	}
}

// RegisterInput captures fields expected by the signup flow.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AddressInput mirrors incoming saved-address payloads.
type AddressInput struct {
	Label        string `json:"label"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
}

// Register creates a customer. A taken email surfaces as domain.ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("name required")
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, invalid("email required")
	}
	if len([]rune(in.Password)) < s.passwordMin {
		return nil, invalid(fmt.Sprintf("password must be at least %d characters", s.passwordMin))
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, domain.Customer{
		Email:        email,
		PasswordHash: string(hashed),
		Name:         name,
		Phone:        strings.TrimSpace(in.Phone),
		Addresses:    []domain.SavedAddress{},
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("customer with email %s: %w", email, domain.ErrAlreadyExists)
	}
	return created, err
}

// Login validates credentials and returns the customer.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Customer, error) {
	c, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return c, nil
}

func (s *Service) Profile(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, id, name, phone string) (*domain.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name required")
	}
	return s.repo.UpdateProfile(ctx, id, name, strings.TrimSpace(phone))
}

// AddAddress appends a saved address. The first address becomes the default and
// an empty label falls back to the city.
func (s *Service) AddAddress(ctx context.Context, id string, in AddressInput) (*domain.Customer, error) {
	if strings.TrimSpace(in.AddressLine1) == "" {
		return nil, invalid("address required")
	}
	if strings.TrimSpace(in.City) == "" {
		return nil, invalid("city required")
	}
	label := strings.TrimSpace(in.Label)
	if label == "" {
		label = strings.TrimSpace(in.City)
	}
	addr := domain.SavedAddress{
		ID:           s.newID(),
		Label:        label,
		Name:         strings.TrimSpace(in.Name),
		Phone:        strings.TrimSpace(in.Phone),
		AddressLine1: strings.TrimSpace(in.AddressLine1),
		AddressLine2: strings.TrimSpace(in.AddressLine2),
		City:         strings.TrimSpace(in.City),
	}
	return s.repo.UpdateAddresses(ctx, id, func(current []domain.SavedAddress) ([]domain.SavedAddress, error) {
		addr.IsDefault = len(current) == 0
		return append(current, addr), nil
	})
}

// RemoveAddress deletes a saved address; when it was the default the first remaining one takes over.
func (s *Service) RemoveAddress(ctx context.Context, id, addressID string) (*domain.Customer, error) {
	return s.repo.UpdateAddresses(ctx, id, func(current []domain.SavedAddress) ([]domain.SavedAddress, error) {
		kept := make([]domain.SavedAddress, 0, len(current))
		var removed *domain.SavedAddress
		for i := range current {
			if current[i].ID == addressID {
				removed = &current[i]
				continue
			}
			kept = append(kept, current[i])
		}
		if removed == nil {
			return nil, domain.ErrNotFound
		}
		if removed.IsDefault && len(kept) > 0 {
			kept[0].IsDefault = true
		}
		return kept, nil
	})
}

func (s *Service) SetDefaultAddress(ctx context.Context, id, addressID string) (*domain.Customer, error) {
	return s.repo.UpdateAddresses(ctx, id, func(current []domain.SavedAddress) ([]domain.SavedAddress, error) {
		found := false
		for i := range current {
			current[i].IsDefault = current[i].ID == addressID
			found = found || current[i].IsDefault
		}
		if !found {
			return nil, domain.ErrNotFound
		}
		return current, nil
	})
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
}
