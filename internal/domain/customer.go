package domain

import "time"

// SavedAddress is a shipping address kept on a customer profile.
type SavedAddress struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	IsDefault    bool   `json:"isDefault"`
}

// Customer represents a registered storefront user.
type Customer struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	Name         string         `json:"name"`
	Phone        string         `json:"phone,omitempty"`
	Addresses    []SavedAddress `json:"addresses"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// DefaultAddress returns the address flagged default, falling back to the first one.
func (c Customer) DefaultAddress() (SavedAddress, bool) {
	for _, a := range c.Addresses {
		if a.IsDefault {
			return a, true
		}
	}
	if len(c.Addresses) > 0 {
		return c.Addresses[0], true
	}
	return SavedAddress{}, false
}
