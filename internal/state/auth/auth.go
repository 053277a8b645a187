// Package auth keeps the logged-in customer id for a session.
package auth

import (
	"context"
	"fmt"

	"autoparts-storefront/internal/state/kv"
)

const StorageKey = "ap_auth"

// Session reports login state for UI purposes only; the backend authorises every call itself.
type Session struct {
	store      kv.Store
	customerID string
}

func Open(ctx context.Context, store kv.Store) (*Session, error) {
	raw, ok, err := store.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load auth: %w", err)
	}
	s := &Session{store: store}
	if ok {
		s.customerID = string(raw)
	}
	return s, nil
}

func (s *Session) CustomerID() (string, bool) {
	return s.customerID, s.customerID != ""
}

func (s *Session) LoggedIn() bool { return s.customerID != "" }

func (s *Session) SetCustomerID(ctx context.Context, id string) error {
	if err := s.store.Set(ctx, StorageKey, []byte(id)); err != nil {
		return fmt.Errorf("persist auth: %w", err)
	}
	s.customerID = id
	return nil
}

func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("clear auth: %w", err)
	}
	s.customerID = ""
	return nil
}
