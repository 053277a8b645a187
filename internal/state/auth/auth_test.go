package auth

import (
	"context"
	"testing"

	"autoparts-storefront/internal/state/kv"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()

	s, err := Open(ctx, store)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.LoggedIn() {
		t.Fatalf("fresh session should be anonymous")
	}
	if err := s.SetCustomerID(ctx, "cust-1"); err != nil {
		t.Fatalf("set: %v", err)
	}

	again, _ := Open(ctx, store)
	if id, ok := again.CustomerID(); !ok || id != "cust-1" {
		t.Fatalf("expected persisted id, got %q ok=%v", id, ok)
	}
	if err := again.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if s2, _ := Open(ctx, store); s2.LoggedIn() {
		t.Fatalf("logout should clear the stored id")
	}
}
