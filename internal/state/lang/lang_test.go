package lang

import (
	"context"
	"errors"
	"testing"

	"autoparts-storefront/internal/state/kv"
)

func TestDefaultsToArabic(t *testing.T) {
	p, err := Open(context.Background(), kv.NewMemory())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if p.Lang() != Arabic || p.Dir() != "rtl" || !p.IsRTL() {
		t.Fatalf("expected ar/rtl, got %s/%s", p.Lang(), p.Dir())
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	p, _ := Open(ctx, store)

	if err := p.Toggle(ctx); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if p.Lang() != English || p.Dir() != "ltr" {
		t.Fatalf("expected en/ltr after one toggle, got %s/%s", p.Lang(), p.Dir())
	}
	reopened, _ := Open(ctx, store)
	if reopened.Lang() != English {
		t.Fatalf("toggle should persist")
	}
	_ = p.Toggle(ctx)
	if p.Lang() != Arabic || p.Dir() != "rtl" {
		t.Fatalf("expected ar/rtl after two toggles, got %s/%s", p.Lang(), p.Dir())
	}
}

func TestRejectsUnknownLanguage(t *testing.T) {
	ctx := context.Background()
	p, _ := Open(ctx, kv.NewMemory())
	if err := p.Set(ctx, Lang("fr")); !errors.Is(err, ErrUnsupportedLang) {
		t.Fatalf("expected ErrUnsupportedLang, got %v", err)
	}
	if p.Lang() != Arabic {
		t.Fatalf("rejected value must not change the preference")
	}
}

func TestOpenIgnoresGarbage(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	_ = store.Set(ctx, StorageKey, []byte("xx"))
	p, _ := Open(ctx, store)
	if p.Lang() != Arabic {
		t.Fatalf("garbage should read as Arabic, got %s", p.Lang())
	}
}
