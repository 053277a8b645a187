// Package lang persists the shopper's language choice. Arabic is the default.
package lang

import (
	"context"
	"errors"
	"fmt"

	"autoparts-storefront/internal/state/kv"
)

const StorageKey = "ap_lang"

type Lang string

const (
	Arabic  Lang = "ar"
	English Lang = "en"
)

var ErrUnsupportedLang = errors.New("unsupported language")

// Parse accepts "ar" or "en".
func Parse(s string) (Lang, error) {
	switch Lang(s) {
	case Arabic, English:
		return Lang(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLang, s)
}

// Dir is the text direction for l.
func (l Lang) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

type Preference struct {
	store kv.Store
	lang  Lang
}

// Open loads the stored choice; anything missing or unknown reads as Arabic.
func Open(ctx context.Context, store kv.Store) (*Preference, error) {
	raw, ok, err := store.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load lang: %w", err)
	}
	p := &Preference{store: store, lang: Arabic}
	if ok {
		if l, err := Parse(string(raw)); err == nil {
			p.lang = l
		}
	}
	return p, nil
}

func (p *Preference) Lang() Lang  { return p.lang }
func (p *Preference) Dir() string { return p.lang.Dir() }
func (p *Preference) IsRTL() bool { return p.lang == Arabic }

func (p *Preference) Set(ctx context.Context, l Lang) error {
	if _, err := Parse(string(l)); err != nil {
		return err
	}
	if err := p.store.Set(ctx, StorageKey, []byte(l)); err != nil {
		return fmt.Errorf("persist lang: %w", err)
	}
	p.lang = l
	return nil
}

// Toggle flips between Arabic and English.
func (p *Preference) Toggle(ctx context.Context) error {
	next := English
	if p.lang == English {
		next = Arabic
	}
	return p.Set(ctx, next)
}
