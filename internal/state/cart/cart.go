// Package cart holds a shopper's cart in session storage. It never calls the
// commerce backend; prices are the ones seen when the item was added.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"autoparts-storefront/internal/state/kv"
)

// StorageKey is the session key the cart persists under.
const StorageKey = "ap_cart"

// CartItem is one cart line. PriceCents is the USD price in cents.
type CartItem struct {
	ProductID  string `json:"productId"`
	OEM        string `json:"oem"`
	NameAr     string `json:"nameAr"`
	NameEn     string `json:"nameEn"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
	Image      string `json:"image,omitempty"`
}

type Cart struct {
	mu    sync.Mutex
	store kv.Store
	items []CartItem
}

// Open loads the persisted cart. A missing or unreadable entry yields an empty cart.
func Open(ctx context.Context, store kv.Store) (*Cart, error) {
	c := &Cart{store: store}
	raw, ok, err := store.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &c.items); err != nil {
			c.items = nil
		}
	}
	return c, nil
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// AddItem inserts a new line at quantity 1, or bumps an existing line by one.
// The supplied Quantity is ignored.
func (c *Cart) AddItem(ctx context.Context, item CartItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.index(item.ProductID); i >= 0 {
		c.items[i].Quantity++
	} else {
		item.Quantity = 1
		c.items = append(c.items, item)
	}
	return c.persist(ctx)
}

func (c *Cart) RemoveItem(ctx context.Context, productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(productID)
	return c.persist(ctx)
}

// UpdateQty sets the quantity of a line; qty below 1 removes it. Unknown ids are a no-op.
func (c *Cart) UpdateQty(ctx context.Context, productID string, qty int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if qty < 1 {
		c.remove(productID)
	} else if i := c.index(productID); i >= 0 {
		c.items[i].Quantity = qty
	}
	return c.persist(ctx)
}

func (c *Cart) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	return c.persist(ctx)
}

// TotalItems is the sum of quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// TotalCents is the sum of price × quantity in USD cents.
func (c *Cart) TotalCents() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total int64
	for _, it := range c.items {
		total += it.PriceCents * int64(it.Quantity)
	}
	return total
}

func (c *Cart) index(productID string) int {
	for i, it := range c.items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) remove(productID string) {
	if i := c.index(productID); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

func (c *Cart) persist(ctx context.Context) error {
	items := c.items
	if items == nil {
		items = []CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := c.store.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
