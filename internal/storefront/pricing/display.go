// Package pricing turns USD base prices into the EGP amounts shown to shoppers.
package pricing

import (
	"context"
	"io"
	"log"
	"math"
	"sync"
	"time"

	"autoparts-storefront/internal/commerce"
	"autoparts-storefront/internal/i18n"
	"autoparts-storefront/internal/state/lang"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Pending is shown in place of a price while the rate is unknown.
const Pending = "…"

var (
	englishPrinter = message.NewPrinter(language.English)
	arabicPrinter  = message.NewPrinter(language.MustParse("ar-EG"))
)

// Display caches the exchange rate for the process and converts prices with it.
type Display struct {
	src    commerce.Pricing
	ttl    time.Duration
	logger *log.Logger
	now    func() time.Time

	mu        sync.Mutex
	loaded    bool
	rate      float64
	fetchedAt time.Time
}

// NewDisplay fetches lazily on first use and again once ttl has passed. ttl <= 0 never refreshes.
func NewDisplay(src commerce.Pricing, ttl time.Duration, logger *log.Logger) *Display {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Display{src: src, ttl: ttl, logger: logger, now: time.Now}
}

// Rate returns the cached rate, fetching when needed. ok is false while the rate is unknown.
func (d *Display) Rate(ctx context.Context) (float64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.loaded || (d.ttl > 0 && d.now().Sub(d.fetchedAt) >= d.ttl) {
		d.refresh(ctx)
	}
	return d.rate, d.rate > 0
}

func (d *Display) refresh(ctx context.Context) {
	rate, err := d.src.Rate(ctx)
	d.loaded = true
	d.fetchedAt = d.now()
	if err != nil || rate <= 0 {
		d.logger.Printf("pricing: rate unavailable err=%v rate=%v", err, rate)
		d.rate = 0
		return
	}
	d.rate = rate
}

// IsPriceAvailable is false for parts without a base price.
func IsPriceAvailable(cents int64) bool { return cents > 0 }

// ToDisplay converts USD cents to whole EGP. ok is false while the rate is unknown.
func (d *Display) ToDisplay(ctx context.Context, cents int64) (int64, bool) {
	rate, ok := d.Rate(ctx)
	if !ok {
		return 0, false
	}
	return int64(math.Round(float64(cents) * rate / 100)), true
}

// Format renders an EGP amount with locale digits, e.g. "10,000 EGP".
func Format(l lang.Lang, egp int64) string {
	if l == lang.English {
		return englishPrinter.Sprintf("%d", egp) + " EGP"
	}
	return arabicPrinter.Sprintf("%d", egp) + " ج.م"
}

// Label is the text a price slot shows: call-for-price, pending, or the amount.
func (d *Display) Label(ctx context.Context, l lang.Lang, cents int64) string {
	if !IsPriceAvailable(cents) {
		return i18n.T(l, "catalog.callForPrice")
	}
	egp, ok := d.ToDisplay(ctx, cents)
	if !ok {
		return Pending
	}
	return Format(l, egp)
}

// Price is the JSON shape of a displayed price.
type Price struct {
	USDCents  int64  `json:"usdCents"`
	EGP       int64  `json:"egp,omitempty"`
	Available bool   `json:"available"`
	RateKnown bool   `json:"rateKnown"`
	Label     string `json:"label"`
}

func (d *Display) Quote(ctx context.Context, l lang.Lang, cents int64) Price {
	p := Price{USDCents: cents, Available: IsPriceAvailable(cents)}
	egp, ok := d.ToDisplay(ctx, cents)
	p.RateKnown = ok
	if p.Available && ok {
		p.EGP = egp
	}
	p.Label = d.Label(ctx, l, cents)
	return p
}
