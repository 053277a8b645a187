package catalog

import (
	"context"
	"strings"
	"sync"
	"time"

	"autoparts-storefront/internal/domain"
)

// DefaultDebounce is the typing pause before a live search fires.
const DefaultDebounce = 350 * time.Millisecond

type SearchFunc func(ctx context.Context, text string) ([]domain.Product, error)

// DeliverFunc receives each finished search. Results of overlapping searches
// arrive in completion order; the consumer keeps the last one.
type DeliverFunc func(text string, parts []domain.Product, err error)

// Debouncer collapses a burst of keystrokes into one search for the latest text.
// Blank text fires immediately. In-flight searches are never cancelled.
type Debouncer struct {
	ctx     context.Context
	delay   time.Duration
	search  SearchFunc
	deliver DeliverFunc

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	latest  string
	stopped bool
	wg      sync.WaitGroup
}

func NewDebouncer(ctx context.Context, delay time.Duration, search SearchFunc, deliver DeliverFunc) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{ctx: ctx, delay: delay, search: search, deliver: deliver}
}

// Input records a keystroke and restarts the timer.
func (d *Debouncer) Input(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inputLocked(text)
}

// inputLocked requires d.mu. Every keystroke bumps gen so a timer that has
// already expired but not yet taken the lock finds itself stale.
func (d *Debouncer) inputLocked(text string) {
	if d.stopped {
		return
	}
	d.gen++
	d.latest = text
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if strings.TrimSpace(text) == "" {
		d.wg.Add(1)
		go d.run(text)
		return
	}
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	text := d.latest
	d.timer = nil
	d.wg.Add(1)
	d.mu.Unlock()
	d.run(text)
}

func (d *Debouncer) run(text string) {
	defer d.wg.Done()
	parts, err := d.search(d.ctx, strings.TrimSpace(text))
	d.deliver(text, parts, err)
}

// Stop drops any pending timer and waits for searches already running.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	d.wg.Wait()
}
