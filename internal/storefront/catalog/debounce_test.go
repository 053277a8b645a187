package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"autoparts-storefront/internal/domain"
)

type recorder struct {
	mu       sync.Mutex
	searched []string
	results  chan string
}

func (r *recorder) search(ctx context.Context, text string) ([]domain.Product, error) {
	r.mu.Lock()
	r.searched = append(r.searched, text)
	r.mu.Unlock()
	return []domain.Product{{OEM: text}}, nil
}

func (r *recorder) deliver(text string, parts []domain.Product, err error) {
	r.results <- text
}

func TestDebouncerCollapsesBurst(t *testing.T) {
	r := &recorder{results: make(chan string, 4)}
	d := NewDebouncer(context.Background(), 30*time.Millisecond, r.search, r.deliver)
	defer d.Stop()

	for _, s := range []string{"A", "A2", "A20", "A205"} {
		d.Input(s)
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case got := <-r.results:
		if got != "A205" {
			t.Fatalf("expected search for latest text, got %q", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("debounced search never fired")
	}

	select {
	case extra := <-r.results:
		t.Fatalf("unexpected extra search %q", extra)
	case <-time.After(100 * time.Millisecond):
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.searched) != 1 {
		t.Fatalf("expected exactly one search, got %v", r.searched)
	}
}

func TestDebouncerBlankFiresImmediately(t *testing.T) {
	r := &recorder{results: make(chan string, 1)}
	d := NewDebouncer(context.Background(), time.Hour, r.search, r.deliver)
	defer d.Stop()

	d.Input("A205")
	d.Input("  ")
	select {
	case got := <-r.results:
		if got != "  " {
			t.Fatalf("expected blank search, got %q", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("blank input should not wait for the timer")
	}
}

func TestDebouncerStopDropsPending(t *testing.T) {
	r := &recorder{results: make(chan string, 1)}
	d := NewDebouncer(context.Background(), 20*time.Millisecond, r.search, r.deliver)
	d.Input("A205")
	d.Stop()
	d.Input("B")

	select {
	case got := <-r.results:
		t.Fatalf("stopped debouncer searched %q", got)
	case <-time.After(80 * time.Millisecond):
	}
}

func TestDebouncerKeystrokeDuringExpiredTimer(t *testing.T) {
	const delay = 40 * time.Millisecond
	r := &recorder{results: make(chan string, 4)}
	d := NewDebouncer(context.Background(), delay, r.search, r.deliver)
	defer d.Stop()

	d.Input("a")

	// Let the first timer expire while its callback waits on the lock, then
	// type again before the callback gets in.
	d.mu.Lock()
	time.Sleep(2 * delay)
	typed := time.Now()
	d.inputLocked("ab")
	d.mu.Unlock()

	select {
	case got := <-r.results:
		if got != "ab" {
			t.Fatalf("expected search for latest text, got %q", got)
		}
		if waited := time.Since(typed); waited < delay/2 {
			t.Fatalf("search fired %s after the keystroke, expected a pause", waited)
		}
	case <-time.After(time.Second):
		t.Fatalf("debounced search never fired")
	}

	select {
	case extra := <-r.results:
		t.Fatalf("unexpected extra search %q", extra)
	case <-time.After(3 * delay):
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.searched) != 1 {
		t.Fatalf("expected exactly one search, got %v", r.searched)
	}
}
