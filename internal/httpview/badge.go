package httpview

import (
	"sync"

	"marocstar-shop/internal/cart"
)

// CartBadge mirrors the navbar cart counter: it subscribes to the cart
// change signal and re-reads the store on every notification. Rapid
// successive mutations may coalesce into the same final count, which is
// all the badge cares about.
type CartBadge struct {
	mu     sync.Mutex
	count  int
	store  *cart.Store
	cancel func()
}

func NewCartBadge(store *cart.Store) *CartBadge {
	b := &CartBadge{store: store}
	b.refresh()
	b.cancel = store.Notifier().Subscribe(b.refresh)
	return b
}

func (b *CartBadge) refresh() {
	lines := b.store.Load()
	b.mu.Lock()
	b.count = len(lines)
	b.mu.Unlock()
}

// Count returns the number of distinct lines in the cart.
func (b *CartBadge) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Close unsubscribes the badge from the cart signal.
func (b *CartBadge) Close() {
	if b.cancel != nil {
		b.cancel()
	}
}
