package cart

import (
	"sort"
	"sync"
)

// Notifier is the cart change signal: a process-wide subject any mounted
// view can subscribe to. The signal carries no data; subscribers re-read
// the store on receipt. Delivery is synchronous, in subscription order.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func())}
}

// Subscribe registers fn to run on every cart change and returns a cancel
// function. Cancel is idempotent.
func (n *Notifier) Subscribe(fn func()) (cancel func()) {
	n.mu.Lock()
	id := n.next
	n.next++
	n.subs[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

// Notify fires the signal to every current subscriber. Callbacks run
// outside the notifier's lock so they may subscribe or cancel freely.
func (n *Notifier) Notify() {
	n.mu.Lock()
	ids := make([]int, 0, len(n.subs))
	for id := range n.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, n.subs[id])
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
