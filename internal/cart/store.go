package cart

import (
	"encoding/json"
	"fmt"
	"sync"

	"marocstar-shop/internal/logger"
	"marocstar-shop/internal/storage"

	"go.uber.org/zap"
)

// StorageKey is the fixed key the serialized cart lives under.
const StorageKey = "cart"

// Store is the single source of truth for the cart. Every mutation
// persists the full cart and then fires the change notifier; listeners
// re-read the store rather than trusting any payload.
//
// Mutations are serialized by the store's own mutex, so two concurrent
// UI actions cannot interleave mid-update.
type Store struct {
	mu       sync.Mutex
	storage  storage.Store
	notifier *Notifier
}

func NewStore(st storage.Store) *Store {
	return &Store{storage: st, notifier: NewNotifier()}
}

// Notifier exposes the change signal fired after every mutation.
func (s *Store) Notifier() *Notifier {
	return s.notifier
}

// Load reads the persisted cart. An absent or malformed value yields an
// empty cart, never an error: the cart is a convenience, not a ledger.
// Every returned line is normalized to quantity >= 1.
func (s *Store) Load() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() []Line {
	data, err := s.storage.Get(StorageKey)
	if err != nil {
		return []Line{}
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		logger.L().Warn("discarding malformed persisted cart", zap.Error(err))
		return []Line{}
	}

	for i := range lines {
		if lines[i].Quantity < 1 {
			lines[i].Quantity = 1
		}
	}
	return lines
}

// AddOrIncrement adds amount units of p to the cart. An existing line for
// the same product is incremented instead of duplicated. Amounts below 1
// are treated as 1.
func (s *Store) AddOrIncrement(p Product, amount int) error {
	if amount < 1 {
		amount = 1
	}

	s.mu.Lock()
	lines := s.load()

	found := false
	for i := range lines {
		if lines[i].ProductID == p.ID {
			lines[i].Quantity += amount
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, Line{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			ImagePath: p.ImagePath,
			Quantity:  amount,
		})
	}

	err := s.save(lines)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notifier.Notify()
	return nil
}

// SetQuantity sets the quantity of the line for productID. Values below 1
// leave the line's quantity unchanged: a line never drops to zero through
// this operation, removal is explicit.
func (s *Store) SetQuantity(productID string, quantity int) error {
	s.mu.Lock()
	lines := s.load()

	for i := range lines {
		if lines[i].ProductID == productID {
			if quantity >= 1 {
				lines[i].Quantity = quantity
			}
			break
		}
	}

	err := s.save(lines)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notifier.Notify()
	return nil
}

// Remove deletes the line for productID. An absent id is a no-op, not an
// error.
func (s *Store) Remove(productID string) error {
	s.mu.Lock()
	lines := s.load()

	kept := lines[:0]
	for _, l := range lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}

	err := s.save(kept)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notifier.Notify()
	return nil
}

// Clear empties the cart entirely.
func (s *Store) Clear() error {
	s.mu.Lock()
	err := s.storage.Remove(StorageKey)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	s.notifier.Notify()
	return nil
}

// Total recomputes the cart total from the persisted state.
func (s *Store) Total() float64 {
	var total float64
	for _, l := range s.Load() {
		total += l.Subtotal()
	}
	return total
}

func (s *Store) save(lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.storage.Set(StorageKey, data); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
