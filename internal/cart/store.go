package cart

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/omaatv/eticaret-projem/internal/storage"
)

// StorageKey is the slot the cart state is persisted under.
const StorageKey = "arisport_cart"

// Store owns the client-side cart state. All guard conditions are silent
// no-ops; callers never see an error from a cart mutation. Every mutation
// synchronously persists the full item list to the storage port.
type Store struct {
	mu      sync.Mutex
	items   []Item
	storage storage.Storage
	log     *zap.Logger
}

// NewStore rehydrates the cart from storage. A missing or malformed blob
// yields an empty cart, never an error.
func NewStore(st storage.Storage, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{storage: st, log: log}

	data, err := st.Load(StorageKey)
	if err != nil {
		return s
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn("discarding malformed cart state", zap.Error(err))
		return s
	}
	s.items = items
	return s
}

// Add merges the item into the cart. An existing line item with the same
// product id has its quantity incremented; otherwise the item is appended,
// preserving insertion order. Items without a product id or slug are
// ignored. A quantity below one falls back to the default of one.
func (s *Store) Add(item Item, quantity int) {
	if item.ProductID <= 0 || item.Slug == "" {
		return
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity += quantity
			s.persist()
			return
		}
	}

	item.Quantity = quantity
	s.items = append(s.items, item)
	s.persist()
}

// Remove deletes the line item for the product id. Absent items are ignored.
func (s *Store) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

// UpdateQuantity replaces the line item's quantity. Zero or negative
// quantities remove the line item entirely.
func (s *Store) UpdateQuantity(productID int, quantity int) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

// Items returns the line items in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Count is the sum of all quantities.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Total is the sum of unit price times quantity over all line items.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

func (s *Store) removeLocked(productID int) {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// persist writes the whole cart under the fixed key. The caller must hold
// the lock. Save failures are logged, never surfaced.
func (s *Store) persist() {
	items := s.items
	if items == nil {
		items = []Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		s.log.Warn("failed to encode cart state", zap.Error(err))
		return
	}
	if err := s.storage.Save(StorageKey, data); err != nil {
		s.log.Warn("failed to persist cart state", zap.Error(err))
	}
}
