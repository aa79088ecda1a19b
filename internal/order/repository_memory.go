package order

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*Order
	ids    []uuid.UUID // creation order
}

// NewMemoryRepository keeps orders in process memory. Safe for concurrent use.
func NewMemoryRepository() Repository {
	return &memoryRepository{orders: make(map[uuid.UUID]*Order)}
}

func (r *memoryRepository) Create(_ context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[o.ID] = o.Clone()
	r.ids = append(r.ids, o.ID)
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o.Clone(), nil
}

func (r *memoryRepository) List(_ context.Context, filter Filter) ([]*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Order, 0, len(r.ids))
	for _, id := range r.ids {
		o := r.orders[id]
		if filter.Matches(o) {
			out = append(out, o.Clone())
		}
	}
	return out, nil
}

func (r *memoryRepository) Update(_ context.Context, o *Order, expectedVersion int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.orders[o.ID]
	if !ok {
		return ErrOrderNotFound
	}
	if current.Version != expectedVersion {
		return ErrVersionConflict
	}

	o.Version = expectedVersion + 1
	r.orders[o.ID] = o.Clone()
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return ErrOrderNotFound
	}
	delete(r.orders, id)

	for i, existing := range r.ids {
		if existing == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}
