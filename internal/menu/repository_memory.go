package menu

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu     sync.RWMutex
	dishes map[string]Dish
	ids    []string
}

func NewMemoryRepository() Repository {
	return &memoryRepository{dishes: make(map[string]Dish)}
}

func (r *memoryRepository) Create(_ context.Context, d *Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dishes[d.ID] = *d
	r.ids = append(r.ids, d.ID)
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.dishes[id]
	if !ok {
		return nil, ErrDishNotFound
	}
	return &d, nil
}

func (r *memoryRepository) List(_ context.Context, filter Filter) ([]*Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Dish, 0, len(r.ids))
	for _, id := range r.ids {
		d := r.dishes[id]
		if filter.Matches(&d) {
			out = append(out, &d)
		}
	}
	return out, nil
}

func (r *memoryRepository) Update(_ context.Context, d *Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.dishes[d.ID]; !ok {
		return ErrDishNotFound
	}
	r.dishes[d.ID] = *d
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.dishes[id]; !ok {
		return ErrDishNotFound
	}
	delete(r.dishes, id)
	for i, existing := range r.ids {
		if existing == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}
