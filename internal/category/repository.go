package category

import (
	"context"
	"sync"
)

type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	mu         sync.RWMutex
	categories map[string]Category
	ids        []string
}

// NewRepository returns an in-memory repository. Safe for concurrent use.
func NewRepository() Repository {
	return &repository{categories: make(map[string]Category)}
}

func (r *repository) Create(_ context.Context, c *Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.categories[c.ID] = *c
	r.ids = append(r.ids, c.ID)
	return nil
}

func (r *repository) GetByID(_ context.Context, id string) (*Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return &c, nil
}

func (r *repository) List(_ context.Context) ([]*Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Category, 0, len(r.ids))
	for _, id := range r.ids {
		c := r.categories[id]
		out = append(out, &c)
	}
	return out, nil
}

func (r *repository) Update(_ context.Context, c *Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[c.ID]; !ok {
		return ErrCategoryNotFound
	}
	r.categories[c.ID] = *c
	return nil
}

func (r *repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return ErrCategoryNotFound
	}
	delete(r.categories, id)
	for i, existing := range r.ids {
		if existing == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}
