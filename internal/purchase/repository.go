package purchase

import (
	"context"
	"sort"
	"sync"
)

type Repository interface {
	Create(ctx context.Context, p *Purchase) error
	GetByID(ctx context.Context, id string) (*Purchase, error)
	List(ctx context.Context) ([]*Purchase, error)
	Update(ctx context.Context, p *Purchase) error
}

type repository struct {
	mu        sync.RWMutex
	purchases map[string]*Purchase
	seq       map[string]int
	next      int
}

func NewRepository() Repository {
	return &repository{
		purchases: make(map[string]*Purchase),
		seq:       make(map[string]int),
	}
}

func clone(p *Purchase) *Purchase {
	c := *p
	c.Items = append([]Item(nil), p.Items...)
	return &c
}

func (r *repository) Create(_ context.Context, p *Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.purchases[p.ID] = clone(p)
	r.seq[p.ID] = r.next
	r.next++
	return nil
}

func (r *repository) GetByID(_ context.Context, id string) (*Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.purchases[id]
	if !ok {
		return nil, ErrPurchaseNotFound
	}
	return clone(p), nil
}

// List returns purchases newest first; purchases on the same date keep the most recently
// recorded first.
func (r *repository) List(_ context.Context) ([]*Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Purchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		out = append(out, clone(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return r.seq[out[i].ID] > r.seq[out[j].ID]
	})
	return out, nil
}

func (r *repository) Update(_ context.Context, p *Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.purchases[p.ID]; !ok {
		return ErrPurchaseNotFound
	}
	r.purchases[p.ID] = clone(p)
	return nil
}
